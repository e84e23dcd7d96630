package token

import "strings"

type word struct {
	text string
	name string
}

var keywordWords = [...]word{
	{"and", "AndKeyword"},
	{"array", "ArrayKeyword"},
	{"as", "AsKeyword"},
	{"asm", "AsmKeyword"},
	{"begin", "BeginKeyword"},
	{"case", "CaseKeyword"},
	{"class", "ClassKeyword"},
	{"const", "ConstKeyword"},
	{"constructor", "ConstructorKeyword"},
	{"destructor", "DestructorKeyword"},
	{"dispinterface", "DispinterfaceKeyword"},
	{"div", "DivKeyword"},
	{"do", "DoKeyword"},
	{"downto", "DowntoKeyword"},
	{"else", "ElseKeyword"},
	{"end", "EndKeyword"},
	{"except", "ExceptKeyword"},
	{"exports", "ExportsKeyword"},
	{"file", "FileKeyword"},
	{"finalization", "FinalizationKeyword"},
	{"finally", "FinallyKeyword"},
	{"for", "ForKeyword"},
	{"function", "FunctionKeyword"},
	{"goto", "GotoKeyword"},
	{"if", "IfKeyword"},
	{"implementation", "ImplementationKeyword"},
	{"in", "InKeyword"},
	{"inherited", "InheritedKeyword"},
	{"initialization", "InitializationKeyword"},
	{"inline", "InlineKeyword"},
	{"interface", "InterfaceKeyword"},
	{"is", "IsKeyword"},
	{"label", "LabelKeyword"},
	{"library", "LibraryKeyword"},
	{"mod", "ModKeyword"},
	{"nil", "NilKeyword"},
	{"not", "NotKeyword"},
	{"object", "ObjectKeyword"},
	{"of", "OfKeyword"},
	{"or", "OrKeyword"},
	{"out", "OutKeyword"},
	{"packed", "PackedKeyword"},
	{"procedure", "ProcedureKeyword"},
	{"program", "ProgramKeyword"},
	{"property", "PropertyKeyword"},
	{"raise", "RaiseKeyword"},
	{"record", "RecordKeyword"},
	{"repeat", "RepeatKeyword"},
	{"resourcestring", "ResourcestringKeyword"},
	{"set", "SetKeyword"},
	{"shl", "ShlKeyword"},
	{"shr", "ShrKeyword"},
	{"string", "StringKeyword"},
	{"then", "ThenKeyword"},
	{"threadvar", "ThreadvarKeyword"},
	{"to", "ToKeyword"},
	{"try", "TryKeyword"},
	{"type", "TypeKeyword"},
	{"unit", "UnitKeyword"},
	{"until", "UntilKeyword"},
	{"uses", "UsesKeyword"},
	{"var", "VarKeyword"},
	{"while", "WhileKeyword"},
	{"with", "WithKeyword"},
	{"xor", "XorKeyword"},
}

var semikeywordWords = [...]word{
	{"absolute", "AbsoluteSemikeyword"},
	{"abstract", "AbstractSemikeyword"},
	{"assembler", "AssemblerSemikeyword"},
	{"at", "AtSemikeyword"},
	{"automated", "AutomatedSemikeyword"},
	{"cdecl", "CdeclSemikeyword"},
	{"contains", "ContainsSemikeyword"},
	{"default", "DefaultSemikeyword"},
	{"deprecated", "DeprecatedSemikeyword"},
	{"dispid", "DispidSemikeyword"},
	{"dynamic", "DynamicSemikeyword"},
	{"experimental", "ExperimentalSemikeyword"},
	{"export", "ExportSemikeyword"},
	{"external", "ExternalSemikeyword"},
	{"far", "FarSemikeyword"},
	{"final", "FinalSemikeyword"},
	{"forward", "ForwardSemikeyword"},
	{"helper", "HelperSemikeyword"},
	{"implements", "ImplementsSemikeyword"},
	{"index", "IndexSemikeyword"},
	{"local", "LocalSemikeyword"},
	{"message", "MessageSemikeyword"},
	{"name", "NameSemikeyword"},
	{"near", "NearSemikeyword"},
	{"nodefault", "NodefaultSemikeyword"},
	{"on", "OnSemikeyword"},
	{"operator", "OperatorSemikeyword"},
	{"overload", "OverloadSemikeyword"},
	{"override", "OverrideSemikeyword"},
	{"package", "PackageSemikeyword"},
	{"pascal", "PascalSemikeyword"},
	{"platform", "PlatformSemikeyword"},
	{"private", "PrivateSemikeyword"},
	{"protected", "ProtectedSemikeyword"},
	{"public", "PublicSemikeyword"},
	{"published", "PublishedSemikeyword"},
	{"read", "ReadSemikeyword"},
	{"readonly", "ReadonlySemikeyword"},
	{"reference", "ReferenceSemikeyword"},
	{"register", "RegisterSemikeyword"},
	{"reintroduce", "ReintroduceSemikeyword"},
	{"requires", "RequiresSemikeyword"},
	{"resident", "ResidentSemikeyword"},
	{"safecall", "SafecallSemikeyword"},
	{"sealed", "SealedSemikeyword"},
	{"static", "StaticSemikeyword"},
	{"stdcall", "StdcallSemikeyword"},
	{"stored", "StoredSemikeyword"},
	{"strict", "StrictSemikeyword"},
	{"unsafe", "UnsafeSemikeyword"},
	{"varargs", "VarargsSemikeyword"},
	{"virtual", "VirtualSemikeyword"},
	{"write", "WriteSemikeyword"},
	{"writeonly", "WriteonlySemikeyword"},
}

var words = buildWords()

func buildWords() map[string]Kind {
	m := make(map[string]Kind, len(keywordWords)+len(semikeywordWords))
	for i, w := range keywordWords {
		m[w.text] = keywordBegin + 1 + Kind(i) // #nosec G115 -- table is far below 256 entries
	}
	for i, w := range semikeywordWords {
		m[w.text] = semikeywordBegin + 1 + Kind(i) // #nosec G115 -- table is far below 256 entries
	}
	return m
}

// LookupWord classifies a bare word. Matching is case-insensitive; words that
// are neither keywords nor semikeywords are Identifier.
func LookupWord(text string) Kind {
	if k, ok := words[text]; ok {
		return k
	}
	if k, ok := words[strings.ToLower(text)]; ok {
		return k
	}
	return Identifier
}

// Word returns the lowercase spelling of a keyword or semikeyword kind.
func (k Kind) Word() string {
	switch {
	case k.IsKeyword():
		return keywordWords[k-keywordBegin-1].text
	case k.IsSemikeyword():
		return semikeywordWords[k-semikeywordBegin-1].text
	}
	return ""
}
