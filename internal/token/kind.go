package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the scanner never produces it.
	Invalid Kind = iota

	// Identifier is a bare word that is neither a keyword nor a semikeyword,
	// or any &-escaped word.
	Identifier
	// Number is a decimal, real or $-prefixed hexadecimal literal.
	Number
	// StringLiteral is a run of quoted segments and #char codes.
	StringLiteral

	// comments and directives; the conditional filter drops them
	SingleLineComment
	CurlyBraceComment
	ParenStarComment
	CompilerDirective

	// punctuation
	AtSign           // @
	Caret            // ^
	CloseBracket     // ]
	CloseParenthesis // )
	Colon            // :
	ColonEquals      // :=
	Comma            // ,
	DivideBySign     // /
	Dot              // .
	DotDot           // ..
	EqualSign        // =
	GreaterOrEqual   // >=
	GreaterThan      // >
	LessOrEqual      // <=
	LessThan         // <
	MinusSign        // -
	NotEqual         // <>
	OpenBracket      // [
	OpenParenthesis  // (
	PlusSign         // +
	Semicolon        // ;
	TimesSign        // *

	keywordBegin
	AndKeyword
	ArrayKeyword
	AsKeyword
	AsmKeyword
	BeginKeyword
	CaseKeyword
	ClassKeyword
	ConstKeyword
	ConstructorKeyword
	DestructorKeyword
	DispinterfaceKeyword
	DivKeyword
	DoKeyword
	DowntoKeyword
	ElseKeyword
	EndKeyword
	ExceptKeyword
	ExportsKeyword
	FileKeyword
	FinalizationKeyword
	FinallyKeyword
	ForKeyword
	FunctionKeyword
	GotoKeyword
	IfKeyword
	ImplementationKeyword
	InKeyword
	InheritedKeyword
	InitializationKeyword
	InlineKeyword
	InterfaceKeyword
	IsKeyword
	LabelKeyword
	LibraryKeyword
	ModKeyword
	NilKeyword
	NotKeyword
	ObjectKeyword
	OfKeyword
	OrKeyword
	OutKeyword
	PackedKeyword
	ProcedureKeyword
	ProgramKeyword
	PropertyKeyword
	RaiseKeyword
	RecordKeyword
	RepeatKeyword
	ResourcestringKeyword
	SetKeyword
	ShlKeyword
	ShrKeyword
	StringKeyword
	ThenKeyword
	ThreadvarKeyword
	ToKeyword
	TryKeyword
	TypeKeyword
	UnitKeyword
	UntilKeyword
	UsesKeyword
	VarKeyword
	WhileKeyword
	WithKeyword
	XorKeyword
	keywordEnd

	semikeywordBegin
	AbsoluteSemikeyword
	AbstractSemikeyword
	AssemblerSemikeyword
	AtSemikeyword
	AutomatedSemikeyword
	CdeclSemikeyword
	ContainsSemikeyword
	DefaultSemikeyword
	DeprecatedSemikeyword
	DispidSemikeyword
	DynamicSemikeyword
	ExperimentalSemikeyword
	ExportSemikeyword
	ExternalSemikeyword
	FarSemikeyword
	FinalSemikeyword
	ForwardSemikeyword
	HelperSemikeyword
	ImplementsSemikeyword
	IndexSemikeyword
	LocalSemikeyword
	MessageSemikeyword
	NameSemikeyword
	NearSemikeyword
	NodefaultSemikeyword
	OnSemikeyword
	OperatorSemikeyword
	OverloadSemikeyword
	OverrideSemikeyword
	PackageSemikeyword
	PascalSemikeyword
	PlatformSemikeyword
	PrivateSemikeyword
	ProtectedSemikeyword
	PublicSemikeyword
	PublishedSemikeyword
	ReadSemikeyword
	ReadonlySemikeyword
	ReferenceSemikeyword
	RegisterSemikeyword
	ReintroduceSemikeyword
	RequiresSemikeyword
	ResidentSemikeyword
	SafecallSemikeyword
	SealedSemikeyword
	StaticSemikeyword
	StdcallSemikeyword
	StoredSemikeyword
	StrictSemikeyword
	UnsafeSemikeyword
	VarargsSemikeyword
	VirtualSemikeyword
	WriteSemikeyword
	WriteonlySemikeyword
	semikeywordEnd
)

var kindNames = [...]string{
	Invalid:           "Invalid",
	Identifier:        "Identifier",
	Number:            "Number",
	StringLiteral:     "StringLiteral",
	SingleLineComment: "SingleLineComment",
	CurlyBraceComment: "CurlyBraceComment",
	ParenStarComment:  "ParenStarComment",
	CompilerDirective: "CompilerDirective",
	AtSign:            "AtSign",
	Caret:             "Caret",
	CloseBracket:      "CloseBracket",
	CloseParenthesis:  "CloseParenthesis",
	Colon:             "Colon",
	ColonEquals:       "ColonEquals",
	Comma:             "Comma",
	DivideBySign:      "DivideBySign",
	Dot:               "Dot",
	DotDot:            "DotDot",
	EqualSign:         "EqualSign",
	GreaterOrEqual:    "GreaterOrEqual",
	GreaterThan:       "GreaterThan",
	LessOrEqual:       "LessOrEqual",
	LessThan:          "LessThan",
	MinusSign:         "MinusSign",
	NotEqual:          "NotEqual",
	OpenBracket:       "OpenBracket",
	OpenParenthesis:   "OpenParenthesis",
	PlusSign:          "PlusSign",
	Semicolon:         "Semicolon",
	TimesSign:         "TimesSign",
}

func (k Kind) String() string {
	switch {
	case k.IsKeyword():
		return keywordWords[k-keywordBegin-1].name
	case k.IsSemikeyword():
		return semikeywordWords[k-semikeywordBegin-1].name
	case int(k) < len(kindNames) && kindNames[k] != "":
		return kindNames[k]
	}
	return "Invalid"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k > keywordBegin && k < keywordEnd }

// IsSemikeyword reports whether k is a context-dependent word that may also
// serve as an identifier.
func (k Kind) IsSemikeyword() bool { return k > semikeywordBegin && k < semikeywordEnd }

// IsWord reports whether k is any bare word: identifier, keyword or semikeyword.
func (k Kind) IsWord() bool { return k == Identifier || k.IsKeyword() || k.IsSemikeyword() }

// IsComment reports whether k is a comment or a compiler directive.
func (k Kind) IsComment() bool {
	switch k {
	case SingleLineComment, CurlyBraceComment, ParenStarComment, CompilerDirective:
		return true
	}
	return false
}
