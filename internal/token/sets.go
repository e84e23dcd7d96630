package token

// Set is a fixed-size bit set over Kind.
type Set [4]uint64

// NewSet builds a set containing kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s[k>>6] |= 1 << (k & 63)
	}
	return s
}

// Has reports whether k is in the set.
func (s Set) Has(k Kind) bool { return s[k>>6]&(1<<(k&63)) != 0 }

// Union returns a set holding the members of both.
func (s Set) Union(o Set) Set {
	for i := range s {
		s[i] |= o[i]
	}
	return s
}

var (
	// AddOps are the additive operators.
	AddOps = NewSet(PlusSign, MinusSign, OrKeyword, XorKeyword)
	// MulOps are the multiplicative operators.
	MulOps = NewSet(TimesSign, DivideBySign, DivKeyword, ModKeyword, AndKeyword, ShlKeyword, ShrKeyword)
	// RelOps are the relational operators.
	RelOps = NewSet(EqualSign, GreaterThan, LessThan, LessOrEqual, GreaterOrEqual, NotEqual,
		InKeyword, IsKeyword, AsKeyword)
	// UnaryOps are the prefix operators.
	UnaryOps = NewSet(NotKeyword, AtSign, PlusSign, MinusSign)

	// PortabilityDirectives may follow declarations.
	PortabilityDirectives = NewSet(PlatformSemikeyword, DeprecatedSemikeyword,
		LibraryKeyword, ExperimentalSemikeyword)

	// Visibilities open a visibility section inside a class, record or helper.
	Visibilities = NewSet(PrivateSemikeyword, ProtectedSemikeyword, PublicSemikeyword,
		PublishedSemikeyword, AutomatedSemikeyword, StrictSemikeyword)

	// MethodTypes start a method heading.
	MethodTypes = NewSet(ProcedureKeyword, FunctionKeyword, ConstructorKeyword,
		DestructorKeyword, OperatorSemikeyword)

	// ParameterModifiers may precede a parameter name list.
	ParameterModifiers = NewSet(VarKeyword, ConstKeyword, OutKeyword)

	// Directives may follow a method heading or procedural type.
	Directives = NewSet(AbstractSemikeyword, AssemblerSemikeyword, CdeclSemikeyword,
		DispidSemikeyword, DynamicSemikeyword, ExportSemikeyword, ExternalSemikeyword,
		FarSemikeyword, FinalSemikeyword, ForwardSemikeyword, InlineKeyword, LocalSemikeyword,
		MessageSemikeyword, NearSemikeyword, OverloadSemikeyword, OverrideSemikeyword,
		PascalSemikeyword, RegisterSemikeyword, ReintroduceSemikeyword, ResidentSemikeyword,
		SafecallSemikeyword, StaticSemikeyword, StdcallSemikeyword, UnsafeSemikeyword,
		VarargsSemikeyword, VirtualSemikeyword).Union(PortabilityDirectives)

	// StatementTerminators end a statement list.
	StatementTerminators = NewSet(EndKeyword, UntilKeyword, FinallyKeyword, ExceptKeyword,
		ElseKeyword)
)

// IsIdent reports whether k can be used as an identifier: an Identifier or
// any semikeyword.
func IsIdent(k Kind) bool { return k == Identifier || k.IsSemikeyword() }
