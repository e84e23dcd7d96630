package ast

// UnitNode is a unit file.
type UnitNode struct {
	Unit                  *Token
	UnitName              Node
	PortabilityDirectives *ListNode[*Token]
	Semicolon             *Token
	InterfaceSection      *UnitSectionNode
	ImplementationSection *UnitSectionNode
	InitSection           *InitSectionNode
	Dot                   *Token
}

func (n *UnitNode) NodeKind() Kind { return KindUnit }

func (n *UnitNode) Children() []Child {
	return []Child{
		slot("Unit", n.Unit),
		slot("UnitName", n.UnitName),
		slot("PortabilityDirectives", n.PortabilityDirectives),
		slot("Semicolon", n.Semicolon),
		slot("InterfaceSection", n.InterfaceSection),
		slot("ImplementationSection", n.ImplementationSection),
		slot("InitSection", n.InitSection),
		slot("Dot", n.Dot),
	}
}

// ProgramNode is a program (.dpr) file.
type ProgramNode struct {
	Program               *Token
	Name                  Node
	NoiseOpenParenthesis  *Token
	NoiseContentList      *ListNode[*DelimitedItemNode[*Token]]
	NoiseCloseParenthesis *Token
	Semicolon             *Token
	UsesClause            *UsesClauseNode
	DeclarationList       *ListNode[Node]
	InitSection           *InitSectionNode
	Dot                   *Token
}

func (n *ProgramNode) NodeKind() Kind { return KindProgram }

func (n *ProgramNode) Children() []Child {
	return []Child{
		slot("Program", n.Program),
		slot("Name", n.Name),
		slot("NoiseOpenParenthesis", n.NoiseOpenParenthesis),
		slot("NoiseContentList", n.NoiseContentList),
		slot("NoiseCloseParenthesis", n.NoiseCloseParenthesis),
		slot("Semicolon", n.Semicolon),
		slot("UsesClause", n.UsesClause),
		slot("DeclarationList", n.DeclarationList),
		slot("InitSection", n.InitSection),
		slot("Dot", n.Dot),
	}
}

// LibraryNode is a library (DLL project) file.
type LibraryNode struct {
	Library               *Token
	Name                  Node
	PortabilityDirectives *ListNode[*Token]
	Semicolon             *Token
	UsesClause            *UsesClauseNode
	DeclarationList       *ListNode[Node]
	InitSection           *InitSectionNode
	Dot                   *Token
}

func (n *LibraryNode) NodeKind() Kind { return KindLibrary }

func (n *LibraryNode) Children() []Child {
	return []Child{
		slot("Library", n.Library),
		slot("Name", n.Name),
		slot("PortabilityDirectives", n.PortabilityDirectives),
		slot("Semicolon", n.Semicolon),
		slot("UsesClause", n.UsesClause),
		slot("DeclarationList", n.DeclarationList),
		slot("InitSection", n.InitSection),
		slot("Dot", n.Dot),
	}
}

// PackageNode is a package (.dpk) file.
type PackageNode struct {
	Package        *Token
	Name           Node
	Semicolon      *Token
	RequiresClause *RequiresClauseNode
	ContainsClause *UsesClauseNode
	End            *Token
	Dot            *Token
}

func (n *PackageNode) NodeKind() Kind { return KindPackage }

func (n *PackageNode) Children() []Child {
	return []Child{
		slot("Package", n.Package),
		slot("Name", n.Name),
		slot("Semicolon", n.Semicolon),
		slot("RequiresClause", n.RequiresClause),
		slot("ContainsClause", n.ContainsClause),
		slot("End", n.End),
		slot("Dot", n.Dot),
	}
}

type RequiresClauseNode struct {
	Requires    *Token
	PackageList *ListNode[*DelimitedItemNode[Node]]
	Semicolon   *Token
}

func (n *RequiresClauseNode) NodeKind() Kind { return KindRequiresClause }

func (n *RequiresClauseNode) Children() []Child {
	return []Child{
		slot("Requires", n.Requires),
		slot("PackageList", n.PackageList),
		slot("Semicolon", n.Semicolon),
	}
}

// UsesClauseNode is a uses clause; a package contains clause has the same shape.
type UsesClauseNode struct {
	Uses      *Token
	UnitList  *ListNode[*DelimitedItemNode[*UsedUnitNode]]
	Semicolon *Token
}

func (n *UsesClauseNode) NodeKind() Kind { return KindUsesClause }

func (n *UsesClauseNode) Children() []Child {
	return []Child{
		slot("Uses", n.Uses),
		slot("UnitList", n.UnitList),
		slot("Semicolon", n.Semicolon),
	}
}

type UsedUnitNode struct {
	Name     Node
	In       *Token
	FileName *Token
}

func (n *UsedUnitNode) NodeKind() Kind { return KindUsedUnit }

func (n *UsedUnitNode) Children() []Child {
	return []Child{
		slot("Name", n.Name),
		slot("In", n.In),
		slot("FileName", n.FileName),
	}
}

// UnitSectionNode is the interface or implementation section of a unit.
type UnitSectionNode struct {
	HeaderKeyword *Token
	UsesClause    *UsesClauseNode
	Contents      *ListNode[Node]
}

func (n *UnitSectionNode) NodeKind() Kind { return KindUnitSection }

func (n *UnitSectionNode) Children() []Child {
	return []Child{
		slot("HeaderKeyword", n.HeaderKeyword),
		slot("UsesClause", n.UsesClause),
		slot("Contents", n.Contents),
	}
}

// InitSectionNode is the tail of a unit or project: initialization/finalization, a main block, or a bare end.
type InitSectionNode struct {
	InitializationHeader     *Token
	InitializationStatements *ListNode[*DelimitedItemNode[Node]]
	FinalizationHeader       *Token
	FinalizationStatements   *ListNode[*DelimitedItemNode[Node]]
	End                      *Token
}

func (n *InitSectionNode) NodeKind() Kind { return KindInitSection }

func (n *InitSectionNode) Children() []Child {
	return []Child{
		slot("InitializationHeader", n.InitializationHeader),
		slot("InitializationStatements", n.InitializationStatements),
		slot("FinalizationHeader", n.FinalizationHeader),
		slot("FinalizationStatements", n.FinalizationStatements),
		slot("End", n.End),
	}
}
