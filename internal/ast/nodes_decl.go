package ast

// ConstSectionNode is a const or resourcestring section.
type ConstSectionNode struct {
	ConstKeyword *Token
	ConstList    *ListNode[*ConstantDeclNode]
}

func (n *ConstSectionNode) NodeKind() Kind { return KindConstSection }

func (n *ConstSectionNode) Children() []Child {
	return []Child{
		slot("ConstKeyword", n.ConstKeyword),
		slot("ConstList", n.ConstList),
	}
}

type ConstantDeclNode struct {
	Name                     *Token
	Colon                    *Token
	Type                     Node
	EqualSign                *Token
	Value                    Node
	PortabilityDirectiveList *ListNode[*Token]
	Semicolon                *Token
}

func (n *ConstantDeclNode) NodeKind() Kind { return KindConstantDecl }

func (n *ConstantDeclNode) Children() []Child {
	return []Child{
		slot("Name", n.Name),
		slot("Colon", n.Colon),
		slot("Type", n.Type),
		slot("EqualSign", n.EqualSign),
		slot("Value", n.Value),
		slot("PortabilityDirectiveList", n.PortabilityDirectiveList),
		slot("Semicolon", n.Semicolon),
	}
}

type TypeSectionNode struct {
	TypeKeyword *Token
	TypeList    *ListNode[Node]
}

func (n *TypeSectionNode) NodeKind() Kind { return KindTypeSection }

func (n *TypeSectionNode) Children() []Child {
	return []Child{
		slot("TypeKeyword", n.TypeKeyword),
		slot("TypeList", n.TypeList),
	}
}

type TypeDeclNode struct {
	Name                     *Token
	EqualSign                *Token
	TypeKeyword              *Token
	Type                     Node
	PortabilityDirectiveList *ListNode[*Token]
	Semicolon                *Token
}

func (n *TypeDeclNode) NodeKind() Kind { return KindTypeDecl }

func (n *TypeDeclNode) Children() []Child {
	return []Child{
		slot("Name", n.Name),
		slot("EqualSign", n.EqualSign),
		slot("TypeKeyword", n.TypeKeyword),
		slot("Type", n.Type),
		slot("PortabilityDirectiveList", n.PortabilityDirectiveList),
		slot("Semicolon", n.Semicolon),
	}
}

// TypeForwardDeclarationNode is a forward declaration such as "TFoo = class;".
type TypeForwardDeclarationNode struct {
	Name      *Token
	EqualSign *Token
	Type      *Token
	Semicolon *Token
}

func (n *TypeForwardDeclarationNode) NodeKind() Kind { return KindTypeForwardDeclaration }

func (n *TypeForwardDeclarationNode) Children() []Child {
	return []Child{
		slot("Name", n.Name),
		slot("EqualSign", n.EqualSign),
		slot("Type", n.Type),
		slot("Semicolon", n.Semicolon),
	}
}

// VarSectionNode is a var or threadvar section.
type VarSectionNode struct {
	VarKeyword *Token
	VarList    *ListNode[*VarDeclNode]
}

func (n *VarSectionNode) NodeKind() Kind { return KindVarSection }

func (n *VarSectionNode) Children() []Child {
	return []Child{
		slot("VarKeyword", n.VarKeyword),
		slot("VarList", n.VarList),
	}
}

type VarDeclNode struct {
	NameList                       *ListNode[*DelimitedItemNode[*Token]]
	Colon                          *Token
	Type                           Node
	FirstPortabilityDirectiveList  *ListNode[*Token]
	AbsoluteSemikeyword            *Token
	AbsoluteAddress                Node
	EqualSign                      *Token
	Value                          Node
	SecondPortabilityDirectiveList *ListNode[*Token]
	Semicolon                      *Token
}

func (n *VarDeclNode) NodeKind() Kind { return KindVarDecl }

func (n *VarDeclNode) Children() []Child {
	return []Child{
		slot("NameList", n.NameList),
		slot("Colon", n.Colon),
		slot("Type", n.Type),
		slot("FirstPortabilityDirectiveList", n.FirstPortabilityDirectiveList),
		slot("AbsoluteSemikeyword", n.AbsoluteSemikeyword),
		slot("AbsoluteAddress", n.AbsoluteAddress),
		slot("EqualSign", n.EqualSign),
		slot("Value", n.Value),
		slot("SecondPortabilityDirectiveList", n.SecondPortabilityDirectiveList),
		slot("Semicolon", n.Semicolon),
	}
}

type LabelDeclSectionNode struct {
	LabelKeyword *Token
	LabelList    *ListNode[*DelimitedItemNode[*Token]]
	Semicolon    *Token
}

func (n *LabelDeclSectionNode) NodeKind() Kind { return KindLabelDeclSection }

func (n *LabelDeclSectionNode) Children() []Child {
	return []Child{
		slot("LabelKeyword", n.LabelKeyword),
		slot("LabelList", n.LabelList),
		slot("Semicolon", n.Semicolon),
	}
}

type ExportsStatementNode struct {
	ExportsKeyword *Token
	ItemList       *ListNode[*DelimitedItemNode[*ExportsItemNode]]
	Semicolon      *Token
}

func (n *ExportsStatementNode) NodeKind() Kind { return KindExportsStatement }

func (n *ExportsStatementNode) Children() []Child {
	return []Child{
		slot("ExportsKeyword", n.ExportsKeyword),
		slot("ItemList", n.ItemList),
		slot("Semicolon", n.Semicolon),
	}
}

type ExportsItemNode struct {
	Name             Node
	OpenParenthesis  *Token
	ParameterList    *ListNode[*DelimitedItemNode[*ParameterNode]]
	CloseParenthesis *Token
	SpecifierList    *ListNode[*ExportsSpecifierNode]
}

func (n *ExportsItemNode) NodeKind() Kind { return KindExportsItem }

func (n *ExportsItemNode) Children() []Child {
	return []Child{
		slot("Name", n.Name),
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("ParameterList", n.ParameterList),
		slot("CloseParenthesis", n.CloseParenthesis),
		slot("SpecifierList", n.SpecifierList),
	}
}

// ExportsSpecifierNode is a "name X" or "index N" specifier of an exports item or external directive.
type ExportsSpecifierNode struct {
	Keyword *Token
	Value   Node
}

func (n *ExportsSpecifierNode) NodeKind() Kind { return KindExportsSpecifier }

func (n *ExportsSpecifierNode) Children() []Child {
	return []Child{
		slot("Keyword", n.Keyword),
		slot("Value", n.Value),
	}
}

// AttributeNode is an attribute such as "[assembly: AssemblyTitle('x')]".
type AttributeNode struct {
	OpenBracket  *Token
	Scope        *Token
	Colon        *Token
	Value        Node
	CloseBracket *Token
}

func (n *AttributeNode) NodeKind() Kind { return KindAttribute }

func (n *AttributeNode) Children() []Child {
	return []Child{
		slot("OpenBracket", n.OpenBracket),
		slot("Scope", n.Scope),
		slot("Colon", n.Colon),
		slot("Value", n.Value),
		slot("CloseBracket", n.CloseBracket),
	}
}

// MethodImplementationNode is a method heading with its body. Forward and external declarations have no body.
type MethodImplementationNode struct {
	MethodHeading *MethodHeadingNode
	FancyBlock    *FancyBlockNode
	Semicolon     *Token
}

func (n *MethodImplementationNode) NodeKind() Kind { return KindMethodImplementation }

func (n *MethodImplementationNode) Children() []Child {
	return []Child{
		slot("MethodHeading", n.MethodHeading),
		slot("FancyBlock", n.FancyBlock),
		slot("Semicolon", n.Semicolon),
	}
}

// FancyBlockNode is local declarations followed by a block.
type FancyBlockNode struct {
	DeclList *ListNode[Node]
	Block    Node
}

func (n *FancyBlockNode) NodeKind() Kind { return KindFancyBlock }

func (n *FancyBlockNode) Children() []Child {
	return []Child{
		slot("DeclList", n.DeclList),
		slot("Block", n.Block),
	}
}

type MethodHeadingNode struct {
	Class            *Token
	MethodType       *Token
	Name             Node
	OpenParenthesis  *Token
	ParameterList    *ListNode[*DelimitedItemNode[*ParameterNode]]
	CloseParenthesis *Token
	Colon            *Token
	ReturnType       Node
	DirectiveList    *ListNode[*DirectiveNode]
	Semicolon        *Token
}

func (n *MethodHeadingNode) NodeKind() Kind { return KindMethodHeading }

func (n *MethodHeadingNode) Children() []Child {
	return []Child{
		slot("Class", n.Class),
		slot("MethodType", n.MethodType),
		slot("Name", n.Name),
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("ParameterList", n.ParameterList),
		slot("CloseParenthesis", n.CloseParenthesis),
		slot("Colon", n.Colon),
		slot("ReturnType", n.ReturnType),
		slot("DirectiveList", n.DirectiveList),
		slot("Semicolon", n.Semicolon),
	}
}

// MethodResolutionNode is an interface method mapping such as "procedure IFoo.Bar = Baz;".
type MethodResolutionNode struct {
	MethodType           *Token
	InterfaceMethod      Node
	EqualSign            *Token
	ImplementationMethod Node
	Semicolon            *Token
}

func (n *MethodResolutionNode) NodeKind() Kind { return KindMethodResolution }

func (n *MethodResolutionNode) Children() []Child {
	return []Child{
		slot("MethodType", n.MethodType),
		slot("InterfaceMethod", n.InterfaceMethod),
		slot("EqualSign", n.EqualSign),
		slot("ImplementationMethod", n.ImplementationMethod),
		slot("Semicolon", n.Semicolon),
	}
}

// DirectiveNode is one directive with the semicolon that precedes it, e.g. "; virtual" or "; external 'x.dll' name 'y'".
type DirectiveNode struct {
	Semicolon *Token
	Directive *Token
	Value     Node
	Data      *ListNode[*ExportsSpecifierNode]
}

func (n *DirectiveNode) NodeKind() Kind { return KindDirective }

func (n *DirectiveNode) Children() []Child {
	return []Child{
		slot("Semicolon", n.Semicolon),
		slot("Directive", n.Directive),
		slot("Value", n.Value),
		slot("Data", n.Data),
	}
}

type ParameterNode struct {
	Modifier     *Token
	NameList     *ListNode[*DelimitedItemNode[*Token]]
	Colon        *Token
	Type         Node
	EqualSign    *Token
	DefaultValue Node
}

func (n *ParameterNode) NodeKind() Kind { return KindParameter }

func (n *ParameterNode) Children() []Child {
	return []Child{
		slot("Modifier", n.Modifier),
		slot("NameList", n.NameList),
		slot("Colon", n.Colon),
		slot("Type", n.Type),
		slot("EqualSign", n.EqualSign),
		slot("DefaultValue", n.DefaultValue),
	}
}

// OpenArrayNode is an open array parameter type such as "array of const".
type OpenArrayNode struct {
	Array *Token
	Of    *Token
	Type  Node
}

func (n *OpenArrayNode) NodeKind() Kind { return KindOpenArray }

func (n *OpenArrayNode) Children() []Child {
	return []Child{
		slot("Array", n.Array),
		slot("Of", n.Of),
		slot("Type", n.Type),
	}
}

type RecordConstantNode struct {
	OpenParenthesis  *Token
	ItemList         *ListNode[*DelimitedItemNode[*RecordFieldConstantNode]]
	CloseParenthesis *Token
}

func (n *RecordConstantNode) NodeKind() Kind { return KindRecordConstant }

func (n *RecordConstantNode) Children() []Child {
	return []Child{
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("ItemList", n.ItemList),
		slot("CloseParenthesis", n.CloseParenthesis),
	}
}

type RecordFieldConstantNode struct {
	Name  *Token
	Colon *Token
	Value Node
}

func (n *RecordFieldConstantNode) NodeKind() Kind { return KindRecordFieldConstant }

func (n *RecordFieldConstantNode) Children() []Child {
	return []Child{
		slot("Name", n.Name),
		slot("Colon", n.Colon),
		slot("Value", n.Value),
	}
}

type ArrayConstantNode struct {
	OpenParenthesis  *Token
	ItemList         *ListNode[*DelimitedItemNode[Node]]
	CloseParenthesis *Token
}

func (n *ArrayConstantNode) NodeKind() Kind { return KindArrayConstant }

func (n *ArrayConstantNode) Children() []Child {
	return []Child{
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("ItemList", n.ItemList),
		slot("CloseParenthesis", n.CloseParenthesis),
	}
}
