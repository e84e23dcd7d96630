package ast

type ArrayTypeNode struct {
	Array        *Token
	OpenBracket  *Token
	IndexList    *ListNode[*DelimitedItemNode[Node]]
	CloseBracket *Token
	Of           *Token
	Type         Node
}

func (n *ArrayTypeNode) NodeKind() Kind { return KindArrayType }

func (n *ArrayTypeNode) Children() []Child {
	return []Child{
		slot("Array", n.Array),
		slot("OpenBracket", n.OpenBracket),
		slot("IndexList", n.IndexList),
		slot("CloseBracket", n.CloseBracket),
		slot("Of", n.Of),
		slot("Type", n.Type),
	}
}

type EnumeratedTypeNode struct {
	OpenParenthesis  *Token
	ItemList         *ListNode[*DelimitedItemNode[*EnumeratedTypeElementNode]]
	CloseParenthesis *Token
}

func (n *EnumeratedTypeNode) NodeKind() Kind { return KindEnumeratedType }

func (n *EnumeratedTypeNode) Children() []Child {
	return []Child{
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("ItemList", n.ItemList),
		slot("CloseParenthesis", n.CloseParenthesis),
	}
}

type EnumeratedTypeElementNode struct {
	Name      *Token
	EqualSign *Token
	Value     Node
}

func (n *EnumeratedTypeElementNode) NodeKind() Kind { return KindEnumeratedTypeElement }

func (n *EnumeratedTypeElementNode) Children() []Child {
	return []Child{
		slot("Name", n.Name),
		slot("EqualSign", n.EqualSign),
		slot("Value", n.Value),
	}
}

type SetOfNode struct {
	Set  *Token
	Of   *Token
	Type Node
}

func (n *SetOfNode) NodeKind() Kind { return KindSetOf }

func (n *SetOfNode) Children() []Child {
	return []Child{
		slot("Set", n.Set),
		slot("Of", n.Of),
		slot("Type", n.Type),
	}
}

type FileTypeNode struct {
	File *Token
	Of   *Token
	Type Node
}

func (n *FileTypeNode) NodeKind() Kind { return KindFileType }

func (n *FileTypeNode) Children() []Child {
	return []Child{
		slot("File", n.File),
		slot("Of", n.Of),
		slot("Type", n.Type),
	}
}

type PackedTypeNode struct {
	Packed *Token
	Type   Node
}

func (n *PackedTypeNode) NodeKind() Kind { return KindPackedType }

func (n *PackedTypeNode) Children() []Child {
	return []Child{
		slot("Packed", n.Packed),
		slot("Type", n.Type),
	}
}

type PointerTypeNode struct {
	Caret *Token
	Type  Node
}

func (n *PointerTypeNode) NodeKind() Kind { return KindPointerType }

func (n *PointerTypeNode) Children() []Child {
	return []Child{
		slot("Caret", n.Caret),
		slot("Type", n.Type),
	}
}

// StringOfLengthNode is a short string type such as "string[255]".
type StringOfLengthNode struct {
	String       *Token
	OpenBracket  *Token
	Length       Node
	CloseBracket *Token
}

func (n *StringOfLengthNode) NodeKind() Kind { return KindStringOfLength }

func (n *StringOfLengthNode) Children() []Child {
	return []Child{
		slot("String", n.String),
		slot("OpenBracket", n.OpenBracket),
		slot("Length", n.Length),
		slot("CloseBracket", n.CloseBracket),
	}
}

// ClassOfNode is a metaclass type.
type ClassOfNode struct {
	Class *Token
	Of    *Token
	Type  Node
}

func (n *ClassOfNode) NodeKind() Kind { return KindClassOf }

func (n *ClassOfNode) Children() []Child {
	return []Child{
		slot("Class", n.Class),
		slot("Of", n.Of),
		slot("Type", n.Type),
	}
}

// ClassTypeNode is a class or old-style object type.
type ClassTypeNode struct {
	Class            *Token
	Disposition      *Token
	OpenParenthesis  *Token
	InheritanceList  *ListNode[*DelimitedItemNode[Node]]
	CloseParenthesis *Token
	ContentList      *ListNode[*VisibilitySectionNode]
	End              *Token
}

func (n *ClassTypeNode) NodeKind() Kind { return KindClassType }

func (n *ClassTypeNode) Children() []Child {
	return []Child{
		slot("Class", n.Class),
		slot("Disposition", n.Disposition),
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("InheritanceList", n.InheritanceList),
		slot("CloseParenthesis", n.CloseParenthesis),
		slot("ContentList", n.ContentList),
		slot("End", n.End),
	}
}

// TypeHelperNode is a class helper or record helper.
type TypeHelperNode struct {
	TypeKeyword       *Token
	HelperSemikeyword *Token
	OpenParenthesis   *Token
	BaseHelperType    Node
	CloseParenthesis  *Token
	ForKeyword        *Token
	Type              Node
	ContentList       *ListNode[*VisibilitySectionNode]
	EndKeyword        *Token
}

func (n *TypeHelperNode) NodeKind() Kind { return KindTypeHelper }

func (n *TypeHelperNode) Children() []Child {
	return []Child{
		slot("TypeKeyword", n.TypeKeyword),
		slot("HelperSemikeyword", n.HelperSemikeyword),
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("BaseHelperType", n.BaseHelperType),
		slot("CloseParenthesis", n.CloseParenthesis),
		slot("ForKeyword", n.ForKeyword),
		slot("Type", n.Type),
		slot("ContentList", n.ContentList),
		slot("EndKeyword", n.EndKeyword),
	}
}

// InterfaceTypeNode is an interface or dispinterface type.
type InterfaceTypeNode struct {
	Interface             *Token
	OpenParenthesis       *Token
	BaseInterface         Node
	CloseParenthesis      *Token
	OpenBracket           *Token
	Guid                  Node
	CloseBracket          *Token
	MethodAndPropertyList *ListNode[Node]
	End                   *Token
}

func (n *InterfaceTypeNode) NodeKind() Kind { return KindInterfaceType }

func (n *InterfaceTypeNode) Children() []Child {
	return []Child{
		slot("Interface", n.Interface),
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("BaseInterface", n.BaseInterface),
		slot("CloseParenthesis", n.CloseParenthesis),
		slot("OpenBracket", n.OpenBracket),
		slot("Guid", n.Guid),
		slot("CloseBracket", n.CloseBracket),
		slot("MethodAndPropertyList", n.MethodAndPropertyList),
		slot("End", n.End),
	}
}

type RecordTypeNode struct {
	Record         *Token
	ContentList    *ListNode[*VisibilitySectionNode]
	VariantSection *VariantSectionNode
	End            *Token
}

func (n *RecordTypeNode) NodeKind() Kind { return KindRecordType }

func (n *RecordTypeNode) Children() []Child {
	return []Child{
		slot("Record", n.Record),
		slot("ContentList", n.ContentList),
		slot("VariantSection", n.VariantSection),
		slot("End", n.End),
	}
}

type VariantSectionNode struct {
	Case             *Token
	Name             *Token
	Colon            *Token
	Type             Node
	Of               *Token
	VariantGroupList *ListNode[*VariantGroupNode]
}

func (n *VariantSectionNode) NodeKind() Kind { return KindVariantSection }

func (n *VariantSectionNode) Children() []Child {
	return []Child{
		slot("Case", n.Case),
		slot("Name", n.Name),
		slot("Colon", n.Colon),
		slot("Type", n.Type),
		slot("Of", n.Of),
		slot("VariantGroupList", n.VariantGroupList),
	}
}

type VariantGroupNode struct {
	ValueList        *ListNode[*DelimitedItemNode[Node]]
	Colon            *Token
	OpenParenthesis  *Token
	FieldDeclList    *ListNode[*FieldDeclNode]
	VariantSection   *VariantSectionNode
	CloseParenthesis *Token
	Semicolon        *Token
}

func (n *VariantGroupNode) NodeKind() Kind { return KindVariantGroup }

func (n *VariantGroupNode) Children() []Child {
	return []Child{
		slot("ValueList", n.ValueList),
		slot("Colon", n.Colon),
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("FieldDeclList", n.FieldDeclList),
		slot("VariantSection", n.VariantSection),
		slot("CloseParenthesis", n.CloseParenthesis),
		slot("Semicolon", n.Semicolon),
	}
}

type FieldDeclNode struct {
	NameList                 *ListNode[*DelimitedItemNode[*Token]]
	Colon                    *Token
	Type                     Node
	PortabilityDirectiveList *ListNode[*Token]
	Semicolon                *Token
}

func (n *FieldDeclNode) NodeKind() Kind { return KindFieldDecl }

func (n *FieldDeclNode) Children() []Child {
	return []Child{
		slot("NameList", n.NameList),
		slot("Colon", n.Colon),
		slot("Type", n.Type),
		slot("PortabilityDirectiveList", n.PortabilityDirectiveList),
		slot("Semicolon", n.Semicolon),
	}
}

// FieldSectionNode is an explicit "var" or "class var" field block inside a class.
type FieldSectionNode struct {
	Class     *Token
	Var       *Token
	FieldList *ListNode[*FieldDeclNode]
}

func (n *FieldSectionNode) NodeKind() Kind { return KindFieldSection }

func (n *FieldSectionNode) Children() []Child {
	return []Child{
		slot("Class", n.Class),
		slot("Var", n.Var),
		slot("FieldList", n.FieldList),
	}
}

// VisibilitySectionNode is members under one visibility; the leading section of a class has no Visibility.
type VisibilitySectionNode struct {
	Visibility  *VisibilityNode
	ContentList *ListNode[Node]
}

func (n *VisibilitySectionNode) NodeKind() Kind { return KindVisibilitySection }

func (n *VisibilitySectionNode) Children() []Child {
	return []Child{
		slot("Visibility", n.Visibility),
		slot("ContentList", n.ContentList),
	}
}

type VisibilityNode struct {
	Strict     *Token
	Visibility *Token
}

func (n *VisibilityNode) NodeKind() Kind { return KindVisibility }

func (n *VisibilityNode) Children() []Child {
	return []Child{
		slot("Strict", n.Strict),
		slot("Visibility", n.Visibility),
	}
}

type PropertyNode struct {
	Class               *Token
	Property            *Token
	Name                *Token
	OpenBracket         *Token
	ParameterList       *ListNode[*DelimitedItemNode[*ParameterNode]]
	CloseBracket        *Token
	Colon               *Token
	Type                Node
	Index               *Token
	IndexValue          Node
	Read                *Token
	ReadSpecifier       Node
	Write               *Token
	WriteSpecifier      Node
	Stored              *Token
	StoredSpecifier     Node
	Default             *Token
	DefaultValue        Node
	Implements          *Token
	ImplementsSpecifier *ListNode[*DelimitedItemNode[Node]]
	DirectiveList       *ListNode[*DirectiveNode]
	Semicolon           *Token
}

func (n *PropertyNode) NodeKind() Kind { return KindProperty }

func (n *PropertyNode) Children() []Child {
	return []Child{
		slot("Class", n.Class),
		slot("Property", n.Property),
		slot("Name", n.Name),
		slot("OpenBracket", n.OpenBracket),
		slot("ParameterList", n.ParameterList),
		slot("CloseBracket", n.CloseBracket),
		slot("Colon", n.Colon),
		slot("Type", n.Type),
		slot("Index", n.Index),
		slot("IndexValue", n.IndexValue),
		slot("Read", n.Read),
		slot("ReadSpecifier", n.ReadSpecifier),
		slot("Write", n.Write),
		slot("WriteSpecifier", n.WriteSpecifier),
		slot("Stored", n.Stored),
		slot("StoredSpecifier", n.StoredSpecifier),
		slot("Default", n.Default),
		slot("DefaultValue", n.DefaultValue),
		slot("Implements", n.Implements),
		slot("ImplementsSpecifier", n.ImplementsSpecifier),
		slot("DirectiveList", n.DirectiveList),
		slot("Semicolon", n.Semicolon),
	}
}

type ProcedureTypeNode struct {
	MethodType          *Token
	OpenParenthesis     *Token
	ParameterList       *ListNode[*DelimitedItemNode[*ParameterNode]]
	CloseParenthesis    *Token
	Colon               *Token
	ReturnType          Node
	FirstDirectiveList  *ListNode[*DirectiveNode]
	Of                  *Token
	Object              *Token
	SecondDirectiveList *ListNode[*DirectiveNode]
}

func (n *ProcedureTypeNode) NodeKind() Kind { return KindProcedureType }

func (n *ProcedureTypeNode) Children() []Child {
	return []Child{
		slot("MethodType", n.MethodType),
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("ParameterList", n.ParameterList),
		slot("CloseParenthesis", n.CloseParenthesis),
		slot("Colon", n.Colon),
		slot("ReturnType", n.ReturnType),
		slot("FirstDirectiveList", n.FirstDirectiveList),
		slot("Of", n.Of),
		slot("Object", n.Object),
		slot("SecondDirectiveList", n.SecondDirectiveList),
	}
}

// ProcedureReferenceNode is a method reference type such as "reference to procedure".
type ProcedureReferenceNode struct {
	Reference     *Token
	To            *Token
	ProcedureType *ProcedureTypeNode
}

func (n *ProcedureReferenceNode) NodeKind() Kind { return KindProcedureReference }

func (n *ProcedureReferenceNode) Children() []Child {
	return []Child{
		slot("Reference", n.Reference),
		slot("To", n.To),
		slot("ProcedureType", n.ProcedureType),
	}
}
