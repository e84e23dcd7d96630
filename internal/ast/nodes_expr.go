package ast

// BinaryOperationNode is any infix operation, including qualified names (Dot), ranges (DotDot) and assignment (ColonEquals).
type BinaryOperationNode struct {
	Left     Node
	Operator *Token
	Right    Node
}

func (n *BinaryOperationNode) NodeKind() Kind { return KindBinaryOperation }

func (n *BinaryOperationNode) Children() []Child {
	return []Child{
		slot("Left", n.Left),
		slot("Operator", n.Operator),
		slot("Right", n.Right),
	}
}

type UnaryOperationNode struct {
	Operator *Token
	Operand  Node
}

func (n *UnaryOperationNode) NodeKind() Kind { return KindUnaryOperation }

func (n *UnaryOperationNode) Children() []Child {
	return []Child{
		slot("Operator", n.Operator),
		slot("Operand", n.Operand),
	}
}

// ParameterizedNode is a call or index: Left followed by a parenthesised or bracketed argument list.
type ParameterizedNode struct {
	Left           Node
	OpenDelimiter  *Token
	ParameterList  *ListNode[*DelimitedItemNode[Node]]
	CloseDelimiter *Token
}

func (n *ParameterizedNode) NodeKind() Kind { return KindParameterized }

func (n *ParameterizedNode) Children() []Child {
	return []Child{
		slot("Left", n.Left),
		slot("OpenDelimiter", n.OpenDelimiter),
		slot("ParameterList", n.ParameterList),
		slot("CloseDelimiter", n.CloseDelimiter),
	}
}

type PointerDereferenceNode struct {
	Operand Node
	Caret   *Token
}

func (n *PointerDereferenceNode) NodeKind() Kind { return KindPointerDereference }

func (n *PointerDereferenceNode) Children() []Child {
	return []Child{
		slot("Operand", n.Operand),
		slot("Caret", n.Caret),
	}
}

type ParenthesizedExpressionNode struct {
	OpenParenthesis  *Token
	Expression       Node
	CloseParenthesis *Token
}

func (n *ParenthesizedExpressionNode) NodeKind() Kind { return KindParenthesizedExpression }

func (n *ParenthesizedExpressionNode) Children() []Child {
	return []Child{
		slot("OpenParenthesis", n.OpenParenthesis),
		slot("Expression", n.Expression),
		slot("CloseParenthesis", n.CloseParenthesis),
	}
}

type SetLiteralNode struct {
	OpenBracket  *Token
	ItemList     *ListNode[*DelimitedItemNode[Node]]
	CloseBracket *Token
}

func (n *SetLiteralNode) NodeKind() Kind { return KindSetLiteral }

func (n *SetLiteralNode) Children() []Child {
	return []Child{
		slot("OpenBracket", n.OpenBracket),
		slot("ItemList", n.ItemList),
		slot("CloseBracket", n.CloseBracket),
	}
}

// NumberFormatNode is a Write argument with field width and precision, e.g. "X:8:2".
type NumberFormatNode struct {
	Value          Node
	SizeColon      *Token
	Size           Node
	PrecisionColon *Token
	Precision      Node
}

func (n *NumberFormatNode) NodeKind() Kind { return KindNumberFormat }

func (n *NumberFormatNode) Children() []Child {
	return []Child{
		slot("Value", n.Value),
		slot("SizeColon", n.SizeColon),
		slot("Size", n.Size),
		slot("PrecisionColon", n.PrecisionColon),
		slot("Precision", n.Precision),
	}
}
