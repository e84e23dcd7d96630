package ast

type BlockNode struct {
	BeginKeyword  *Token
	StatementList *ListNode[*DelimitedItemNode[Node]]
	EndKeyword    *Token
}

func (n *BlockNode) NodeKind() Kind { return KindBlock }

func (n *BlockNode) Children() []Child {
	return []Child{
		slot("BeginKeyword", n.BeginKeyword),
		slot("StatementList", n.StatementList),
		slot("EndKeyword", n.EndKeyword),
	}
}

// AssemblerStatementNode is an asm block; its body is skipped.
type AssemblerStatementNode struct {
	AsmKeyword *Token
	EndKeyword *Token
}

func (n *AssemblerStatementNode) NodeKind() Kind { return KindAssemblerStatement }

func (n *AssemblerStatementNode) Children() []Child {
	return []Child{
		slot("AsmKeyword", n.AsmKeyword),
		slot("EndKeyword", n.EndKeyword),
	}
}

type LabeledStatementNode struct {
	LabelId   *Token
	Colon     *Token
	Statement Node
}

func (n *LabeledStatementNode) NodeKind() Kind { return KindLabeledStatement }

func (n *LabeledStatementNode) Children() []Child {
	return []Child{
		slot("LabelId", n.LabelId),
		slot("Colon", n.Colon),
		slot("Statement", n.Statement),
	}
}

type IfStatementNode struct {
	If            *Token
	Condition     Node
	Then          *Token
	ThenStatement Node
	Else          *Token
	ElseStatement Node
}

func (n *IfStatementNode) NodeKind() Kind { return KindIfStatement }

func (n *IfStatementNode) Children() []Child {
	return []Child{
		slot("If", n.If),
		slot("Condition", n.Condition),
		slot("Then", n.Then),
		slot("ThenStatement", n.ThenStatement),
		slot("Else", n.Else),
		slot("ElseStatement", n.ElseStatement),
	}
}

type CaseStatementNode struct {
	Case           *Token
	Expression     Node
	Of             *Token
	SelectorList   *ListNode[*CaseSelectorNode]
	Else           *Token
	ElseStatements *ListNode[*DelimitedItemNode[Node]]
	End            *Token
}

func (n *CaseStatementNode) NodeKind() Kind { return KindCaseStatement }

func (n *CaseStatementNode) Children() []Child {
	return []Child{
		slot("Case", n.Case),
		slot("Expression", n.Expression),
		slot("Of", n.Of),
		slot("SelectorList", n.SelectorList),
		slot("Else", n.Else),
		slot("ElseStatements", n.ElseStatements),
		slot("End", n.End),
	}
}

type CaseSelectorNode struct {
	ValueList *ListNode[*DelimitedItemNode[Node]]
	Colon     *Token
	Statement Node
	Semicolon *Token
}

func (n *CaseSelectorNode) NodeKind() Kind { return KindCaseSelector }

func (n *CaseSelectorNode) Children() []Child {
	return []Child{
		slot("ValueList", n.ValueList),
		slot("Colon", n.Colon),
		slot("Statement", n.Statement),
		slot("Semicolon", n.Semicolon),
	}
}

type RepeatStatementNode struct {
	Repeat        *Token
	StatementList *ListNode[*DelimitedItemNode[Node]]
	Until         *Token
	Condition     Node
}

func (n *RepeatStatementNode) NodeKind() Kind { return KindRepeatStatement }

func (n *RepeatStatementNode) Children() []Child {
	return []Child{
		slot("Repeat", n.Repeat),
		slot("StatementList", n.StatementList),
		slot("Until", n.Until),
		slot("Condition", n.Condition),
	}
}

type WhileStatementNode struct {
	While     *Token
	Condition Node
	Do        *Token
	Statement Node
}

func (n *WhileStatementNode) NodeKind() Kind { return KindWhileStatement }

func (n *WhileStatementNode) Children() []Child {
	return []Child{
		slot("While", n.While),
		slot("Condition", n.Condition),
		slot("Do", n.Do),
		slot("Statement", n.Statement),
	}
}

type ForStatementNode struct {
	For           *Token
	LoopVariable  *Token
	ColonEquals   *Token
	StartingValue Node
	Direction     *Token
	EndingValue   Node
	Do            *Token
	Statement     Node
}

func (n *ForStatementNode) NodeKind() Kind { return KindForStatement }

func (n *ForStatementNode) Children() []Child {
	return []Child{
		slot("For", n.For),
		slot("LoopVariable", n.LoopVariable),
		slot("ColonEquals", n.ColonEquals),
		slot("StartingValue", n.StartingValue),
		slot("Direction", n.Direction),
		slot("EndingValue", n.EndingValue),
		slot("Do", n.Do),
		slot("Statement", n.Statement),
	}
}

type ForInStatementNode struct {
	For          *Token
	LoopVariable *Token
	In           *Token
	Expression   Node
	Do           *Token
	Statement    Node
}

func (n *ForInStatementNode) NodeKind() Kind { return KindForInStatement }

func (n *ForInStatementNode) Children() []Child {
	return []Child{
		slot("For", n.For),
		slot("LoopVariable", n.LoopVariable),
		slot("In", n.In),
		slot("Expression", n.Expression),
		slot("Do", n.Do),
		slot("Statement", n.Statement),
	}
}

type WithStatementNode struct {
	With           *Token
	ExpressionList *ListNode[*DelimitedItemNode[Node]]
	Do             *Token
	Statement      Node
}

func (n *WithStatementNode) NodeKind() Kind { return KindWithStatement }

func (n *WithStatementNode) Children() []Child {
	return []Child{
		slot("With", n.With),
		slot("ExpressionList", n.ExpressionList),
		slot("Do", n.Do),
		slot("Statement", n.Statement),
	}
}

type TryFinallyNode struct {
	Try               *Token
	TryStatements     *ListNode[*DelimitedItemNode[Node]]
	Finally           *Token
	FinallyStatements *ListNode[*DelimitedItemNode[Node]]
	End               *Token
}

func (n *TryFinallyNode) NodeKind() Kind { return KindTryFinally }

func (n *TryFinallyNode) Children() []Child {
	return []Child{
		slot("Try", n.Try),
		slot("TryStatements", n.TryStatements),
		slot("Finally", n.Finally),
		slot("FinallyStatements", n.FinallyStatements),
		slot("End", n.End),
	}
}

// TryExceptNode is a try/except block. Handlers land in ExceptionItemList; a plain except body lands in ExceptStatements.
type TryExceptNode struct {
	Try               *Token
	TryStatements     *ListNode[*DelimitedItemNode[Node]]
	Except            *Token
	ExceptStatements  *ListNode[*DelimitedItemNode[Node]]
	ExceptionItemList *ListNode[*ExceptionItemNode]
	Else              *Token
	ElseStatements    *ListNode[*DelimitedItemNode[Node]]
	End               *Token
}

func (n *TryExceptNode) NodeKind() Kind { return KindTryExcept }

func (n *TryExceptNode) Children() []Child {
	return []Child{
		slot("Try", n.Try),
		slot("TryStatements", n.TryStatements),
		slot("Except", n.Except),
		slot("ExceptStatements", n.ExceptStatements),
		slot("ExceptionItemList", n.ExceptionItemList),
		slot("Else", n.Else),
		slot("ElseStatements", n.ElseStatements),
		slot("End", n.End),
	}
}

// ExceptionItemNode is an "on E: Exception do" handler.
type ExceptionItemNode struct {
	On        *Token
	Name      *Token
	Colon     *Token
	Type      Node
	Do        *Token
	Statement Node
	Semicolon *Token
}

func (n *ExceptionItemNode) NodeKind() Kind { return KindExceptionItem }

func (n *ExceptionItemNode) Children() []Child {
	return []Child{
		slot("On", n.On),
		slot("Name", n.Name),
		slot("Colon", n.Colon),
		slot("Type", n.Type),
		slot("Do", n.Do),
		slot("Statement", n.Statement),
		slot("Semicolon", n.Semicolon),
	}
}

type RaiseStatementNode struct {
	Raise     *Token
	Exception Node
	At        *Token
	Address   Node
}

func (n *RaiseStatementNode) NodeKind() Kind { return KindRaiseStatement }

func (n *RaiseStatementNode) Children() []Child {
	return []Child{
		slot("Raise", n.Raise),
		slot("Exception", n.Exception),
		slot("At", n.At),
		slot("Address", n.Address),
	}
}

type GotoStatementNode struct {
	Goto    *Token
	LabelId *Token
}

func (n *GotoStatementNode) NodeKind() Kind { return KindGotoStatement }

func (n *GotoStatementNode) Children() []Child {
	return []Child{
		slot("Goto", n.Goto),
		slot("LabelId", n.LabelId),
	}
}
