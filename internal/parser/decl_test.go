package parser_test

import (
	"testing"

	"dgrok/internal/ast"
	"dgrok/internal/parser"
	"dgrok/internal/token"
)

func TestTypedConstantForms(t *testing.T) {
	as[*ast.ParenthesizedExpressionNode](t, mustParse(t, parser.RuleTypedConstant, "(1)"))
	as[*ast.BinaryOperationNode](t, mustParse(t, parser.RuleTypedConstant, "(1) + 2"))

	arr := as[*ast.ArrayConstantNode](t, mustParse(t, parser.RuleTypedConstant, "(1, 2)"))
	if arr.ItemList.Len() != 2 {
		t.Fatalf("array items = %d", arr.ItemList.Len())
	}

	parsesAs(t, parser.RuleTypedConstant, "(X: 1; Y: 2)",
		"RecordConstantNode",
		"  OpenParenthesis: OpenParenthesis |(|",
		"  ItemList: ListNode",
		"    Items[0]: DelimitedItemNode",
		"      Item: RecordFieldConstantNode",
		"        Name: Identifier |X|",
		"        Colon: Colon |:|",
		"        Value: Number |1|",
		"      Delimiter: Semicolon |;|",
		"    Items[1]: DelimitedItemNode",
		"      Item: RecordFieldConstantNode",
		"        Name: Identifier |Y|",
		"        Colon: Colon |:|",
		"        Value: Number |2|",
		"      Delimiter: (none)",
		"  CloseParenthesis: CloseParenthesis |)|",
	)

	nested := as[*ast.ArrayConstantNode](t, mustParse(t, parser.RuleTypedConstant, "((X: 1), (X: 2))"))
	for _, item := range ast.Items(nested.ItemList) {
		as[*ast.RecordConstantNode](t, item)
	}
}

func TestRecordConstantTrailingSemicolon(t *testing.T) {
	n := as[*ast.RecordConstantNode](t, mustParse(t, parser.RuleRecordConstant, "(X: 1;)"))
	if n.ItemList.Len() != 1 || n.ItemList.Items[0].Delimiter == nil {
		t.Fatalf("tree:\n%s", ast.Print(n))
	}
}

func TestConstSection(t *testing.T) {
	n := as[*ast.ConstSectionNode](t, mustParse(t, parser.RuleConstSection,
		"const A = 1; B: array [0..1] of Integer = (1, 2); C = 'x' deprecated;"))
	if n.ConstList.Len() != 3 {
		t.Fatalf("decls = %d", n.ConstList.Len())
	}
	b := n.ConstList.Items[1]
	as[*ast.ArrayTypeNode](t, b.Type)
	as[*ast.ArrayConstantNode](t, b.Value)
	if n.ConstList.Items[2].PortabilityDirectiveList.Len() != 1 {
		t.Fatalf("portability directive lost")
	}
	rs := as[*ast.ConstSectionNode](t, mustParse(t, parser.RuleConstSection, "resourcestring SHello = 'Hello';"))
	if rs.ConstKeyword.Kind != token.ResourcestringKeyword {
		t.Fatalf("keyword = %s", rs.ConstKeyword.Describe())
	}
}

func TestVarDecl(t *testing.T) {
	parsesAs(t, parser.RuleVarDecl, "X: Integer = 5;",
		"VarDeclNode",
		"  NameList: ListNode",
		"    Items[0]: DelimitedItemNode",
		"      Item: Identifier |X|",
		"      Delimiter: (none)",
		"  Colon: Colon |:|",
		"  Type: Identifier |Integer|",
		"  FirstPortabilityDirectiveList: ListNode",
		"  AbsoluteSemikeyword: (none)",
		"  AbsoluteAddress: (none)",
		"  EqualSign: EqualSign |=|",
		"  Value: Number |5|",
		"  SecondPortabilityDirectiveList: ListNode",
		"  Semicolon: Semicolon |;|",
	)
	abs := as[*ast.VarDeclNode](t, mustParse(t, parser.RuleVarDecl, "B: Byte absolute W;"))
	if abs.AbsoluteSemikeyword == nil || tokenText(t, abs.AbsoluteAddress) != "W" {
		t.Fatalf("tree:\n%s", ast.Print(abs))
	}
	sec := as[*ast.VarSectionNode](t, mustParse(t, parser.RuleVarSection, "threadvar A, B: Integer; C: string;"))
	if sec.VarList.Len() != 2 || sec.VarList.Items[0].NameList.Len() != 2 {
		t.Fatalf("tree:\n%s", ast.Print(sec))
	}
}

func TestTypeSectionForwardAndShortClasses(t *testing.T) {
	text := "type TFoo = class; TBar = class(TFoo); TBaz = class(TFoo) end; IFoo = interface; TP = type Integer;"
	n := as[*ast.TypeSectionNode](t, mustParse(t, parser.RuleTypeSection, text))
	if n.TypeList.Len() != 5 {
		t.Fatalf("decls = %d\n%s", n.TypeList.Len(), ast.Print(n))
	}
	fwd := as[*ast.TypeForwardDeclarationNode](t, n.TypeList.Items[0])
	if fwd.Type.Kind != token.ClassKeyword {
		t.Fatalf("forward type = %s", fwd.Type.Describe())
	}
	short := as[*ast.ClassTypeNode](t, as[*ast.TypeDeclNode](t, n.TypeList.Items[1]).Type)
	if short.ContentList != nil || short.End != nil || short.InheritanceList.Len() != 1 {
		t.Fatalf("short class:\n%s", ast.Print(short))
	}
	full := as[*ast.ClassTypeNode](t, as[*ast.TypeDeclNode](t, n.TypeList.Items[2]).Type)
	if full.End == nil {
		t.Fatalf("class body lost its end")
	}
	as[*ast.TypeForwardDeclarationNode](t, n.TypeList.Items[3])
	if td := as[*ast.TypeDeclNode](t, n.TypeList.Items[4]); td.TypeKeyword == nil {
		t.Fatalf("distinct type lost 'type'")
	}
}

func TestMethodHeadingDirectives(t *testing.T) {
	n := as[*ast.MethodHeadingNode](t, mustParse(t, parser.RuleMethodHeading,
		"function Foo(const A: string; var B; C: Integer = 0): Boolean; overload; stdcall;"))
	if n.ParameterList.Len() != 3 {
		t.Fatalf("params = %d", n.ParameterList.Len())
	}
	params := ast.Items(n.ParameterList)
	if params[0].Modifier.Kind != token.ConstKeyword || params[0].Type.(*ast.Token).Kind != token.StringKeyword {
		t.Fatalf("first param:\n%s", ast.Print(params[0]))
	}
	if params[1].Colon != nil || params[1].Type != nil {
		t.Fatalf("untyped param:\n%s", ast.Print(params[1]))
	}
	if params[2].DefaultValue == nil {
		t.Fatalf("default value lost")
	}
	if n.DirectiveList.Len() != 2 || n.Semicolon == nil {
		t.Fatalf("directives:\n%s", ast.Print(n))
	}
	for _, d := range n.DirectiveList.Items {
		if d.Semicolon == nil {
			t.Fatalf("directive %s has no leading semicolon", d.Directive.Describe())
		}
	}
}

func TestDirectiveArguments(t *testing.T) {
	msg := as[*ast.MethodHeadingNode](t, mustParse(t, parser.RuleMethodHeading,
		"procedure WMPaint(var Msg: TMessage); message WM_PAINT;"))
	if d := msg.DirectiveList.Items[0]; d.Directive.Kind != token.MessageSemikeyword || tokenText(t, d.Value) != "WM_PAINT" {
		t.Fatalf("message directive:\n%s", ast.Print(d))
	}
	dep := as[*ast.MethodHeadingNode](t, mustParse(t, parser.RuleMethodHeading, "procedure Old; deprecated 'use New';"))
	if tokenText(t, dep.DirectiveList.Items[0].Value) != "'use New'" {
		t.Fatalf("deprecated directive:\n%s", ast.Print(dep))
	}
	arr := as[*ast.MethodHeadingNode](t, mustParse(t, parser.RuleMethodHeading, "procedure Log(const Args: array of const);"))
	open := as[*ast.OpenArrayNode](t, ast.Items(arr.ParameterList)[0].Type)
	if open.Type.(*ast.Token).Kind != token.ConstKeyword {
		t.Fatalf("open array:\n%s", ast.Print(open))
	}
}

func TestForwardMethodHasNoBody(t *testing.T) {
	n := as[*ast.MethodImplementationNode](t, mustParse(t, parser.RuleMethodImplementation, "procedure Foo; forward;"))
	if n.FancyBlock != nil || n.Semicolon != nil {
		t.Fatalf("tree:\n%s", ast.Print(n))
	}
}

func TestExternalMethod(t *testing.T) {
	text := "function MessageBox(H: HWND; Text: PChar): Integer; stdcall; external 'user32.dll' name 'MessageBoxA';"
	n := as[*ast.MethodImplementationNode](t, mustParse(t, parser.RuleMethodImplementation, text))
	if n.FancyBlock != nil {
		t.Fatalf("external method must have no body")
	}
	ext := n.MethodHeading.DirectiveList.Items[1]
	if ext.Directive.Kind != token.ExternalSemikeyword || tokenText(t, ext.Value) != "'user32.dll'" {
		t.Fatalf("external:\n%s", ast.Print(ext))
	}
	if ext.Data.Len() != 1 || ext.Data.Items[0].Keyword.Kind != token.NameSemikeyword {
		t.Fatalf("external data:\n%s", ast.Print(ext))
	}
}

func TestMethodImplementationWithLocals(t *testing.T) {
	text := `procedure TFoo.Bar;
	var
		I: Integer;
	  function Twice(X: Integer): Integer;
	  begin
	    Result := X * 2;
	  end;
	begin
		I := Twice(1);
	end;`
	n := as[*ast.MethodImplementationNode](t, mustParse(t, parser.RuleMethodImplementation, text))
	as[*ast.BinaryOperationNode](t, n.MethodHeading.Name)
	decls := n.FancyBlock.DeclList
	if decls.Len() != 2 {
		t.Fatalf("local decls = %d\n%s", decls.Len(), ast.Print(n))
	}
	as[*ast.VarSectionNode](t, decls.Items[0])
	inner := as[*ast.MethodImplementationNode](t, decls.Items[1])
	if inner.FancyBlock == nil || inner.Semicolon == nil {
		t.Fatalf("nested routine:\n%s", ast.Print(inner))
	}
	as[*ast.BlockNode](t, n.FancyBlock.Block)
}

func TestAsmMethodBody(t *testing.T) {
	n := as[*ast.MethodImplementationNode](t, mustParse(t, parser.RuleMethodImplementation,
		"function Get: Integer; assembler; asm mov eax, 1 end;"))
	as[*ast.AssemblerStatementNode](t, n.FancyBlock.Block)
}

func TestLabelAndExports(t *testing.T) {
	lbl := as[*ast.LabelDeclSectionNode](t, mustParse(t, parser.RuleLabelDeclSection, "label 10, Done;"))
	if lbl.LabelList.Len() != 2 {
		t.Fatalf("labels = %d", lbl.LabelList.Len())
	}
	exp := as[*ast.ExportsStatementNode](t, mustParse(t, parser.RuleExportsStatement, "exports Foo, Bar name 'B' index 2;"))
	items := ast.Items(exp.ItemList)
	if len(items) != 2 || items[1].SpecifierList.Len() != 2 {
		t.Fatalf("tree:\n%s", ast.Print(exp))
	}
}

func TestAttributes(t *testing.T) {
	n := as[*ast.AttributeNode](t, mustParse(t, parser.RuleAssemblyAttribute, "[assembly: AssemblyTitle('X')]"))
	if n.Scope == nil || tokenText(t, n.Scope) != "assembly" {
		t.Fatalf("tree:\n%s", ast.Print(n))
	}
	bare := as[*ast.AttributeNode](t, mustParse(t, parser.RuleAssemblyAttribute, "[Weak]"))
	if bare.Scope != nil {
		t.Fatalf("bare attribute has no scope")
	}
}
