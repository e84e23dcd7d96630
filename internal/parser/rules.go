package parser

import (
	"fmt"

	"dgrok/internal/ast"
	"dgrok/internal/names"
)

// Rule names a grammar rule that can be parsed on its own.
type Rule uint8

const (
	RuleInvalid Rule = iota
	RuleAddOp
	RuleArrayType
	RuleAssemblerStatement
	RuleAssemblyAttribute
	RuleAtom
	RuleBlock
	RuleCaseSelector
	RuleCaseStatement
	RuleClassHelperType
	RuleClassOfType
	RuleClassType
	RuleConstantDecl
	RuleConstSection
	RuleDirective
	RuleEnumeratedType
	RuleEnumeratedTypeElement
	RuleExceptionItem
	RuleExportsItem
	RuleExportsSpecifier
	RuleExportsStatement
	RuleExpression
	RuleExpressionList
	RuleExpressionOrAssignment
	RuleExpressionOrRange
	RuleExpressionOrRangeList
	RuleExtendedIdent
	RuleFactor
	RuleFancyBlock
	RuleFieldDecl
	RuleFieldSection
	RuleFileType
	RuleForStatement
	RuleGoal
	RuleGotoStatement
	RuleIdent
	RuleIdentList
	RuleIfStatement
	RuleImplementationDecl
	RuleImplementationSection
	RuleInitSection
	RuleInterfaceDecl
	RuleInterfaceSection
	RuleInterfaceType
	RuleLabelDeclSection
	RuleLabelId
	RuleLibrary
	RuleMethodHeading
	RuleMethodImplementation
	RuleMethodOrProperty
	RuleMethodReturnType
	RuleMulOp
	RuleOpenArray
	RulePackage
	RulePackedType
	RuleParameter
	RuleParameterType
	RuleParenthesizedExpression
	RuleParticle
	RulePointerType
	RulePortabilityDirective
	RuleProcedureType
	RuleProgram
	RuleProperty
	RuleQualifiedIdent
	RuleRaiseStatement
	RuleRecordConstant
	RuleRecordHelperType
	RuleRecordType
	RuleRelOp
	RuleRepeatStatement
	RuleRequiresClause
	RuleSetLiteral
	RuleSetType
	RuleSimpleExpression
	RuleSimpleStatement
	RuleStatement
	RuleStatementList
	RuleStringType
	RuleTerm
	RuleTryStatement
	RuleType
	RuleTypedConstant
	RuleTypeDecl
	RuleTypeSection
	RuleUnaryOperator
	RuleUnit
	RuleUsedUnit
	RuleUsesClause
	RuleVarDecl
	RuleVariantGroup
	RuleVariantSection
	RuleVarSection
	RuleVisibility
	RuleVisibilitySection
	RuleVisibilitySectionContent
	RuleWhileStatement
	RuleWithStatement
	ruleCount
)

type ruleEntry struct {
	name  string
	parse func(p *Parser) (ast.Node, error)
}

// ruleTable is indexed by Rule.
var ruleTable = [ruleCount]ruleEntry{
	RuleAddOp:                    {"AddOp", func(p *Parser) (ast.Node, error) { return asNode(p.ParseAddOp()) }},
	RuleArrayType:                {"ArrayType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseArrayType()) }},
	RuleAssemblerStatement:       {"AssemblerStatement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseAssemblerStatement()) }},
	RuleAssemblyAttribute:        {"AssemblyAttribute", func(p *Parser) (ast.Node, error) { return asNode(p.ParseAssemblyAttribute()) }},
	RuleAtom:                     {"Atom", (*Parser).ParseAtom},
	RuleBlock:                    {"Block", (*Parser).ParseBlock},
	RuleCaseSelector:             {"CaseSelector", func(p *Parser) (ast.Node, error) { return asNode(p.ParseCaseSelector()) }},
	RuleCaseStatement:            {"CaseStatement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseCaseStatement()) }},
	RuleClassHelperType:          {"ClassHelperType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseClassHelperType()) }},
	RuleClassOfType:              {"ClassOfType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseClassOfType()) }},
	RuleClassType:                {"ClassType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseClassType()) }},
	RuleConstantDecl:             {"ConstantDecl", func(p *Parser) (ast.Node, error) { return asNode(p.ParseConstantDecl()) }},
	RuleConstSection:             {"ConstSection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseConstSection()) }},
	RuleDirective:                {"Directive", func(p *Parser) (ast.Node, error) { return asNode(p.ParseDirective()) }},
	RuleEnumeratedType:           {"EnumeratedType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseEnumeratedType()) }},
	RuleEnumeratedTypeElement:    {"EnumeratedTypeElement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseEnumeratedTypeElement()) }},
	RuleExceptionItem:            {"ExceptionItem", func(p *Parser) (ast.Node, error) { return asNode(p.ParseExceptionItem()) }},
	RuleExportsItem:              {"ExportsItem", func(p *Parser) (ast.Node, error) { return asNode(p.ParseExportsItem()) }},
	RuleExportsSpecifier:         {"ExportsSpecifier", func(p *Parser) (ast.Node, error) { return asNode(p.ParseExportsSpecifier()) }},
	RuleExportsStatement:         {"ExportsStatement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseExportsStatement()) }},
	RuleExpression:               {"Expression", (*Parser).ParseExpression},
	RuleExpressionList:           {"ExpressionList", func(p *Parser) (ast.Node, error) { return asNode(p.ParseExpressionList()) }},
	RuleExpressionOrAssignment:   {"ExpressionOrAssignment", (*Parser).ParseExpressionOrAssignment},
	RuleExpressionOrRange:        {"ExpressionOrRange", (*Parser).ParseExpressionOrRange},
	RuleExpressionOrRangeList:    {"ExpressionOrRangeList", func(p *Parser) (ast.Node, error) { return asNode(p.ParseExpressionOrRangeList()) }},
	RuleExtendedIdent:            {"ExtendedIdent", func(p *Parser) (ast.Node, error) { return asNode(p.ParseExtendedIdent()) }},
	RuleFactor:                   {"Factor", (*Parser).ParseFactor},
	RuleFancyBlock:               {"FancyBlock", func(p *Parser) (ast.Node, error) { return asNode(p.ParseFancyBlock()) }},
	RuleFieldDecl:                {"FieldDecl", func(p *Parser) (ast.Node, error) { return asNode(p.ParseFieldDecl()) }},
	RuleFieldSection:             {"FieldSection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseFieldSection()) }},
	RuleFileType:                 {"FileType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseFileType()) }},
	RuleForStatement:             {"ForStatement", (*Parser).ParseForStatement},
	RuleGoal:                     {"Goal", (*Parser).ParseGoal},
	RuleGotoStatement:            {"GotoStatement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseGotoStatement()) }},
	RuleIdent:                    {"Ident", func(p *Parser) (ast.Node, error) { return asNode(p.ParseIdent()) }},
	RuleIdentList:                {"IdentList", func(p *Parser) (ast.Node, error) { return asNode(p.ParseIdentList()) }},
	RuleIfStatement:              {"IfStatement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseIfStatement()) }},
	RuleImplementationDecl:       {"ImplementationDecl", (*Parser).ParseImplementationDecl},
	RuleImplementationSection:    {"ImplementationSection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseImplementationSection()) }},
	RuleInitSection:              {"InitSection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseInitSection()) }},
	RuleInterfaceDecl:            {"InterfaceDecl", (*Parser).ParseInterfaceDecl},
	RuleInterfaceSection:         {"InterfaceSection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseInterfaceSection()) }},
	RuleInterfaceType:            {"InterfaceType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseInterfaceType()) }},
	RuleLabelDeclSection:         {"LabelDeclSection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseLabelDeclSection()) }},
	RuleLabelId:                  {"LabelId", func(p *Parser) (ast.Node, error) { return asNode(p.ParseLabelId()) }},
	RuleLibrary:                  {"Library", func(p *Parser) (ast.Node, error) { return asNode(p.ParseLibrary()) }},
	RuleMethodHeading:            {"MethodHeading", func(p *Parser) (ast.Node, error) { return asNode(p.ParseMethodHeading()) }},
	RuleMethodImplementation:     {"MethodImplementation", func(p *Parser) (ast.Node, error) { return asNode(p.ParseMethodImplementation()) }},
	RuleMethodOrProperty:         {"MethodOrProperty", (*Parser).ParseMethodOrProperty},
	RuleMethodReturnType:         {"MethodReturnType", (*Parser).ParseMethodReturnType},
	RuleMulOp:                    {"MulOp", func(p *Parser) (ast.Node, error) { return asNode(p.ParseMulOp()) }},
	RuleOpenArray:                {"OpenArray", func(p *Parser) (ast.Node, error) { return asNode(p.ParseOpenArray()) }},
	RulePackage:                  {"Package", func(p *Parser) (ast.Node, error) { return asNode(p.ParsePackage()) }},
	RulePackedType:               {"PackedType", func(p *Parser) (ast.Node, error) { return asNode(p.ParsePackedType()) }},
	RuleParameter:                {"Parameter", func(p *Parser) (ast.Node, error) { return asNode(p.ParseParameter()) }},
	RuleParameterType:            {"ParameterType", (*Parser).ParseParameterType},
	RuleParenthesizedExpression:  {"ParenthesizedExpression", func(p *Parser) (ast.Node, error) { return asNode(p.ParseParenthesizedExpression()) }},
	RuleParticle:                 {"Particle", (*Parser).ParseParticle},
	RulePointerType:              {"PointerType", func(p *Parser) (ast.Node, error) { return asNode(p.ParsePointerType()) }},
	RulePortabilityDirective:     {"PortabilityDirective", func(p *Parser) (ast.Node, error) { return asNode(p.ParsePortabilityDirective()) }},
	RuleProcedureType:            {"ProcedureType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseProcedureType()) }},
	RuleProgram:                  {"Program", func(p *Parser) (ast.Node, error) { return asNode(p.ParseProgram()) }},
	RuleProperty:                 {"Property", func(p *Parser) (ast.Node, error) { return asNode(p.ParseProperty()) }},
	RuleQualifiedIdent:           {"QualifiedIdent", (*Parser).ParseQualifiedIdent},
	RuleRaiseStatement:           {"RaiseStatement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseRaiseStatement()) }},
	RuleRecordConstant:           {"RecordConstant", func(p *Parser) (ast.Node, error) { return asNode(p.ParseRecordConstant()) }},
	RuleRecordHelperType:         {"RecordHelperType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseRecordHelperType()) }},
	RuleRecordType:               {"RecordType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseRecordType()) }},
	RuleRelOp:                    {"RelOp", func(p *Parser) (ast.Node, error) { return asNode(p.ParseRelOp()) }},
	RuleRepeatStatement:          {"RepeatStatement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseRepeatStatement()) }},
	RuleRequiresClause:           {"RequiresClause", func(p *Parser) (ast.Node, error) { return asNode(p.ParseRequiresClause()) }},
	RuleSetLiteral:               {"SetLiteral", func(p *Parser) (ast.Node, error) { return asNode(p.ParseSetLiteral()) }},
	RuleSetType:                  {"SetType", func(p *Parser) (ast.Node, error) { return asNode(p.ParseSetType()) }},
	RuleSimpleExpression:         {"SimpleExpression", (*Parser).ParseSimpleExpression},
	RuleSimpleStatement:          {"SimpleStatement", (*Parser).ParseSimpleStatement},
	RuleStatement:                {"Statement", (*Parser).ParseStatement},
	RuleStatementList:            {"StatementList", func(p *Parser) (ast.Node, error) { return asNode(p.ParseStatementList()) }},
	RuleStringType:               {"StringType", (*Parser).ParseStringType},
	RuleTerm:                     {"Term", (*Parser).ParseTerm},
	RuleTryStatement:             {"TryStatement", (*Parser).ParseTryStatement},
	RuleType:                     {"Type", (*Parser).ParseType},
	RuleTypedConstant:            {"TypedConstant", (*Parser).ParseTypedConstant},
	RuleTypeDecl:                 {"TypeDecl", (*Parser).ParseTypeDecl},
	RuleTypeSection:              {"TypeSection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseTypeSection()) }},
	RuleUnaryOperator:            {"UnaryOperator", func(p *Parser) (ast.Node, error) { return asNode(p.ParseUnaryOperator()) }},
	RuleUnit:                     {"Unit", func(p *Parser) (ast.Node, error) { return asNode(p.ParseUnit()) }},
	RuleUsedUnit:                 {"UsedUnit", func(p *Parser) (ast.Node, error) { return asNode(p.ParseUsedUnit()) }},
	RuleUsesClause:               {"UsesClause", func(p *Parser) (ast.Node, error) { return asNode(p.ParseUsesClause()) }},
	RuleVarDecl:                  {"VarDecl", func(p *Parser) (ast.Node, error) { return asNode(p.ParseVarDecl()) }},
	RuleVariantGroup:             {"VariantGroup", func(p *Parser) (ast.Node, error) { return asNode(p.ParseVariantGroup()) }},
	RuleVariantSection:           {"VariantSection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseVariantSection()) }},
	RuleVarSection:               {"VarSection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseVarSection()) }},
	RuleVisibility:               {"Visibility", func(p *Parser) (ast.Node, error) { return asNode(p.ParseVisibility()) }},
	RuleVisibilitySection:        {"VisibilitySection", func(p *Parser) (ast.Node, error) { return asNode(p.ParseVisibilitySection()) }},
	RuleVisibilitySectionContent: {"VisibilitySectionContent", (*Parser).ParseVisibilitySectionContent},
	RuleWhileStatement:           {"WhileStatement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseWhileStatement()) }},
	RuleWithStatement:            {"WithStatement", func(p *Parser) (ast.Node, error) { return asNode(p.ParseWithStatement()) }},
}

func (r Rule) String() string {
	if r > RuleInvalid && r < ruleCount {
		return ruleTable[r].name
	}
	return "Invalid"
}

// LookupRule finds a rule by name, ignoring case.
func LookupRule(name string) (Rule, bool) {
	for r := RuleInvalid + 1; r < ruleCount; r++ {
		if names.Equal(ruleTable[r].name, name) {
			return r, true
		}
	}
	return RuleInvalid, false
}

// ParseRule parses exactly one rule; trailing input is an error.
func (p *Parser) ParseRule(rule Rule) (ast.Node, error) {
	if rule <= RuleInvalid || rule >= ruleCount {
		return nil, fmt.Errorf("parser: unknown rule %d", rule)
	}
	n, err := ruleTable[rule].parse(p)
	if err != nil {
		return nil, err
	}
	if err := p.requireEOF(); err != nil {
		return nil, err
	}
	return n, nil
}

// Parse parses a whole file.
func (p *Parser) Parse() (ast.Node, error) {
	return p.ParseRule(RuleGoal)
}
