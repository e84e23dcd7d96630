package ast

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindToken
	KindList
	KindDelimitedItem
	KindUnit
	KindProgram
	KindLibrary
	KindPackage
	KindRequiresClause
	KindUsesClause
	KindUsedUnit
	KindUnitSection
	KindInitSection
	KindConstSection
	KindConstantDecl
	KindTypeSection
	KindTypeDecl
	KindTypeForwardDeclaration
	KindVarSection
	KindVarDecl
	KindLabelDeclSection
	KindExportsStatement
	KindExportsItem
	KindExportsSpecifier
	KindAttribute
	KindMethodImplementation
	KindFancyBlock
	KindMethodHeading
	KindMethodResolution
	KindDirective
	KindParameter
	KindOpenArray
	KindRecordConstant
	KindRecordFieldConstant
	KindArrayConstant
	KindArrayType
	KindEnumeratedType
	KindEnumeratedTypeElement
	KindSetOf
	KindFileType
	KindPackedType
	KindPointerType
	KindStringOfLength
	KindClassOf
	KindClassType
	KindTypeHelper
	KindInterfaceType
	KindRecordType
	KindVariantSection
	KindVariantGroup
	KindFieldDecl
	KindFieldSection
	KindVisibilitySection
	KindVisibility
	KindProperty
	KindProcedureType
	KindProcedureReference
	KindBlock
	KindAssemblerStatement
	KindLabeledStatement
	KindIfStatement
	KindCaseStatement
	KindCaseSelector
	KindRepeatStatement
	KindWhileStatement
	KindForStatement
	KindForInStatement
	KindWithStatement
	KindTryFinally
	KindTryExcept
	KindExceptionItem
	KindRaiseStatement
	KindGotoStatement
	KindBinaryOperation
	KindUnaryOperation
	KindParameterized
	KindPointerDereference
	KindParenthesizedExpression
	KindSetLiteral
	KindNumberFormat
	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:                 "Invalid",
	KindToken:                   "Token",
	KindList:                    "ListNode",
	KindDelimitedItem:           "DelimitedItemNode",
	KindUnit:                    "UnitNode",
	KindProgram:                 "ProgramNode",
	KindLibrary:                 "LibraryNode",
	KindPackage:                 "PackageNode",
	KindRequiresClause:          "RequiresClauseNode",
	KindUsesClause:              "UsesClauseNode",
	KindUsedUnit:                "UsedUnitNode",
	KindUnitSection:             "UnitSectionNode",
	KindInitSection:             "InitSectionNode",
	KindConstSection:            "ConstSectionNode",
	KindConstantDecl:            "ConstantDeclNode",
	KindTypeSection:             "TypeSectionNode",
	KindTypeDecl:                "TypeDeclNode",
	KindTypeForwardDeclaration:  "TypeForwardDeclarationNode",
	KindVarSection:              "VarSectionNode",
	KindVarDecl:                 "VarDeclNode",
	KindLabelDeclSection:        "LabelDeclSectionNode",
	KindExportsStatement:        "ExportsStatementNode",
	KindExportsItem:             "ExportsItemNode",
	KindExportsSpecifier:        "ExportsSpecifierNode",
	KindAttribute:               "AttributeNode",
	KindMethodImplementation:    "MethodImplementationNode",
	KindFancyBlock:              "FancyBlockNode",
	KindMethodHeading:           "MethodHeadingNode",
	KindMethodResolution:        "MethodResolutionNode",
	KindDirective:               "DirectiveNode",
	KindParameter:               "ParameterNode",
	KindOpenArray:               "OpenArrayNode",
	KindRecordConstant:          "RecordConstantNode",
	KindRecordFieldConstant:     "RecordFieldConstantNode",
	KindArrayConstant:           "ArrayConstantNode",
	KindArrayType:               "ArrayTypeNode",
	KindEnumeratedType:          "EnumeratedTypeNode",
	KindEnumeratedTypeElement:   "EnumeratedTypeElementNode",
	KindSetOf:                   "SetOfNode",
	KindFileType:                "FileTypeNode",
	KindPackedType:              "PackedTypeNode",
	KindPointerType:             "PointerTypeNode",
	KindStringOfLength:          "StringOfLengthNode",
	KindClassOf:                 "ClassOfNode",
	KindClassType:               "ClassTypeNode",
	KindTypeHelper:              "TypeHelperNode",
	KindInterfaceType:           "InterfaceTypeNode",
	KindRecordType:              "RecordTypeNode",
	KindVariantSection:          "VariantSectionNode",
	KindVariantGroup:            "VariantGroupNode",
	KindFieldDecl:               "FieldDeclNode",
	KindFieldSection:            "FieldSectionNode",
	KindVisibilitySection:       "VisibilitySectionNode",
	KindVisibility:              "VisibilityNode",
	KindProperty:                "PropertyNode",
	KindProcedureType:           "ProcedureTypeNode",
	KindProcedureReference:      "ProcedureReferenceNode",
	KindBlock:                   "BlockNode",
	KindAssemblerStatement:      "AssemblerStatementNode",
	KindLabeledStatement:        "LabeledStatementNode",
	KindIfStatement:             "IfStatementNode",
	KindCaseStatement:           "CaseStatementNode",
	KindCaseSelector:            "CaseSelectorNode",
	KindRepeatStatement:         "RepeatStatementNode",
	KindWhileStatement:          "WhileStatementNode",
	KindForStatement:            "ForStatementNode",
	KindForInStatement:          "ForInStatementNode",
	KindWithStatement:           "WithStatementNode",
	KindTryFinally:              "TryFinallyNode",
	KindTryExcept:               "TryExceptNode",
	KindExceptionItem:           "ExceptionItemNode",
	KindRaiseStatement:          "RaiseStatementNode",
	KindGotoStatement:           "GotoStatementNode",
	KindBinaryOperation:         "BinaryOperationNode",
	KindUnaryOperation:          "UnaryOperationNode",
	KindParameterized:           "ParameterizedNode",
	KindPointerDereference:      "PointerDereferenceNode",
	KindParenthesizedExpression: "ParenthesizedExpressionNode",
	KindSetLiteral:              "SetLiteralNode",
	KindNumberFormat:            "NumberFormatNode",
}

// String returns the type name used by the tree printer, e.g. "ArrayTypeNode".
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Invalid"
}
