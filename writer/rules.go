package writer

import (
	"strings"

	"github.com/contractshark/solc-typed-ast/ast"
)

// defaultRules is the standard rendering rule for every node kind.
// DefaultMapping copies it so caller overrides never mutate the table.
var defaultRules = map[ast.NodeKind]RuleFunc{
	ast.KindSourceUnit:      writeSourceUnit,
	ast.KindPragmaDirective: writePragma,
	ast.KindImportDirective: writeImport,

	ast.KindContractDefinition:  writeContract,
	ast.KindFunctionDefinition:  writeFunction,
	ast.KindModifierDefinition:  writeModifierDefinition,
	ast.KindVariableDeclaration: writeVariableDeclaration,
	ast.KindStructDefinition:    writeStruct,
	ast.KindEnumDefinition:      writeEnum,
	ast.KindEnumValue:           writeEnumValue,
	ast.KindEventDefinition:     writeEvent,
	ast.KindErrorDefinition:     writeErrorDefinition,
	ast.KindParameterList:       writeParameterList,

	ast.KindUserDefinedValueTypeDefinition: writeUserDefinedValueType,

	ast.KindBlock:                        writeBlock,
	ast.KindUncheckedBlock:               writeUncheckedBlock,
	ast.KindExpressionStatement:          writeExpressionStatement,
	ast.KindVariableDeclarationStatement: writeVariableDeclarationStatement,
	ast.KindIfStatement:                  writeIf,
	ast.KindForStatement:                 writeFor,
	ast.KindWhileStatement:               writeWhile,
	ast.KindDoWhileStatement:             writeDoWhile,
	ast.KindReturn:                       writeReturn,
	ast.KindBreak:                        writeBreak,
	ast.KindContinue:                     writeContinue,
	ast.KindEmitStatement:                writeEmit,
	ast.KindRevertStatement:              writeRevert,
	ast.KindPlaceholderStatement:         writePlaceholder,

	ast.KindIdentifier:                   writeIdentifier,
	ast.KindLiteral:                      writeLiteral,
	ast.KindBinaryOperation:              writeBinary,
	ast.KindUnaryOperation:               writeUnary,
	ast.KindAssignment:                   writeAssignment,
	ast.KindConditional:                  writeConditional,
	ast.KindFunctionCall:                 writeCall,
	ast.KindMemberAccess:                 writeMemberAccess,
	ast.KindIndexAccess:                  writeIndexAccess,
	ast.KindTupleExpression:              writeTuple,
	ast.KindNewExpression:                writeNew,
	ast.KindElementaryTypeNameExpression: writeElementaryTypeNameExpression,

	ast.KindElementaryTypeName:  writeElementaryTypeName,
	ast.KindUserDefinedTypeName: writeUserDefinedTypeName,
	ast.KindArrayTypeName:       writeArrayTypeName,
	ast.KindMapping:             writeMappingTypeName,
	ast.KindFunctionTypeName:    writeFunctionTypeName,

	ast.KindStructuredDocumentation: writeDocumentation,
	ast.KindInheritanceSpecifier:    writeInheritanceSpecifier,
	ast.KindModifierInvocation:      writeModifierInvocation,
	ast.KindOverrideSpecifier:       writeOverrideSpecifier,
}

func writeDocumentation(w *Renderer, n ast.Node) error {
	doc := n.(*ast.StructuredDocumentation)
	if w.policy.Compact {
		w.Write("/** " + strings.ReplaceAll(doc.Text, "\n", " ") + " */")
		return nil
	}
	for i, ln := range strings.Split(doc.Text, "\n") {
		if i > 0 {
			w.Newline()
			w.Indent()
		}
		w.Write("/// ")
		w.Write(ln)
	}
	return nil
}

// docBefore renders a documentation node ahead of the declaration being
// written at the current position. Nil documentation writes nothing.
func (w *Renderer) docBefore(doc *ast.StructuredDocumentation) error {
	if doc == nil {
		return nil
	}
	if err := w.Render(doc); err != nil {
		return err
	}
	w.Newline()
	w.Indent()
	return nil
}
