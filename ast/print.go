package ast

import (
	"strconv"
	"strings"
)

// Print renders an expression as a fully-parenthesized textual form,
// grounded on original_source/mjs.cpp's print_visitor (the same
// construct is used there to make operator precedence visible for
// debugging). It is not a round-trippable unparser -- statements are
// not covered -- only a debugging aid wired into cmd/mjs's -ast flag.
func Print(e Expression) string {
	switch n := e.(type) {
	case *Identifier:
		return n.Value
	case *Literal:
		switch n.Kind {
		case NumberLiteral:
			return strconv.FormatFloat(n.Number, 'g', -1, 64)
		case StringLiteral:
			return strconv.Quote(n.Str)
		case BooleanLiteral:
			if n.Bool {
				return "true"
			}
			return "false"
		case NullLiteral:
			return "null"
		default:
			return "undefined"
		}
	case *ThisExpression:
		return "this"
	case *FunctionExpression:
		name := ""
		if n.Name != nil {
			name = n.Name.Value
		}
		return "function " + name + "(...)"
	case *MemberExpression:
		if n.Computed {
			return Print(n.Object) + "[" + Print(n.Property) + "]"
		}
		return Print(n.Object) + "." + Print(n.Property)
	case *CallExpression:
		return Print(n.Callee) + "(" + printList(n.Arguments) + ")"
	case *NewExpression:
		if n.Arguments == nil {
			return "(new " + Print(n.Callee) + ")"
		}
		return "(new " + Print(n.Callee) + "(" + printList(n.Arguments) + "))"
	case *PrefixExpression:
		if isWordOperator(n.Operator) {
			return "(" + n.Operator + " " + Print(n.Operand) + ")"
		}
		return "(" + n.Operator + Print(n.Operand) + ")"
	case *PostfixExpression:
		return "(" + Print(n.Operand) + n.Operator + ")"
	case *BinaryExpression:
		return "(" + Print(n.Left) + " " + n.Operator + " " + Print(n.Right) + ")"
	case *LogicalExpression:
		return "(" + Print(n.Left) + " " + n.Operator + " " + Print(n.Right) + ")"
	case *AssignmentExpression:
		return "(" + Print(n.Left) + " " + n.Operator + " " + Print(n.Right) + ")"
	case *ConditionalExpression:
		return "(" + Print(n.Test) + " ? " + Print(n.Consequent) + " : " + Print(n.Alternate) + ")"
	case *SequenceExpression:
		return "(" + printList(n.Expressions) + ")"
	default:
		return "<?>"
	}
}

// PrintStatement extends Print to statements, recursing into block and
// control-flow bodies so cmd/mjs's -ast flag can dump a whole program
// without a JSON encoder.
func PrintStatement(s Statement) string {
	switch n := s.(type) {
	case *VariableStatement:
		parts := make([]string, len(n.Declarations))
		for i, d := range n.Declarations {
			if d.Init != nil {
				parts[i] = d.Name.Value + " = " + Print(d.Init)
			} else {
				parts[i] = d.Name.Value
			}
		}
		return "var " + strings.Join(parts, ", ") + ";"
	case *EmptyStatement:
		return ";"
	case *ExpressionStatement:
		return Print(n.Expression) + ";"
	case *BlockStatement:
		lines := make([]string, len(n.Statements))
		for i, st := range n.Statements {
			lines[i] = PrintStatement(st)
		}
		return "{ " + strings.Join(lines, " ") + " }"
	case *IfStatement:
		out := "if (" + Print(n.Condition) + ") " + PrintStatement(n.Consequence)
		if n.Alternative != nil {
			out += " else " + PrintStatement(n.Alternative)
		}
		return out
	case *WhileStatement:
		return "while (" + Print(n.Condition) + ") " + PrintStatement(n.Body)
	case *ForStatement:
		return "for (...) " + PrintStatement(n.Body)
	case *BreakStatement:
		return "break;"
	case *ContinueStatement:
		return "continue;"
	case *ReturnStatement:
		if n.Value == nil {
			return "return;"
		}
		return "return " + Print(n.Value) + ";"
	case *FunctionDeclaration:
		return "function " + n.Name.Value + "(...) " + PrintStatement(n.Body)
	case *WithStatement:
		return "with (" + Print(n.Object) + ") " + PrintStatement(n.Body)
	default:
		return "<?>"
	}
}

func printList(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = Print(e)
	}
	return strings.Join(parts, ", ")
}

func isWordOperator(op string) bool {
	return op == "delete" || op == "typeof" || op == "void"
}
