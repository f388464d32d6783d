// Package parser implements a Pratt parser over the lexer's token
// stream, producing the ast package's node set. Like the lexer, it is
// an external collaborator per spec.md section 1 -- the evaluator
// only depends on the AST contract in section 6 -- but it is written
// in the teacher's recursive-descent-plus-precedence-climbing style
// (parser/parser.go) so the two halves of the pipeline read as one
// codebase.
package parser

import (
	"fmt"

	"github.com/ezhangle/mjs/ast"
	"github.com/ezhangle/mjs/lexer"
	"github.com/ezhangle/mjs/token"
)

// Precedence levels mirror spec.md section 4.5's table, numbered the
// same direction (lower binds tighter) but inverted into Go ints
// where a higher int means tighter binding, which is what the
// climbing-precedence loop below expects.
const (
	_ int = iota
	precComma        // 15: comma
	precAssignment    // 14: assignment, ternary (right-assoc)
	precLogicalOr     // 13: ||
	precLogicalAnd    //     &&
	precBitwiseOr     // 12: |
	precBitwiseXor    // 11: ^
	precBitwiseAnd    // 10: &
	precEquality      // 9: == !=
	precRelational    // 8: < > <= >=
	precShift         // 7: << >> >>>
	precAdditive      // 6: + -
	precMultiplicative // 5: * / %
	precUnary
	precPostfix
	precCall
	precMember // 1: . [] (member access / call target)
)

var precedences = map[token.Type]int{
	token.Comma:              precComma,
	token.Assign:              precAssignment,
	token.PlusAssign:          precAssignment,
	token.MinusAssign:         precAssignment,
	token.AsteriskAssign:      precAssignment,
	token.SlashAssign:         precAssignment,
	token.PercentAssign:       precAssignment,
	token.AmpersandAssign:     precAssignment,
	token.PipeAssign:          precAssignment,
	token.CaretAssign:         precAssignment,
	token.LeftShiftAssign:     precAssignment,
	token.RightShiftAssign:    precAssignment,
	token.UnsignedRightShiftAssign: precAssignment,
	token.QuestionMark:        precAssignment,
	token.Or:                  precLogicalOr,
	token.And:                 precLogicalAnd,
	token.BitwiseOr:           precBitwiseOr,
	token.BitwiseXor:          precBitwiseXor,
	token.BitwiseAnd:          precBitwiseAnd,
	token.Equal:               precEquality,
	token.NotEqual:            precEquality,
	token.LessThan:            precRelational,
	token.GreaterThan:         precRelational,
	token.LessThanOrEqual:     precRelational,
	token.GreaterThanOrEqual:  precRelational,
	token.LeftShift:           precShift,
	token.RightShift:          precShift,
	token.UnsignedRightShift:  precShift,
	token.Plus:                precAdditive,
	token.Minus:                precAdditive,
	token.Asterisk:            precMultiplicative,
	token.Slash:               precMultiplicative,
	token.Percent:             precMultiplicative,
	token.LeftParen:           precCall,
	token.Dot:                 precMember,
	token.LeftBracket:         precMember,
}

// ParseError carries a source extent, following original_source's
// (file/line/column) convention (mjs.cpp's error reporting, via
// parser.h) and the otto parser's file.Idx shape referenced in
// SPEC_FULL.md's domain-stack section.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Parser turns a token stream into an *ast.Program.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	errors    []error
}

// New constructs a Parser over source text.
func New(source string) *Parser {
	p := &Parser{l: lexer.New(source)}
	p.nextToken()
	p.nextToken()
	return p
}

// ParseProgram parses a full program (or an eval() body) and returns
// any accumulated parse errors.
func (p *Parser) ParseProgram() (*ast.Program, []error) {
	program := &ast.Program{}
	for p.curToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	return program, p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expect(t token.Type) bool {
	if p.curIs(t) {
		p.nextToken()
		return true
	}
	p.addError("expected %s, got %q", t, p.curToken.Literal)
	return false
}

func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, &ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    p.curToken.Line,
		Column:  p.curToken.Column,
	})
}

// ---------- Statements ----------

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.Var:
		return p.parseVariableStatement()
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.Semicolon:
		stmt := &ast.EmptyStatement{Token: p.curToken}
		p.nextToken()
		return stmt
	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Break:
		tok := p.curToken
		p.nextToken()
		p.consumeSemicolon()
		return &ast.BreakStatement{Token: tok}
	case token.Continue:
		tok := p.curToken
		p.nextToken()
		p.consumeSemicolon()
		return &ast.ContinueStatement{Token: tok}
	case token.Return:
		return p.parseReturnStatement()
	case token.Function:
		return p.parseFunctionDeclaration()
	case token.With:
		return p.parseWithStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) consumeSemicolon() {
	if p.curIs(token.Semicolon) {
		p.nextToken()
	}
}

func (p *Parser) parseVariableStatement() *ast.VariableStatement {
	tok := p.curToken
	p.nextToken() // consume 'var'
	stmt := &ast.VariableStatement{Token: tok}
	for {
		decl := &ast.VariableDeclarator{Token: p.curToken}
		if !p.curIs(token.Identifier) {
			p.addError("expected identifier in var declaration, got %q", p.curToken.Literal)
			break
		}
		decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
		if p.curIs(token.Assign) {
			p.nextToken()
			decl.Init = p.parseExpression(precAssignment)
		}
		stmt.Declarations = append(stmt.Declarations, decl)
		if p.curIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.expect(token.LeftBrace)
	for !p.curIs(token.RightBrace) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(token.RightBrace)
	return block
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	tok := p.curToken
	p.nextToken()
	p.expect(token.LeftParen)
	cond := p.parseExpression(precComma)
	p.expect(token.RightParen)
	cons := p.parseStatement()
	stmt := &ast.IfStatement{Token: tok, Condition: cond, Consequence: cons}
	if p.curIs(token.Else) {
		p.nextToken()
		stmt.Alternative = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tok := p.curToken
	p.nextToken()
	p.expect(token.LeftParen)
	cond := p.parseExpression(precComma)
	p.expect(token.RightParen)
	body := p.parseStatement()
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	tok := p.curToken
	p.nextToken()
	p.expect(token.LeftParen)

	stmt := &ast.ForStatement{Token: tok}
	if p.curIs(token.Var) {
		stmt.Init = p.parseVariableStatement()
	} else if !p.curIs(token.Semicolon) {
		stmt.Init = &ast.ExpressionStatement{Expression: p.parseExpression(precComma)}
		p.consumeSemicolon()
	} else {
		p.nextToken() // bare ';'
	}

	if !p.curIs(token.Semicolon) {
		stmt.Test = p.parseExpression(precComma)
	}
	p.expect(token.Semicolon)

	if !p.curIs(token.RightParen) {
		stmt.Update = p.parseExpression(precComma)
	}
	p.expect(token.RightParen)

	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.curToken
	p.nextToken()
	stmt := &ast.ReturnStatement{Token: tok}
	if !p.curIs(token.Semicolon) && !p.curIs(token.RightBrace) && !p.curIs(token.EOF) {
		stmt.Value = p.parseExpression(precComma)
	}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	tok := p.curToken
	p.nextToken()
	decl := &ast.FunctionDeclaration{Token: tok}
	if p.curIs(token.Identifier) {
		decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
	} else {
		p.addError("function declaration requires a name")
	}
	decl.Params = p.parseParamList()
	decl.Body = p.parseBlockStatement()
	return decl
}

func (p *Parser) parseParamList() []*ast.Identifier {
	var params []*ast.Identifier
	p.expect(token.LeftParen)
	for !p.curIs(token.RightParen) && !p.curIs(token.EOF) {
		if p.curIs(token.Identifier) {
			params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
			p.nextToken()
		}
		if p.curIs(token.Comma) {
			p.nextToken()
		}
	}
	p.expect(token.RightParen)
	return params
}

func (p *Parser) parseWithStatement() *ast.WithStatement {
	tok := p.curToken
	p.nextToken()
	p.expect(token.LeftParen)
	obj := p.parseExpression(precComma)
	p.expect(token.RightParen)
	body := p.parseStatement()
	return &ast.WithStatement{Token: tok, Object: obj, Body: body}
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	tok := p.curToken
	expr := p.parseExpression(precComma)
	p.consumeSemicolon()
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

// ---------- Expressions ----------
//
// parseExpression implements precedence climbing: minPrec is the
// lowest-binding (largest spec.md-table-number) operator this call is
// allowed to consume. Assignment and the ternary are right-associative
// (spec.md section 4.5); everything else is left-associative.

func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parseUnary()

	for {
		prec, ok := precedences[p.curToken.Type]
		if !ok || prec < minPrec {
			break
		}
		switch p.curToken.Type {
		case token.QuestionMark:
			left = p.parseConditional(left)
			continue
		case token.Assign, token.PlusAssign, token.MinusAssign, token.AsteriskAssign,
			token.SlashAssign, token.PercentAssign, token.AmpersandAssign, token.PipeAssign,
			token.CaretAssign, token.LeftShiftAssign, token.RightShiftAssign, token.UnsignedRightShiftAssign:
			left = p.parseAssignment(left)
			continue
		case token.Comma:
			left = p.parseSequence(left)
			continue
		case token.And, token.Or:
			left = p.parseLogical(left, prec)
			continue
		case token.LeftParen:
			left = p.parseCall(left)
			continue
		case token.Dot, token.LeftBracket:
			left = p.parseMember(left)
			continue
		default:
			left = p.parseBinary(left, prec)
			continue
		}
	}
	return left
}

func (p *Parser) parseBinary(left ast.Expression, prec int) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	right := p.parseExpression(prec + 1)
	return &ast.BinaryExpression{Token: tok, Operator: op, Left: left, Right: right}
}

func (p *Parser) parseLogical(left ast.Expression, prec int) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	right := p.parseExpression(prec + 1)
	return &ast.LogicalExpression{Token: tok, Operator: op, Left: left, Right: right}
}

func (p *Parser) parseAssignment(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	right := p.parseExpression(precAssignment) // right-associative
	return &ast.AssignmentExpression{Token: tok, Operator: op, Left: left, Right: right}
}

func (p *Parser) parseConditional(test ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	cons := p.parseExpression(precAssignment)
	p.expect(token.Colon)
	alt := p.parseExpression(precAssignment) // right-associative
	return &ast.ConditionalExpression{Token: tok, Test: test, Consequent: cons, Alternate: alt}
}

func (p *Parser) parseSequence(first ast.Expression) ast.Expression {
	tok := p.curToken
	seq := &ast.SequenceExpression{Token: tok, Expressions: []ast.Expression{first}}
	for p.curIs(token.Comma) {
		p.nextToken()
		seq.Expressions = append(seq.Expressions, p.parseExpression(precAssignment))
	}
	return seq
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseArguments()
	return &ast.CallExpression{Token: tok, Callee: callee, Arguments: args}
}

func (p *Parser) parseArguments() []ast.Expression {
	var args []ast.Expression
	p.expect(token.LeftParen)
	for !p.curIs(token.RightParen) && !p.curIs(token.EOF) {
		args = append(args, p.parseExpression(precAssignment))
		if p.curIs(token.Comma) {
			p.nextToken()
		}
	}
	p.expect(token.RightParen)
	return args
}

func (p *Parser) parseMember(object ast.Expression) ast.Expression {
	tok := p.curToken
	if p.curIs(token.Dot) {
		p.nextToken()
		if !p.curIs(token.Identifier) {
			p.addError("expected property name after '.', got %q", p.curToken.Literal)
		}
		prop := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
		return &ast.MemberExpression{Token: tok, Object: object, Property: prop, Computed: false}
	}
	p.nextToken() // consume '['
	prop := p.parseExpression(precComma)
	p.expect(token.RightBracket)
	return &ast.MemberExpression{Token: tok, Object: object, Property: prop, Computed: true}
}

// parseUnary handles prefix operators, new, and falls through to
// parsePostfix/parsePrimary for everything else.
func (p *Parser) parseUnary() ast.Expression {
	switch p.curToken.Type {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Typeof, token.Void, token.Delete:
		tok := p.curToken
		op := tok.Literal
		if tok.Type == token.Typeof {
			op = "typeof"
		} else if tok.Type == token.Void {
			op = "void"
		} else if tok.Type == token.Delete {
			op = "delete"
		}
		p.nextToken()
		operand := p.parseExpression(precUnary)
		return &ast.PrefixExpression{Token: tok, Operator: op, Operand: operand}
	case token.Increment, token.Decrement:
		tok := p.curToken
		op := tok.Literal
		p.nextToken()
		operand := p.parseExpression(precUnary)
		return &ast.PrefixExpression{Token: tok, Operator: op, Operand: operand}
	case token.New:
		return p.parseNew()
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parseNew() ast.Expression {
	tok := p.curToken
	p.nextToken()
	callee := p.parseMemberChainOnly()
	expr := &ast.NewExpression{Token: tok, Callee: callee}
	if p.curIs(token.LeftParen) {
		expr.Arguments = p.parseArguments()
	}
	return expr
}

// parseMemberChainOnly parses a primary expression followed by any
// number of member accesses, but stops before a call -- this lets
// `new X.Y(1)` bind the call to the whole `new` expression rather
// than to `Y`.
func (p *Parser) parseMemberChainOnly() ast.Expression {
	expr := p.parsePrimary()
	for p.curIs(token.Dot) || p.curIs(token.LeftBracket) {
		expr = p.parseMember(expr)
	}
	return expr
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch p.curToken.Type {
		case token.Dot, token.LeftBracket:
			expr = p.parseMember(expr)
		case token.Increment, token.Decrement:
			tok := p.curToken
			p.nextToken()
			expr = &ast.PostfixExpression{Token: tok, Operator: tok.Literal, Operand: expr}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case token.Identifier:
		ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
		return ident
	case token.Number:
		tok := p.curToken
		p.nextToken()
		return &ast.Literal{Token: tok, Kind: ast.NumberLiteral, Number: tok.Number}
	case token.String:
		tok := p.curToken
		p.nextToken()
		return &ast.Literal{Token: tok, Kind: ast.StringLiteral, Str: tok.Literal}
	case token.True, token.False:
		tok := p.curToken
		p.nextToken()
		return &ast.Literal{Token: tok, Kind: ast.BooleanLiteral, Bool: tok.Type == token.True}
	case token.Null:
		tok := p.curToken
		p.nextToken()
		return &ast.Literal{Token: tok, Kind: ast.NullLiteral}
	case token.Undefined:
		tok := p.curToken
		p.nextToken()
		return &ast.Literal{Token: tok, Kind: ast.UndefinedLiteral}
	case token.This:
		tok := p.curToken
		p.nextToken()
		return &ast.ThisExpression{Token: tok}
	case token.Function:
		return p.parseFunctionExpression()
	case token.LeftParen:
		p.nextToken()
		expr := p.parseExpression(precComma)
		p.expect(token.RightParen)
		return expr
	default:
		p.addError("unexpected token %q", p.curToken.Literal)
		tok := p.curToken
		p.nextToken()
		return &ast.Literal{Token: tok, Kind: ast.UndefinedLiteral}
	}
}

func (p *Parser) parseFunctionExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	fn := &ast.FunctionExpression{Token: tok}
	if p.curIs(token.Identifier) {
		fn.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		p.nextToken()
	}
	fn.Params = p.parseParamList()
	fn.Body = p.parseBlockStatement()
	return fn
}
