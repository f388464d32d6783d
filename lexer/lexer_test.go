package lexer

import (
	"testing"

	"github.com/ezhangle/mjs/token"
)

func TestPunctuators(t *testing.T) {
	input := `( ) { } [ ] ; : , . ? ~`
	expected := []struct {
		typ token.Type
		lit string
	}{
		{token.LeftParen, "("},
		{token.RightParen, ")"},
		{token.LeftBrace, "{"},
		{token.RightBrace, "}"},
		{token.LeftBracket, "["},
		{token.RightBracket, "]"},
		{token.Semicolon, ";"},
		{token.Colon, ":"},
		{token.Comma, ","},
		{token.Dot, "."},
		{token.QuestionMark, "?"},
		{token.BitwiseNot, "~"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ {
			t.Errorf("test[%d]: type wrong. expected=%v, got=%v (lit=%q)", i, exp.typ, tok.Type, tok.Literal)
		}
		if tok.Literal != exp.lit {
			t.Errorf("test[%d]: literal wrong. expected=%q, got=%q", i, exp.lit, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / % = += -= == != < > <= >= && || ! & | ^ << >> >>> ++ --`
	expected := []token.Type{
		token.Plus, token.Minus, token.Asterisk, token.Slash, token.Percent,
		token.Assign, token.PlusAssign, token.MinusAssign,
		token.Equal, token.NotEqual,
		token.LessThan, token.GreaterThan, token.LessThanOrEqual, token.GreaterThanOrEqual,
		token.And, token.Or, token.Not,
		token.BitwiseAnd, token.BitwiseOr, token.BitwiseXor,
		token.LeftShift, token.RightShift, token.UnsignedRightShift,
		token.Increment, token.Decrement,
		token.EOF,
	}
	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp {
			t.Fatalf("test[%d]: type wrong. expected=%v, got=%v (lit=%q)", i, exp, tok.Type, tok.Literal)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := `var function return if else while for break continue new delete typeof void this true false null undefined with foo _bar $baz`
	expected := []struct {
		typ token.Type
		lit string
	}{
		{token.Var, "var"},
		{token.Function, "function"},
		{token.Return, "return"},
		{token.If, "if"},
		{token.Else, "else"},
		{token.While, "while"},
		{token.For, "for"},
		{token.Break, "break"},
		{token.Continue, "continue"},
		{token.New, "new"},
		{token.Delete, "delete"},
		{token.Typeof, "typeof"},
		{token.Void, "void"},
		{token.This, "this"},
		{token.True, "true"},
		{token.False, "false"},
		{token.Null, "null"},
		{token.Undefined, "undefined"},
		{token.With, "with"},
		{token.Identifier, "foo"},
		{token.Identifier, "_bar"},
		{token.Identifier, "$baz"},
	}
	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ || tok.Literal != exp.lit {
			t.Errorf("test[%d]: expected=%v %q, got=%v %q", i, exp.typ, exp.lit, tok.Type, tok.Literal)
		}
	}
}

func TestNumericLiterals(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"0.5", 0.5},
		{"1e3", 1000},
		{"1.5e-2", 0.015},
	}
	for _, c := range cases {
		l := New(c.input)
		tok := l.NextToken()
		if tok.Type != token.Number {
			t.Fatalf("%q: expected Number, got %v", c.input, tok.Type)
		}
		if tok.Number != c.want {
			t.Errorf("%q: expected=%v, got=%v", c.input, c.want, tok.Number)
		}
	}
}

func TestStringLiteralsAndEscapes(t *testing.T) {
	l := New(`"hello" 'world' "a\nb"`)
	want := []string{"hello", "world", "a\nb"}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != token.String {
			t.Fatalf("test[%d]: expected String, got %v", i, tok.Type)
		}
		if tok.Literal != w {
			t.Errorf("test[%d]: expected=%q, got=%q", i, w, tok.Literal)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	l := New("1 // a comment\n/* block */ 2")
	first := l.NextToken()
	second := l.NextToken()
	if first.Number != 1 || second.Number != 2 {
		t.Fatalf("expected 1, 2; got %v, %v", first.Number, second.Number)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("a\nbb")
	first := l.NextToken()
	second := l.NextToken()
	if first.Line != 1 {
		t.Errorf("expected line 1, got %d", first.Line)
	}
	if second.Line != 2 {
		t.Errorf("expected line 2, got %d", second.Line)
	}
}
