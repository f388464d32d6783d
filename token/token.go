// Package token defines the lexical tokens of the dialect: the
// literal, punctuator, and keyword vocabulary needed for var,
// function, control flow, prototype-based objects, and the handful
// of built-ins this interpreter wires up. There is no let/const,
// class, try/catch, or template literal support -- this is an early
// dialect, not a modern one.
package token

// Type identifies the lexical category of a Token.
type Type int

const (
	Illegal Type = iota
	EOF

	Identifier
	Number
	String

	// Operators and punctuators
	Plus
	Minus
	Asterisk
	Slash
	Percent
	Assign
	PlusAssign
	MinusAssign
	AsteriskAssign
	SlashAssign
	PercentAssign
	AmpersandAssign
	PipeAssign
	CaretAssign
	LeftShiftAssign
	RightShiftAssign
	UnsignedRightShiftAssign
	Equal
	NotEqual
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	And
	Or
	Not
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	BitwiseNot
	LeftShift
	RightShift
	UnsignedRightShift
	Increment
	Decrement

	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Semicolon
	Colon
	Comma
	Dot
	QuestionMark

	// Keywords
	Var
	Function
	Return
	If
	Else
	While
	For
	Break
	Continue
	New
	Delete
	Typeof
	Void
	This
	True
	False
	Null
	Undefined
	With
)

// Token is a single lexeme with its source position. Line and Column
// are 1-based and feed the stack traces the evaluator attaches to
// runtime errors (spec.md section 6, "Error surface").
type Token struct {
	Type    Type
	Literal string
	Number  float64 // populated when Type == Number
	Line    int
	Column  int
}

var keywords = map[string]Type{
	"var":       Var,
	"function":  Function,
	"return":    Return,
	"if":        If,
	"else":      Else,
	"while":     While,
	"for":       For,
	"break":     Break,
	"continue":  Continue,
	"new":       New,
	"delete":    Delete,
	"typeof":    Typeof,
	"void":      Void,
	"this":      This,
	"true":      True,
	"false":     False,
	"null":      Null,
	"undefined": Undefined,
	"with":      With,
}

// LookupIdentifier classifies a scanned identifier as a keyword token
// or a plain Identifier.
func LookupIdentifier(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return Identifier
}

func (t Type) String() string {
	switch t {
	case Illegal:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case Identifier:
		return "IDENT"
	case Number:
		return "NUMBER"
	case String:
		return "STRING"
	default:
		return "TOKEN"
	}
}
