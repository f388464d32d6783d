package runtime

import "fmt"

// Frame is one (file, line, column) extent in a runtime Error's stack
// trace (spec.md section 6, "Error surface"). The evaluator's evalCall
// appends one, from the call expression's source position, for each
// call expression the error unwinds through; File is left empty, and
// a `new` expression adds no frame.
type Frame struct {
	File   string
	Line   int
	Column int
}

func (f Frame) String() string {
	file := f.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", file, f.Line, f.Column)
}

// Error is the single runtime error type spec.md section 7 calls for:
// error kinds are carried in the message, not as distinct Go types,
// and a runtime error unwinds the entire evaluation -- there is no
// user-level catch in this dialect.
type Error struct {
	Kind    string // "ReferenceError", "TypeError", "RangeError", or "Error"
	Message string
	Stack   []Frame
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AddFrame appends a call-site extent as the error unwinds. Frames
// accumulate innermost-first; callers append as each activation pops.
func (e *Error) AddFrame(f Frame) {
	e.Stack = append(e.Stack, f)
}

func NewReferenceError(format string, args ...interface{}) *Error {
	return &Error{Kind: "ReferenceError", Message: fmt.Sprintf(format, args...)}
}

func NewTypeError(format string, args ...interface{}) *Error {
	return &Error{Kind: "TypeError", Message: fmt.Sprintf(format, args...)}
}

func NewRangeError(format string, args ...interface{}) *Error {
	return &Error{Kind: "RangeError", Message: fmt.Sprintf(format, args...)}
}

// NewRuntimeError covers parse errors and "not implemented" AST shapes
// (spec.md section 7), which surface as the same error type under the
// generic "Error" kind.
func NewRuntimeError(format string, args ...interface{}) *Error {
	return &Error{Kind: "Error", Message: fmt.Sprintf(format, args...)}
}
