/*
File    : mova/errs/errs.go
Package : errs

Package errs defines Mova's three error kinds. Each is a distinct type
rather than a bare string so the CLI driver can tell them apart with
errors.As and report them consistently.
*/
package errs

import "fmt"

// LexError is raised by the lexer on an unrecognized character.
type LexError struct {
	Line   int
	Column int
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Msg)
}

// ParseError is raised when the token stream does not match the grammar.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Msg)
}

// RuntimeError is raised by the evaluator: unresolved identifiers, use of
// moved or borrowed values, arity mismatches, type errors, division by
// zero, and statement-valued subexpressions.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return e.Msg
}

// Runtimef builds a RuntimeError with a formatted message.
func Runtimef(format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, a...)}
}
