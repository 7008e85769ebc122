// Package errs defines the stable error taxonomy raised by the lexer,
// parser, and evaluator.
package errs

import "fmt"

// Kind identifies the category of a core error. The set is part of the
// package's external contract: callers may switch on Kind without
// depending on message text.
type Kind int

const (
	// InvalidToken is raised when the lexer sees an unrecognized rune
	// sequence.
	InvalidToken Kind = iota
	// UnclosedLiteral is raised for an unterminated string, template, or
	// interpolation.
	UnclosedLiteral
	// UnexpectedToken is raised when the parser has no handler for a
	// token in its current state.
	UnexpectedToken
	// IncompleteExpression is raised when parsing ends with a dangling
	// operator or open delimiter.
	IncompleteExpression
	// AssignmentTarget is raised when `=` follows anything other than a
	// bare identifier.
	AssignmentTarget
	// UnknownCallable is raised when a function or transform name is not
	// registered in the grammar.
	UnknownCallable
	// UserCallable wraps an error returned by a registered function or
	// transform.
	UserCallable
	// RelativeFilterUnsupported is raised by grammars configured to
	// reject relative filter expressions.
	RelativeFilterUnsupported
)

func (k Kind) String() string {
	switch k {
	case InvalidToken:
		return "InvalidToken"
	case UnclosedLiteral:
		return "UnclosedLiteral"
	case UnexpectedToken:
		return "UnexpectedToken"
	case IncompleteExpression:
		return "IncompleteExpression"
	case AssignmentTarget:
		return "AssignmentTarget"
	case UnknownCallable:
		return "UnknownCallable"
	case UserCallable:
		return "UserCallable"
	case RelativeFilterUnsupported:
		return "RelativeFilterUnsupported"
	default:
		return "Unknown"
	}
}

// Error is the single error type surfaced at the package boundary by the
// lexer, parser, and evaluator.
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
	// Wrapped holds the original error for UserCallable, so callers can
	// unwrap to the function/transform's own error.
	Wrapped error
}

func (e *Error) Error() string {
	if e.Line == 0 && e.Column == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// New builds an Error with no position information attached (used by the
// evaluator, which operates over an already-built AST and has no token
// stream to attribute positions to).
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At builds an Error carrying a source position (used by the lexer and
// parser).
func At(kind Kind, line, column int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// Wrap builds a UserCallable error around err, as raised when a
// host-registered function or transform returns an error.
func Wrap(err error, format string, args ...any) *Error {
	return &Error{Kind: UserCallable, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// Errors accumulates multiple parse errors for callers that want to
// report more than the first failure.
type Errors struct {
	errors []*Error
}

func (e *Errors) Add(err *Error) { e.errors = append(e.errors, err) }

func (e *Errors) HasErrors() bool { return len(e.errors) > 0 }

func (e *Errors) Count() int { return len(e.errors) }

func (e *Errors) List() []*Error { return e.errors }

func (e *Errors) First() *Error {
	if len(e.errors) == 0 {
		return nil
	}
	return e.errors[0]
}

func (e *Errors) Error() string {
	if len(e.errors) == 0 {
		return ""
	}
	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.errors[0].Error(), len(e.errors)-1)
}
