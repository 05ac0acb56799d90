package parser

import (
	"fmt"

	"github.com/cameronp98/frothy/parser/token"
)

// ErrorKind classifies syntax errors.
type ErrorKind uint

// ErrorKind constants returned in Error.Kind.
const (
	UnexpectedToken ErrorKind = iota + 1
	ExpectedCloseBrace
	ExpectedBlock
	ExpectedIdentAndValue
	UnexpectedEndOfInput
)

var errorKindStrings = []string{
	UnexpectedToken:       "unexpected-token",
	ExpectedCloseBrace:    "expected-close-brace",
	ExpectedBlock:         "expected-block",
	ExpectedIdentAndValue: "expected-ident-and-value",
	UnexpectedEndOfInput:  "unexpected-end-of-input",
}

func (k ErrorKind) String() string {
	if k == 0 || int(k) >= len(errorKindStrings) {
		return "parse-error"
	}
	return errorKindStrings[k]
}

// Sentinel errors for use with errors.Is.  They match any *Error of the same
// Kind.
var (
	ErrUnexpectedToken       = &Error{Kind: UnexpectedToken}
	ErrExpectedCloseBrace    = &Error{Kind: ExpectedCloseBrace}
	ErrExpectedBlock         = &Error{Kind: ExpectedBlock}
	ErrExpectedIdentAndValue = &Error{Kind: ExpectedIdentAndValue}
	ErrUnexpectedEndOfInput  = &Error{Kind: UnexpectedEndOfInput}
)

// errEndOfInput is returned when a token is demanded but the input has been
// exhausted.
var errEndOfInput = &Error{Kind: UnexpectedEndOfInput}

// Error is a syntax error.  Token is only set for UnexpectedToken errors.
type Error struct {
	Kind  ErrorKind
	Token token.Token
}

func (err *Error) Error() string {
	switch err.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token '%v'", err.Token)
	case ExpectedCloseBrace:
		return "expected '}'"
	case ExpectedBlock:
		return "expected block"
	case ExpectedIdentAndValue:
		return "expected ident + value"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	default:
		return err.Kind.String()
	}
}

// Is returns true if target is an *Error with the same Kind as err.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// ErrNotEnoughOperands matches any *ArityError with errors.Is.
var ErrNotEnoughOperands = &ArityError{}

// ArityError is returned when an operator finds fewer operands on the stack
// than it requires.
type ArityError struct {
	Required  int
	Available int
}

func (err *ArityError) Error() string {
	return fmt.Sprintf("expected %d operands but got %d", err.Required, err.Available)
}

// Is returns true if target is an *ArityError.
func (err *ArityError) Is(target error) bool {
	_, ok := target.(*ArityError)
	return ok
}
