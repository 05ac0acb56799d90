package frothy

import "fmt"

func panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// ErrorKind classifies evaluation errors.
type ErrorKind uint

// ErrorKind constants returned in EvalError.Kind.
const (
	UndefinedVariable ErrorKind = iota + 1
	NotCallable
	InvalidName
)

// Sentinel errors for use with errors.Is.
var (
	ErrUndefinedVariable = &EvalError{Kind: UndefinedVariable}
	ErrNotCallable       = &EvalError{Kind: NotCallable}
	ErrInvalidName       = &EvalError{Kind: InvalidName}
)

// EvalError is a runtime error.  For UndefinedVariable and InvalidName errors
// Name is the offending identifier; for NotCallable errors it is the
// rendering of the value that was called.
type EvalError struct {
	Kind ErrorKind
	Name string
}

func (err *EvalError) Error() string {
	switch err.Kind {
	case UndefinedVariable:
		return fmt.Sprintf("undefined variable '%s'", err.Name)
	case NotCallable:
		return fmt.Sprintf("value '%s' is not callable", err.Name)
	case InvalidName:
		return fmt.Sprintf("invalid binding name '%s'", err.Name)
	default:
		return "eval-error"
	}
}

// Is returns true if target is an *EvalError with the same Kind as err.
func (err *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	return ok && t.Kind == err.Kind
}
