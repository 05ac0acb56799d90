package lexer

import "fmt"

// ErrorKind classifies lexical errors.
type ErrorKind uint

// ErrorKind constants returned in Error.Kind.
const (
	UnexpectedByte ErrorKind = iota + 1
	InvalidUtf8
	InvalidNumber
)

var errorKindStrings = []string{
	UnexpectedByte: "unexpected-byte",
	InvalidUtf8:    "invalid-utf8",
	InvalidNumber:  "invalid-number",
}

func (k ErrorKind) String() string {
	if k == 0 || int(k) >= len(errorKindStrings) {
		return "lex-error"
	}
	return errorKindStrings[k]
}

// Sentinel errors for use with errors.Is.  They match any *Error of the same
// Kind.
var (
	ErrUnexpectedByte = &Error{Kind: UnexpectedByte}
	ErrInvalidUtf8    = &Error{Kind: InvalidUtf8}
	ErrInvalidNumber  = &Error{Kind: InvalidNumber}
)

// Error is a lexical error.  Offset is the byte offset in the source of the
// offending byte, or of the start of the offending number.
type Error struct {
	Kind   ErrorKind
	Byte   byte
	Offset int
	Text   string
}

func (err *Error) Error() string {
	switch err.Kind {
	case UnexpectedByte:
		if err.Byte >= ' ' && err.Byte <= '~' {
			return fmt.Sprintf("unexpected byte '%c' at offset %d", err.Byte, err.Offset)
		}
		return fmt.Sprintf("unexpected byte 0x%02x at offset %d", err.Byte, err.Offset)
	case InvalidUtf8:
		return fmt.Sprintf("invalid utf-8 at offset %d", err.Offset)
	case InvalidNumber:
		return fmt.Sprintf("invalid number %q at offset %d", err.Text, err.Offset)
	default:
		return err.Kind.String()
	}
}

// Is returns true if target is an *Error with the same Kind as err.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}
