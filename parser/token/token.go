package token

import (
	"math"
	"strconv"
)

// Token is a single lexeme of a frothy program.  Num is only meaningful for
// NUMBER tokens.
type Token struct {
	Type Type
	Text string
	Num  float64
}

func (tok Token) String() string {
	switch tok.Type {
	case IDENT:
		return tok.Text
	case NUMBER:
		return FormatNumber(tok.Num)
	default:
		return tok.Type.String()
	}
}

type Type uint

// Type constants used for the frothy lexer/parser.
const (
	INVALID Type = iota
	EOF

	IDENT
	NUMBER

	// Operators
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	ASSIGN

	// Delimiters
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:  "invalid",
		EOF:      "EOF",
		IDENT:    "ident",
		NUMBER:   "number",
		PLUS:     "+",
		MINUS:    "-",
		MULTIPLY: "*",
		DIVIDE:   "/",
		ASSIGN:   "=",
		BRACE_L:  "{",
		BRACE_R:  "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Simple returns the token for a single byte operator or delimiter.  Simple
// returns false if b does not stand for a token on its own.
func Simple(b byte) (Token, bool) {
	var typ Type
	switch b {
	case '+':
		typ = PLUS
	case '-':
		typ = MINUS
	case '*':
		typ = MULTIPLY
	case '/':
		typ = DIVIDE
	case '=':
		typ = ASSIGN
	case '{':
		typ = BRACE_L
	case '}':
		typ = BRACE_R
	default:
		return Token{}, false
	}
	return Token{Type: typ, Text: string(b)}, true
}

// FormatNumber renders x in its shortest decimal form, the way numbers are
// displayed everywhere in frothy.
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
