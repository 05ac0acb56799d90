package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/cameronp98/frothy/parser/token"
)

// Lexer produces tokens on demand from frothy source text.  The zero Lexer is
// not usable; construct one with New or NewAt.
type Lexer struct {
	scanner token.Scanner
}

// New returns a Lexer that reads tokens from the beginning of src.
func New(src []byte) *Lexer {
	return NewAt(src, 0)
}

// NewAt returns a Lexer that starts reading tokens at the given byte offset
// of src.
func NewAt(src []byte, offset int) *Lexer {
	return &Lexer{scanner: token.NewScanner(src, offset)}
}

// Offset returns the byte offset at which the next call to NextToken will
// begin scanning.
func (lex *Lexer) Offset() int {
	return lex.scanner.Offset()
}

// More returns true if at least one more token (or lexical error) remains in
// the input.  Whitespace and comments are consumed by More.
func (lex *Lexer) More() bool {
	lex.skipWhitespace()
	return !lex.scanner.EOF()
}

// Peek returns the next token without consuming it.  Peek can be called any
// number of times and always returns the same result until NextToken is
// called.
func (lex *Lexer) Peek() (token.Token, error) {
	cp := *lex
	return cp.NextToken()
}

// Tokens consumes the remaining input and returns all of its tokens, not
// including the terminating EOF token.
func (lex *Lexer) Tokens() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// NextToken consumes and returns the next token.  When the input is
// exhausted NextToken returns a token with type token.EOF.
func (lex *Lexer) NextToken() (token.Token, error) {
	lex.skipWhitespace()
	c, ok := lex.scanner.Peek()
	if !ok {
		return token.Token{Type: token.EOF}, nil
	}
	if c >= utf8.RuneSelf {
		return lex.nonASCII()
	}
	lex.scanner.ScanByte()
	switch {
	case c == '-':
		if next, ok := lex.scanner.Peek(); ok && isDigit(next) {
			return lex.readNumber()
		}
	case isDigit(c):
		return lex.readNumber()
	case isLetter(c):
		return lex.readIdent()
	}
	if tok, ok := token.Simple(c); ok {
		lex.scanner.Ignore()
		return tok, nil
	}
	return token.Token{}, lex.fail(UnexpectedByte, c)
}

func (lex *Lexer) nonASCII() (token.Token, error) {
	c, _ := lex.scanner.Peek()
	r, _ := utf8.DecodeRune(lex.scanner.Rest())
	lex.scanner.ScanByte()
	if r == utf8.RuneError {
		return token.Token{}, lex.fail(InvalidUtf8, c)
	}
	return token.Token{}, lex.fail(UnexpectedByte, c)
}

func (lex *Lexer) readIdent() (token.Token, error) {
	lex.scanner.ScanWhile(isWord)
	if err := lex.checkSpanEnd(); err != nil {
		return token.Token{}, err
	}
	tok := token.Token{Type: token.IDENT, Text: lex.scanner.Text()}
	lex.scanner.Ignore()
	return tok, nil
}

// readNumber is called after the first byte of a number (a digit or a
// negative sign) has been scanned.
func (lex *Lexer) readNumber() (token.Token, error) {
	lex.scanner.ScanWhile(isDigit)
	if c, ok := lex.scanner.Peek(); ok && c == '.' {
		lex.scanner.ScanByte()
		if lex.scanner.ScanWhile(isDigit) == 0 {
			return token.Token{}, lex.invalidNumber()
		}
	}
	if c, ok := lex.scanner.Peek(); ok && (isWord(c) || c == '.') {
		return token.Token{}, lex.invalidNumber()
	}
	if err := lex.checkSpanEnd(); err != nil {
		return token.Token{}, err
	}
	text := lex.scanner.Text()
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, lex.invalidNumber()
	}
	tok := token.Token{Type: token.NUMBER, Text: text, Num: x}
	lex.scanner.Ignore()
	return tok, nil
}

// checkSpanEnd reports an InvalidUtf8 error when an identifier or number is
// immediately followed by bytes that are not valid utf-8.
func (lex *Lexer) checkSpanEnd() error {
	c, ok := lex.scanner.Peek()
	if !ok || c < utf8.RuneSelf {
		return nil
	}
	r, _ := utf8.DecodeRune(lex.scanner.Rest())
	if r != utf8.RuneError {
		return nil
	}
	lex.scanner.ScanByte()
	return lex.fail(InvalidUtf8, c)
}

func (lex *Lexer) invalidNumber() error {
	lex.scanner.ScanWhile(func(c byte) bool { return isWord(c) || c == '.' })
	err := &Error{
		Kind:   InvalidNumber,
		Offset: lex.scanner.Start(),
		Text:   lex.scanner.Text(),
	}
	lex.scanner.Ignore()
	return err
}

func (lex *Lexer) fail(kind ErrorKind, c byte) error {
	err := &Error{
		Kind:   kind,
		Byte:   c,
		Offset: lex.scanner.Offset() - 1,
		Text:   lex.scanner.Text(),
	}
	lex.scanner.Ignore()
	return err
}

func (lex *Lexer) skipWhitespace() {
	for {
		lex.scanner.ScanWhile(isSpace)
		c, ok := lex.scanner.Peek()
		if !ok || c != '#' {
			break
		}
		lex.scanner.ScanWhile(func(c byte) bool { return c != '\n' })
	}
	lex.scanner.Ignore()
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWord(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
