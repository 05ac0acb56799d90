/*
Package parser reduces frothy source text into syntax trees.

Parsing is driven by an operand stack.  Literals and identifiers are pushed
onto the stack, operators and keywords pop their operands and push the node
they build:

	1 2 +          (1 2 +)
	{1 2 +} fn     ({(1 2 +)} fn)
	f call         (f call)
	x 5 =          (x 5 =)

A block is parsed recursively onto a stack of its own, so the operators inside
a block can only consume nodes pushed inside that block.  The nodes remaining
on the top-level stack when input is exhausted are the program's forms.
*/
package parser

import (
	"github.com/cameronp98/frothy/ast"
	"github.com/cameronp98/frothy/parser/lexer"
	"github.com/cameronp98/frothy/parser/token"
)

// Reserved words which are never treated as variable references.
const (
	KeywordFn    = "fn"
	KeywordCall  = "call"
	KeywordTrue  = "true"
	KeywordFalse = "false"
	KeywordNil   = "Nil"
)

// IsReserved returns true if name is a reserved word.
func IsReserved(name string) bool {
	switch name {
	case KeywordFn, KeywordCall, KeywordTrue, KeywordFalse, KeywordNil:
		return true
	}
	return false
}

// Parse parses a complete program and returns its top-level forms in source
// order.
func Parse(src string) ([]ast.Node, error) {
	return New([]byte(src)).ParseProgram()
}

// Parser is a frothy parser.
type Parser struct {
	lex *lexer.Lexer
}

// New initializes and returns a new Parser that reads tokens from src.
func New(src []byte) *Parser {
	return &Parser{lex: lexer.New(src)}
}

// NewFromLexer returns a Parser that reads tokens from lex.
func NewFromLexer(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// ParseProgram consumes all remaining input.  On success the nodes left on
// the operand stack are returned in stack order.
func (p *Parser) ParseProgram() ([]ast.Node, error) {
	var s stack
	for p.lex.More() {
		err := p.parseNext(&s)
		if err != nil {
			return nil, err
		}
	}
	return s.nodes, nil
}

// parseNext consumes one token and performs the reduction it calls for on s.
func (p *Parser) parseNext(s *stack) error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	switch tok.Type {
	case token.NUMBER:
		s.push(ast.Number(tok.Num))
	case token.IDENT:
		return p.parseIdent(s, tok)
	case token.PLUS:
		return s.binaryOp(ast.Add)
	case token.MINUS:
		return s.binaryOp(ast.Subtract)
	case token.MULTIPLY:
		return s.binaryOp(ast.Multiply)
	case token.DIVIDE:
		return s.binaryOp(ast.Divide)
	case token.ASSIGN:
		return s.assign()
	case token.BRACE_L:
		block, err := p.parseBlock()
		if err != nil {
			return err
		}
		s.push(block)
	case token.EOF:
		return errEndOfInput
	default:
		return &Error{Kind: UnexpectedToken, Token: tok}
	}
	return nil
}

func (p *Parser) parseIdent(s *stack, tok token.Token) error {
	switch tok.Text {
	case KeywordFn:
		return s.function()
	case KeywordCall:
		return s.call()
	case KeywordTrue:
		s.push(ast.Boolean(true))
	case KeywordFalse:
		s.push(ast.Boolean(false))
	case KeywordNil:
		s.push(ast.Nil())
	default:
		s.push(ast.Ident{Name: tok.Text})
	}
	return nil
}

// parseBlock is called after the opening brace of a block has been consumed.
// The closing brace is checked for before each unit so that empty blocks are
// accepted.
func (p *Parser) parseBlock() (ast.Block, error) {
	var s stack
	for {
		if !p.lex.More() {
			return ast.Block{}, &Error{Kind: ExpectedCloseBrace}
		}
		tok, err := p.lex.Peek()
		if err != nil {
			return ast.Block{}, err
		}
		if tok.Type == token.BRACE_R {
			p.lex.NextToken()
			return ast.Block{Body: s.nodes}, nil
		}
		err = p.parseNext(&s)
		if err != nil {
			return ast.Block{}, err
		}
	}
}

// stack is the parser's operand stack.
type stack struct {
	nodes []ast.Node
}

func (s *stack) push(n ast.Node) {
	s.nodes = append(s.nodes, n)
}

func (s *stack) pop() (ast.Node, bool) {
	if len(s.nodes) == 0 {
		return nil, false
	}
	n := s.nodes[len(s.nodes)-1]
	s.nodes[len(s.nodes)-1] = nil
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n, true
}

// binaryOp replaces the top two nodes on the stack with a single operation.
// The deeper node becomes the left operand.
func (s *stack) binaryOp(op ast.Op) error {
	if len(s.nodes) < 2 {
		return &ArityError{Required: 2, Available: len(s.nodes)}
	}
	right, _ := s.pop()
	left, _ := s.pop()
	s.push(ast.BinaryOp{Op: op, Left: left, Right: right})
	return nil
}

func (s *stack) function() error {
	n, ok := s.pop()
	if !ok {
		return &Error{Kind: ExpectedBlock}
	}
	block, ok := n.(ast.Block)
	if !ok {
		return &Error{Kind: ExpectedBlock}
	}
	s.push(ast.Function{Body: block.Body})
	return nil
}

func (s *stack) call() error {
	n, ok := s.pop()
	if !ok {
		return &ArityError{Required: 1, Available: 0}
	}
	s.push(ast.Call{Target: n})
	return nil
}

func (s *stack) assign() error {
	value, ok := s.pop()
	if !ok {
		return &Error{Kind: ExpectedIdentAndValue}
	}
	n, ok := s.pop()
	if !ok {
		return &Error{Kind: ExpectedIdentAndValue}
	}
	id, ok := n.(ast.Ident)
	if !ok {
		return &Error{Kind: ExpectedIdentAndValue}
	}
	s.push(ast.Assign{Name: id.Name, Value: value})
	return nil
}
