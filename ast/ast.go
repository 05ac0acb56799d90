// Package ast defines the syntax tree produced by the frothy parser.
//
// Every node renders (via String) in a canonical, fully parenthesized postfix
// notation:
//
//	(a b +)      binary operation
//	{a b}        block
//	({a b} fn)   function
//	(f call)     call
//	(x v =)      assignment
//
// Postfix renders the same tree without the grouping parentheses, producing
// source text that parses back into an identical tree.
package ast

import (
	"strings"

	"github.com/cameronp98/frothy/parser/token"
)

// Node is a frothy syntax tree node.  The set of node types is closed; Node
// can only be implemented by types in this package.
type Node interface {
	String() string
	node()
}

// LiteralKind distinguishes the types of literal values.
type LiteralKind uint

// LiteralKind constants
const (
	LNil LiteralKind = iota
	LBoolean
	LNumber
)

// Literal is a self-evaluating constant.
type Literal struct {
	Kind LiteralKind
	Bool bool
	Num  float64
}

// Number returns a numeric literal.
func Number(x float64) Literal {
	return Literal{Kind: LNumber, Num: x}
}

// Boolean returns a boolean literal.
func Boolean(b bool) Literal {
	return Literal{Kind: LBoolean, Bool: b}
}

// Nil returns the Nil literal.
func Nil() Literal {
	return Literal{Kind: LNil}
}

func (n Literal) String() string {
	switch n.Kind {
	case LBoolean:
		if n.Bool {
			return "true"
		}
		return "false"
	case LNumber:
		return token.FormatNumber(n.Num)
	default:
		return "Nil"
	}
}

// Op is an arithmetic operator.
type Op uint

// Op constants
const (
	Add Op = iota
	Subtract
	Multiply
	Divide
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// BinaryOp combines two operands with an arithmetic operator.  Left was
// pushed onto the operand stack before Right.
type BinaryOp struct {
	Op    Op
	Left  Node
	Right Node
}

func (n BinaryOp) String() string {
	return "(" + n.Left.String() + " " + n.Right.String() + " " + n.Op.String() + ")"
}

// Block is a bracketed sequence of expressions.
type Block struct {
	Body []Node
}

func (n Block) String() string {
	return "{" + join(n.Body, String) + "}"
}

// Function is a block that has been turned into a callable value with fn.
type Function struct {
	Body []Node
}

func (n Function) String() string {
	return "({" + join(n.Body, String) + "} fn)"
}

// Call invokes the value its Target evaluates to.
type Call struct {
	Target Node
}

func (n Call) String() string {
	return "(" + n.Target.String() + " call)"
}

// Ident is a variable reference.
type Ident struct {
	Name string
}

func (n Ident) String() string {
	return n.Name
}

// Assign binds the result of Value to Name.
type Assign struct {
	Name  string
	Value Node
}

func (n Assign) String() string {
	return "(" + n.Name + " " + n.Value.String() + " =)"
}

func (Literal) node()  {}
func (BinaryOp) node() {}
func (Block) node()    {}
func (Function) node() {}
func (Call) node()     {}
func (Ident) node()    {}
func (Assign) node()   {}

// String renders n in canonical notation.  String is a convenience for use
// with higher order helpers.
func String(n Node) string {
	return n.String()
}

// Program renders a sequence of top-level forms in canonical notation,
// separated by spaces.
func Program(nodes []Node) string {
	return join(nodes, String)
}

// Postfix renders n as plain frothy source without grouping parentheses.
func Postfix(n Node) string {
	switch n := n.(type) {
	case Literal:
		return n.String()
	case BinaryOp:
		return Postfix(n.Left) + " " + Postfix(n.Right) + " " + n.Op.String()
	case Block:
		return "{" + join(n.Body, Postfix) + "}"
	case Function:
		return "{" + join(n.Body, Postfix) + "} fn"
	case Call:
		return Postfix(n.Target) + " call"
	case Ident:
		return n.Name
	case Assign:
		return n.Name + " " + Postfix(n.Value) + " ="
	default:
		panic("unknown node type")
	}
}

// PostfixProgram renders a sequence of top-level forms as frothy source.
func PostfixProgram(nodes []Node) string {
	return join(nodes, Postfix)
}

// Clone returns a copy of nodes that shares no slices with the original.
func Clone(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	cp := make([]Node, len(nodes))
	for i, n := range nodes {
		cp[i] = clone(n)
	}
	return cp
}

func clone(n Node) Node {
	switch n := n.(type) {
	case BinaryOp:
		n.Left = clone(n.Left)
		n.Right = clone(n.Right)
		return n
	case Block:
		n.Body = Clone(n.Body)
		return n
	case Function:
		n.Body = Clone(n.Body)
		return n
	case Call:
		n.Target = clone(n.Target)
		return n
	case Assign:
		n.Value = clone(n.Value)
		return n
	default:
		return n
	}
}

func join(nodes []Node, fn func(Node) string) string {
	var buf strings.Builder
	for i, n := range nodes {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(fn(n))
	}
	return buf.String()
}
