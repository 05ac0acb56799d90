package frothy

import (
	"github.com/cameronp98/frothy/ast"
	"github.com/cameronp98/frothy/parser/token"
)

// Value is a frothy runtime value.  The set of value types is closed: Number,
// Boolean, Nil, Function and Builtin.  Values are immutable and are safe to
// copy.
type Value interface {
	String() string
	value()
}

// Number is a floating point number.
type Number float64

// Boolean is a truth value.
type Boolean bool

// Nil is the absence of a value.
type Nil struct{}

// Function is a user defined function.  A Function owns a copy of its body
// and references no environment; free identifiers in the body are resolved
// when the function is called.
type Function struct {
	Body []ast.Node
}

// BuiltinFunc is the native implementation of a Builtin.  A BuiltinFunc has
// read access to the environment at the time of the call.
type BuiltinFunc func(scope Scope) (Value, error)

// Builtin is a function implemented in Go.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (x Number) String() string {
	return token.FormatNumber(float64(x))
}

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (Nil) String() string {
	return "Nil"
}

func (Function) String() string {
	return "<fn>"
}

func (b Builtin) String() string {
	return "<builtin-fn:" + b.Name + ">"
}

func (Number) value()   {}
func (Boolean) value()  {}
func (Nil) value()      {}
func (Function) value() {}
func (Builtin) value()  {}

// literal converts a literal syntax node into a value.
func literal(n ast.Literal) Value {
	switch n.Kind {
	case ast.LBoolean:
		return Boolean(n.Bool)
	case ast.LNumber:
		return Number(n.Num)
	default:
		return Nil{}
	}
}

// arithmetic combines two values with op.  Any operand that is not a Number
// produces Nil rather than an error.
func arithmetic(op ast.Op, left, right Value) Value {
	x, ok := left.(Number)
	if !ok {
		return Nil{}
	}
	y, ok := right.(Number)
	if !ok {
		return Nil{}
	}
	switch op {
	case ast.Add:
		return x + y
	case ast.Subtract:
		return x - y
	case ast.Multiply:
		return x * y
	case ast.Divide:
		return x / y
	default:
		panicf("unknown operator: %v", op)
		return nil
	}
}

// TypeName returns the name of v's type.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Nil:
		return "nil"
	case Function:
		return "function"
	case Builtin:
		return "builtin"
	default:
		panicf("unknown value type: %T", v)
		return ""
	}
}
