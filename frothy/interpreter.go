// Package frothy evaluates programs written in frothy, a small postfix
// language.
//
//	x 5 =                  # assignment, evaluates to Nil
//	square { x x * } fn =  # functions take no arguments
//	square call            # 25
//
// An Interpreter owns exactly one environment.  Functions do not capture
// variables when they are defined; identifiers in a function body are looked
// up in the interpreter's environment when the function is called.
package frothy

import (
	"io"
	"log/slog"
	"os"

	"github.com/cameronp98/frothy/ast"
	"github.com/cameronp98/frothy/parser"
)

// Evaluate lexes, parses and evaluates src with a newly constructed
// Interpreter and returns the value of each top-level form.
func Evaluate(src string, configs ...Config) ([]Value, error) {
	in, err := New(configs...)
	if err != nil {
		return nil, err
	}
	return in.Evaluate(src)
}

// Interpreter is a tree-walking frothy evaluator.  An Interpreter is not safe
// for concurrent use.
type Interpreter struct {
	env    *Env
	stdout io.Writer
	log    *slog.Logger
}

// New initializes and returns a new Interpreter with the default builtins
// bound in its environment.
func New(configs ...Config) (*Interpreter, error) {
	in := &Interpreter{
		env:    NewEnv(),
		stdout: os.Stdout,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	err := in.registerDefaults()
	if err != nil {
		return nil, err
	}
	for _, config := range configs {
		err := config(in)
		if err != nil {
			return nil, err
		}
	}
	return in, nil
}

// Env returns the interpreter's environment.
func (in *Interpreter) Env() *Env {
	return in.env
}

// Stdout returns the writer that receives program output.
func (in *Interpreter) Stdout() io.Writer {
	return in.stdout
}

// Evaluate parses src and evaluates its top-level forms in order against the
// interpreter's environment.  If any stage fails the first error is returned
// and no values are.
func (in *Interpreter) Evaluate(src string) ([]Value, error) {
	nodes, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return in.EvalProgram(nodes)
}

// EvalProgram evaluates a sequence of top-level forms.
func (in *Interpreter) EvalProgram(nodes []ast.Node) ([]Value, error) {
	vals := make([]Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := in.Eval(n)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Eval evaluates a single node.
func (in *Interpreter) Eval(n ast.Node) (Value, error) {
	switch n := n.(type) {
	case ast.Literal:
		return literal(n), nil
	case ast.BinaryOp:
		left, err := in.Eval(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := in.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return arithmetic(n.Op, left, right), nil
	case ast.Block:
		return in.evalBlock(n.Body)
	case ast.Function:
		return Function{Body: ast.Clone(n.Body)}, nil
	case ast.Call:
		target, err := in.Eval(n.Target)
		if err != nil {
			return nil, err
		}
		return in.call(target)
	case ast.Assign:
		v, err := in.Eval(n.Value)
		if err != nil {
			return nil, err
		}
		in.log.Debug("assign",
			slog.String("name", n.Name),
			slog.String("type", TypeName(v)))
		in.env.Put(n.Name, v)
		return Nil{}, nil
	case ast.Ident:
		return in.env.Lookup(n.Name)
	default:
		panicf("unknown node type: %T", n)
		return nil, nil
	}
}

// evalBlock evaluates each node in body and returns the last value.  An empty
// body evaluates to Nil.
func (in *Interpreter) evalBlock(body []ast.Node) (Value, error) {
	var v Value = Nil{}
	for _, n := range body {
		var err error
		v, err = in.Eval(n)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (in *Interpreter) call(target Value) (Value, error) {
	switch fn := target.(type) {
	case Function:
		in.log.Debug("call function", slog.Int("body-size", len(fn.Body)))
		return in.evalBlock(fn.Body)
	case Builtin:
		in.log.Debug("call builtin", slog.String("name", fn.Name))
		return fn.Fn(in.env)
	case Number, Boolean, Nil:
		return nil, &EvalError{Kind: NotCallable, Name: target.String()}
	default:
		panicf("unknown value type: %T", target)
		return nil, nil
	}
}
