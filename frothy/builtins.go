package frothy

import (
	"fmt"
	"math"

	"github.com/cameronp98/frothy/parser"
)

// Names bound by every interpreter.
const (
	BuiltinPrint = "print"
	PrintArg     = "print_arg"
	ConstantPI   = "PI"
)

func (in *Interpreter) registerDefaults() error {
	err := in.RegisterBuiltin(BuiltinPrint, in.builtinPrint)
	if err != nil {
		return err
	}
	return in.Define(ConstantPI, Number(math.Pi))
}

// builtinPrint writes the rendering of print_arg as a line of output.
func (in *Interpreter) builtinPrint(scope Scope) (Value, error) {
	v, err := scope.Lookup(PrintArg)
	if err != nil {
		return nil, err
	}
	_, err = fmt.Fprintln(in.stdout, v.String())
	if err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return Nil{}, nil
}

// RegisterBuiltin binds a native function to name.  Registering a name a
// second time replaces the earlier binding.
func (in *Interpreter) RegisterBuiltin(name string, fn BuiltinFunc) error {
	if fn == nil {
		return fmt.Errorf("builtin %s: nil function", name)
	}
	return in.Define(name, Builtin{Name: name, Fn: fn})
}

// Define binds name to v in the interpreter's environment.  Define returns an
// error if name could never be referenced by a program.
func (in *Interpreter) Define(name string, v Value) error {
	if !ValidName(name) {
		return &EvalError{Kind: InvalidName, Name: name}
	}
	if v == nil {
		v = Nil{}
	}
	in.env.Put(name, v)
	return nil
}

// ValidName returns true if name lexes as a single identifier and is not a
// reserved word.
func ValidName(name string) bool {
	if name == "" || parser.IsReserved(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '_'):
		default:
			return false
		}
	}
	return true
}
