// Package libmath provides math constants and single-argument math builtins
// for frothy interpreters.
//
// Each builtin reads its argument from a variable named after the builtin
// with an "_arg" suffix, the same convention used by print.
//
//	sqrt_arg 16 = sqrt call  # Nil 4
package libmath

import (
	"math"

	"github.com/cameronp98/frothy/frothy"
)

// DefaultLibraryName is the name used to select the library in configuration
// files.
const DefaultLibraryName = "math"

// LoadLibrary adds the math constants and builtins to in.
func LoadLibrary(in *frothy.Interpreter) error {
	err := in.Define("E", frothy.Number(math.E))
	if err != nil {
		return err
	}
	err = in.Define("INF", frothy.Number(math.Inf(1)))
	if err != nil {
		return err
	}
	for _, fn := range builtins {
		err := in.RegisterBuiltin(fn.name, unary(fn.name, fn.fn))
		if err != nil {
			return err
		}
	}
	return nil
}

var builtins = []struct {
	name string
	fn   func(float64) float64
}{
	{"sqrt", math.Sqrt},
	{"floor", math.Floor},
	{"ceil", math.Ceil},
	{"abs", math.Abs},
}

// ArgName returns the variable from which the builtin called name reads its
// argument.
func ArgName(name string) string {
	return name + "_arg"
}

func unary(name string, fn func(float64) float64) frothy.BuiltinFunc {
	arg := ArgName(name)
	return func(scope frothy.Scope) (frothy.Value, error) {
		v, err := scope.Lookup(arg)
		if err != nil {
			return nil, err
		}
		x, ok := v.(frothy.Number)
		if !ok {
			return frothy.Nil{}, nil
		}
		return frothy.Number(fn(float64(x))), nil
	}
}
