package frothy

import (
	"io"
	"log/slog"
)

// Config is a function that configures an Interpreter during New.  Configs
// are applied in order after the default builtins have been registered, so a
// Config may replace a default binding.
type Config func(in *Interpreter) error

// Loader adds a group of bindings to an interpreter.
type Loader func(in *Interpreter) error

// WithStdout returns a Config that makes the interpreter write program output
// (e.g. from print) to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(in *Interpreter) error {
		in.stdout = w
		return nil
	}
}

// WithLogger returns a Config that makes the interpreter write debug traces
// of evaluation to logger.  By default nothing is logged.
func WithLogger(logger *slog.Logger) Config {
	return func(in *Interpreter) error {
		in.log = logger
		return nil
	}
}

// WithBuiltin returns a Config that registers a native function under name.
func WithBuiltin(name string, fn BuiltinFunc) Config {
	return func(in *Interpreter) error {
		return in.RegisterBuiltin(name, fn)
	}
}

// WithConstant returns a Config that binds name to v before any program is
// evaluated.
func WithConstant(name string, v Value) Config {
	return func(in *Interpreter) error {
		return in.Define(name, v)
	}
}

// WithLibrary returns a Config that executes load against the interpreter.
func WithLibrary(load Loader) Config {
	return func(in *Interpreter) error {
		return load(in)
	}
}
