// Package frothytest runs sequences of frothy programs against an isolated
// interpreter and checks their results and output.
package frothytest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cameronp98/frothy/frothy"
)

// TestSequence is a sequence of frothy programs which are evaluated
// sequentially by a single frothy.Interpreter, so bindings made by one
// program are visible to the programs after it.
type TestSequence []struct {
	Expr   string // a frothy program
	Result string // the rendered values of its forms, or the error text
	Output string // text written by the program (e.g. using print)
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// Runner is a test runner.
type Runner struct {
	// Configs are applied to each interpreter constructed by the runner, after
	// its output has been redirected.
	Configs []frothy.Config
}

// NewInterpreter returns an interpreter that writes output to stdout.
func (r *Runner) NewInterpreter(stdout *bytes.Buffer) (*frothy.Interpreter, error) {
	configs := append([]frothy.Config{frothy.WithStdout(stdout)}, r.Configs...)
	return frothy.New(configs...)
}

// RunTestSuite runs each TestSequence in tests on an isolated interpreter.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	for i, test := range tests {
		var stdout bytes.Buffer
		in, err := r.NewInterpreter(&stdout)
		if err != nil {
			t.Errorf("test %d %q: failed to initialize interpreter: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			stdout.Reset()
			result := Render(in.Evaluate(expr.Expr))
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if stdout.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, stdout.String())
			}
		}
	}
}

// RunTestSuite runs tests using a Runner with no extra configuration.
func RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	var r Runner
	r.RunTestSuite(t, tests)
}

// Render returns the space separated renderings of vals, or the text of err
// if it is non-nil.
func Render(vals []frothy.Value, err error) string {
	if err != nil {
		return err.Error()
	}
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = v.String()
	}
	return strings.Join(s, " ")
}
