// Package repl implements an interactive frothy session.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cameronp98/frothy/frothy"
	"github.com/cameronp98/frothy/parser"
	"github.com/chzyer/readline"
)

// RunRepl runs a simple repl.  All input is evaluated by one interpreter, so
// bindings persist between lines.
func RunRepl(prompt string, configs ...frothy.Config) {
	in, err := frothy.New(configs...)
	if err != nil {
		errln(err)
		return
	}

	rl, err := readline.New(prompt)
	if err != nil {
		errln(err)
		return
	}
	defer rl.Close()

	s := NewSession(in, rl.Stdout(), rl.Stderr())
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err == readline.ErrInterrupt {
			s.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			break
		}
		if s.Feed(string(line)) {
			rl.SetPrompt(prompt)
		} else {
			rl.SetPrompt(contPrompt)
		}
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

// Session evaluates lines of input, buffering lines which leave a block
// unterminated until it is closed.
type Session struct {
	in     *frothy.Interpreter
	stdout io.Writer
	stderr io.Writer
	buf    []string
}

// NewSession returns a Session that evaluates input with in, writing values to
// stdout and errors to stderr.
func NewSession(in *frothy.Interpreter, stdout, stderr io.Writer) *Session {
	return &Session{in: in, stdout: stdout, stderr: stderr}
}

// Pending returns true if the session holds an incomplete program.
func (s *Session) Pending() bool {
	return len(s.buf) != 0
}

// Reset discards any incomplete program.
func (s *Session) Reset() {
	s.buf = nil
}

// Feed evaluates line, joined to any buffered input, and prints the value of
// each top-level form.  Feed returns false if the input needs more lines to
// be complete.
func (s *Session) Feed(line string) bool {
	if !s.Pending() && strings.TrimSpace(line) == "" {
		return true
	}
	src := strings.Join(append(s.buf, line), "\n")
	vals, err := s.in.Evaluate(src)
	if errors.Is(err, parser.ErrExpectedCloseBrace) {
		s.buf = append(s.buf, line)
		return false
	}
	s.buf = nil
	if err != nil {
		fmt.Fprintln(s.stderr, err)
		return true
	}
	for _, v := range vals {
		fmt.Fprintln(s.stdout, v)
	}
	return true
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
