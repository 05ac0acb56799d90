package repl

import (
	"bytes"
	"testing"

	"github.com/cameronp98/frothy/frothy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	in, err := frothy.New(frothy.WithStdout(&stdout))
	require.NoError(t, err)
	return NewSession(in, &stdout, &stderr), &stdout, &stderr
}

func TestSessionPersists(t *testing.T) {
	s, stdout, stderr := newTestSession(t)
	assert.True(t, s.Feed("x 5 ="))
	assert.True(t, s.Feed("x x *"))
	assert.True(t, s.Feed("   "))
	assert.Equal(t, "Nil\n25\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestSessionContinuation(t *testing.T) {
	s, stdout, stderr := newTestSession(t)
	assert.False(t, s.Feed("sq { n"))
	assert.True(t, s.Pending())
	assert.False(t, s.Feed(""))
	assert.False(t, s.Feed("  n * # square"))
	assert.True(t, s.Feed("} fn ="))
	assert.False(t, s.Pending())
	assert.True(t, s.Feed("n 3 = sq call"))
	assert.Equal(t, "Nil\nNil\n9\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestSessionErrors(t *testing.T) {
	s, stdout, stderr := newTestSession(t)
	assert.True(t, s.Feed("y"))
	assert.True(t, s.Feed("}"))
	assert.True(t, s.Feed("1 2 +"))
	assert.Equal(t, "undefined variable 'y'\nunexpected token '}'\n", stderr.String())
	assert.Equal(t, "3\n", stdout.String())

	assert.False(t, s.Feed("{ 1"))
	s.Reset()
	assert.False(t, s.Pending())
	assert.True(t, s.Feed("2"))
	assert.Equal(t, "3\n2\n", stdout.String())
}
