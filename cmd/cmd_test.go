package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cameronp98/frothy/config"
	"github.com/cameronp98/frothy/frothy"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSources(t *testing.T) {
	var stdout bytes.Buffer
	in, err := frothy.New(frothy.WithStdout(&stdout))
	require.NoError(t, err)
	err = runSources(in, []string{"x 2 =", "print_arg x = print call x x *"}, true, &stdout)
	require.NoError(t, err)
	assert.Equal(t, "Nil\n2\nNil\nNil\n4\n", stdout.String())

	stdout.Reset()
	err = runSources(in, []string{"x 1 +", "y", "x"}, true, &stdout)
	assert.EqualError(t, err, "undefined variable 'y'")
	assert.Equal(t, "3\n", stdout.String())

	stdout.Reset()
	err = runSources(in, []string{"x 1 +"}, false, &stdout)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
}

func TestRunReadSources(t *testing.T) {
	defer func() { runExpression = false }()

	runExpression = true
	srcs, err := runReadSources([]string{"1 2 +", "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1 2 +", "3"}, srcs)

	runExpression = false
	path := filepath.Join(t.TempDir(), "prog.froth")
	require.NoError(t, os.WriteFile(path, []byte("# comment\n1 2 +\n"), 0o600))
	srcs, err = runReadSources([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{"# comment\n1 2 +\n"}, srcs)

	_, err = runReadSources([]string{filepath.Join(t.TempDir(), "missing.froth")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInterpreterConfigs(t *testing.T) {
	defer func() { rootDebug = false }()

	var stdout, stderr bytes.Buffer
	configs, err := interpreterConfigs(&config.File{Libraries: []string{"math"}}, &stdout, &stderr)
	require.NoError(t, err)
	in, err := frothy.New(configs...)
	require.NoError(t, err)
	_, err = in.Evaluate("print_arg E = print call")
	require.NoError(t, err)
	assert.Equal(t, "2.718281828459045\n", stdout.String())
	assert.Empty(t, stderr.String())

	rootDebug = true
	configs, err = interpreterConfigs(&config.File{}, &stdout, &stderr)
	require.NoError(t, err)
	in, err = frothy.New(configs...)
	require.NoError(t, err)
	_, err = in.Evaluate("x 1 =")
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "msg=assign name=x")

	_, err = interpreterConfigs(&config.File{Libraries: []string{"nope"}}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestLoadConfigDefault(t *testing.T) {
	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, &config.File{}, c)
}

func callEval(t *testing.T, configs []frothy.Config, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Name = mcpEvalTool
	req.Params.Arguments = args
	res, err := mcpEvalHandler(configs)(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content type %T", res.Content[0])
	return text.Text
}

func TestMCPEval(t *testing.T) {
	res := callEval(t, nil, map[string]any{"program": "print_arg 7 = print call 1 2 +"})
	assert.False(t, res.IsError)
	assert.Equal(t, "7\nNil\nNil\n3\n", resultText(t, res))

	// each call has its own environment
	res = callEval(t, nil, map[string]any{"program": "print_arg"})
	assert.True(t, res.IsError)
	assert.Equal(t, "undefined variable 'print_arg'", resultText(t, res))

	res = callEval(t, nil, map[string]any{"program": "{ 1"})
	assert.True(t, res.IsError)
	assert.Equal(t, "expected '}'", resultText(t, res))

	res = callEval(t, nil, map[string]any{})
	assert.True(t, res.IsError)

	var leaked bytes.Buffer
	configs := []frothy.Config{frothy.WithStdout(&leaked), frothy.WithConstant("G", frothy.Number(9))}
	res = callEval(t, configs, map[string]any{"program": "print_arg G = print call"})
	assert.False(t, res.IsError)
	assert.Equal(t, "9\nNil\nNil\n", resultText(t, res))
	assert.Empty(t, leaked.String())
}

func TestNewMCPServer(t *testing.T) {
	assert.NotNil(t, newMCPServer(nil))
}
