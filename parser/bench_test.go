package parser_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/cameronp98/frothy/ast"
	"github.com/cameronp98/frothy/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "testfixtures"

func fixtures(tb testing.TB) []string {
	files, err := filepath.Glob(filepath.Join(fixtureDir, "*.froth"))
	if err != nil {
		tb.Fatalf("Failed to list test fixtures: %v", err)
	}
	sort.Strings(files) // should be redundant
	return files
}

func TestFixtures(t *testing.T) {
	files := fixtures(t)
	require.NotEmpty(t, files)
	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)
			nodes, err := parser.Parse(string(src))
			require.NoError(t, err)
			assert.NotEmpty(t, nodes)

			again, err := parser.Parse(ast.PostfixProgram(nodes))
			require.NoError(t, err)
			assert.Equal(t, ast.Program(nodes), ast.Program(again))
		})
	}
}

func BenchmarkParser(b *testing.B) {
	for _, path := range fixtures(b) {
		src, err := os.ReadFile(path)
		if err != nil {
			b.Fatalf("Unable to read test fixture: %v", err)
		}
		b.Run(filepath.Base(path), func(b *testing.B) {
			b.SetBytes(int64(len(src)))
			for i := 0; i < b.N; i++ {
				_, err := parser.New(src).ParseProgram()
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
