package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	prog := []Node{
		Assign{Name: "sq", Value: Function{Body: []Node{
			BinaryOp{Op: Multiply, Left: Ident{Name: "n"}, Right: Ident{Name: "n"}},
		}}},
		Call{Target: Ident{Name: "sq"}},
		Block{Body: []Node{Number(1.5), Boolean(false), Nil()}},
		BinaryOp{Op: Divide, Left: Number(-1), Right: Block{}},
	}
	assert.Equal(t, "(sq ({(n n *)} fn) =) (sq call) {1.5 false Nil} (-1 {} /)", Program(prog))
	assert.Equal(t, "sq {n n *} fn = sq call {1.5 false Nil} -1 {} /", PostfixProgram(prog))
	assert.Equal(t, "", Program(nil))
}

func TestClone(t *testing.T) {
	body := []Node{Block{Body: []Node{Number(1)}}, Ident{Name: "x"}}
	orig := []Node{Function{Body: body}}
	cp := Clone(orig)
	assert.Equal(t, orig, cp)

	cp[0].(Function).Body[0].(Block).Body[0] = Number(2)
	cp[0].(Function).Body[1] = Ident{Name: "y"}
	assert.Equal(t, "({{1} x} fn)", orig[0].String())
	assert.Equal(t, "({{2} y} fn)", cp[0].String())

	assert.Nil(t, Clone(nil))
}
