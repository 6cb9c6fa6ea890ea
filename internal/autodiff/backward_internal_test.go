package autodiff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildShared builds tanh(x²) + 3x², where x² feeds two consumers.
func buildShared(x float64) (*Graph, Value, Value) {
	g := NewGraph()
	xv := g.Leaf(x)
	h := xv.Mul(xv)
	return g, xv, h.Tanh().Add(h.Mul(Literal(3)))
}

// TestBackward_PredecessorOrderDiverges runs backward rules leaves-first,
// i.e. before their successors have accumulated, and checks the result is
// wrong while the reverse topological order matches finite differences.
func TestBackward_PredecessorOrderDiverges(t *testing.T) {
	const (
		x       = 0.5
		epsilon = 1e-5
	)
	_, _, yPlus := buildShared(x + epsilon)
	_, _, yMinus := buildShared(x - epsilon)
	numerical := (yPlus.Data() - yMinus.Data()) / (2 * epsilon)

	g, xv, y := buildShared(x)
	y.Backward()
	assert.InDelta(t, numerical, xv.Grad(), 1e-6)

	g.ZeroGrad()
	order := g.topoSort(y.id)
	g.arena.SetGrad(y.id, 1.0)
	for _, id := range order {
		g.propagate(id)
	}

	assert.Greater(t, math.Abs(numerical-xv.Grad()), 0.1)
}

func TestTopoSort_VisitsSharedNodeOnce(t *testing.T) {
	g := NewGraph()
	x := g.Leaf(1)
	y := x
	// Each level references the previous level twice; without a visited set
	// the traversal would be exponential in depth.
	for n := 0; n < 64; n++ {
		y = y.Add(y)
	}

	order := g.topoSort(y.id)

	assert.Len(t, order, 65)
	y.Backward()
	assert.Equal(t, math.Pow(2, 64), x.Grad())
}
