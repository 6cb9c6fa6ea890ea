package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_AllocAssignsSequentialIDs(t *testing.T) {
	a := NewArena(4)

	x := a.Alloc(1.5)
	y := a.Alloc(-2)

	assert.Equal(t, ID(0), x)
	assert.Equal(t, ID(1), y)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1.5, a.Value(x))
	assert.Equal(t, 0.0, a.Grad(y))
}

func TestArena_AccumulateGrad(t *testing.T) {
	a := NewArena(0)
	x := a.Alloc(3)

	a.AccumulateGrad(x, 0.5)
	a.AccumulateGrad(x, 0.25)

	assert.InDelta(t, 0.75, a.Grad(x), 1e-12)
}

func TestArena_ZeroGrads(t *testing.T) {
	a := NewArena(0)
	ids := []ID{a.Alloc(1), a.Alloc(2), a.Alloc(3)}
	for _, id := range ids {
		a.SetGrad(id, 7)
	}

	a.ZeroGrads()

	for _, id := range ids {
		assert.Equal(t, 0.0, a.Grad(id))
	}
}

func TestArena_Truncate(t *testing.T) {
	a := NewArena(0)
	keep := a.Alloc(1)
	dropped := a.Alloc(2)

	a.Truncate(1)

	require.Equal(t, 1, a.Len())
	assert.True(t, a.Contains(keep))
	assert.False(t, a.Contains(dropped))
	assert.Panics(t, func() { a.Value(dropped) })
	assert.Panics(t, func() { a.Truncate(5) })

	// Slots are reused after truncation.
	assert.Equal(t, dropped, a.Alloc(9))
	assert.Equal(t, 0.0, a.Grad(dropped))
}

func TestArena_OutOfRangePanics(t *testing.T) {
	a := NewArena(0)

	assert.Panics(t, func() { a.Grad(0) })
	assert.Panics(t, func() { a.AccumulateGrad(None, 1) })
}
