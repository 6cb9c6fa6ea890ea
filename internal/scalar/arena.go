// Package scalar provides arena storage for scalar computation-graph nodes.
//
// Nodes are addressed by ID, an index into the arena. A node can only be
// derived from nodes that already exist, so every edge points from a higher
// ID to a lower one and the graph is acyclic by construction.
package scalar

import "fmt"

// ID identifies a node inside an Arena.
type ID int32

// None marks the absence of a node.
const None ID = -1

// Store is the read/accumulate view of an arena used by backward rules.
type Store interface {
	// Value returns the forward value of node id.
	Value(id ID) float64
	// Grad returns the accumulated gradient of node id.
	Grad(id ID) float64
	// AccumulateGrad adds delta into the gradient of node id.
	AccumulateGrad(id ID, delta float64)
}

// Arena stores node values and gradients in parallel slices.
type Arena struct {
	values []float64
	grads  []float64
}

// NewArena creates an arena with room for capacity nodes before growing.
func NewArena(capacity int) *Arena {
	return &Arena{
		values: make([]float64, 0, capacity),
		grads:  make([]float64, 0, capacity),
	}
}

// Alloc appends a node holding v with a zero gradient and returns its ID.
func (a *Arena) Alloc(v float64) ID {
	a.values = append(a.values, v)
	a.grads = append(a.grads, 0)
	return ID(len(a.values) - 1)
}

// Len returns the number of live nodes.
func (a *Arena) Len() int {
	return len(a.values)
}

// Contains reports whether id addresses a live node.
func (a *Arena) Contains(id ID) bool {
	return id >= 0 && int(id) < len(a.values)
}

// Value returns the forward value of node id.
func (a *Arena) Value(id ID) float64 {
	return a.values[a.check(id)]
}

// SetValue overwrites the forward value of node id.
func (a *Arena) SetValue(id ID, v float64) {
	a.values[a.check(id)] = v
}

// Grad returns the accumulated gradient of node id.
func (a *Arena) Grad(id ID) float64 {
	return a.grads[a.check(id)]
}

// SetGrad overwrites the gradient of node id.
func (a *Arena) SetGrad(id ID, g float64) {
	a.grads[a.check(id)] = g
}

// AccumulateGrad adds delta into the gradient of node id.
func (a *Arena) AccumulateGrad(id ID, delta float64) {
	a.grads[a.check(id)] += delta
}

// ZeroGrads clears every gradient in the arena.
func (a *Arena) ZeroGrads() {
	clear(a.grads)
}

// Truncate drops every node with ID >= n.
func (a *Arena) Truncate(n int) {
	if n < 0 || n > len(a.values) {
		panic(fmt.Sprintf("scalar: truncate to %d out of range [0, %d]", n, len(a.values)))
	}
	a.values = a.values[:n]
	a.grads = a.grads[:n]
}

func (a *Arena) check(id ID) int {
	if !a.Contains(id) {
		panic(fmt.Sprintf("scalar: node %d out of range [0, %d)", id, len(a.values)))
	}
	return int(id)
}
