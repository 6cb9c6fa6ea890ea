// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every value is a single float64 node of a Graph. Operations build new nodes
// from existing ones and record how to push gradients back; Backward on a
// root fills the gradient of every node the root depends on.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    a := g.Leaf(2).SetLabel("a")
//	    b := g.Leaf(-3).SetLabel("b")
//
//	    // L = tanh(a*b + 10)
//	    l := a.Mul(b).Add(autodiff.Literal(10)).Tanh()
//	    l.Backward()
//
//	    fmt.Println(a.Grad(), b.Grad())
//
//	    // Gradients accumulate: reset before the next independent pass.
//	    g.ZeroGrad()
//	}
//
// Literals may appear on either side of an operation through the Graph
// methods (g.Sub(autodiff.Literal(1), x) is 1 - x) and are promoted to fresh
// leaves. Exponents of Pow are plain numbers; Power rejects a Value exponent
// with ErrInvalidOperand.
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Graph owns the nodes of one computation graph.
type Graph = autodiff.Graph

// Value is a handle to a scalar node of a Graph.
type Value = autodiff.Value

// Operand is a Value or a Literal.
type Operand = autodiff.Operand

// Literal is a plain number used as an operand.
type Literal = autodiff.Literal

// Errors returned or raised by the engine.
var (
	ErrInvalidOperand = autodiff.ErrInvalidOperand
	ErrForeignValue   = autodiff.ErrForeignValue
	ErrNotLeaf        = autodiff.ErrNotLeaf
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// NewGraphWithCapacity creates an empty graph with room for capacity nodes.
func NewGraphWithCapacity(capacity int) *Graph {
	return autodiff.NewGraphWithCapacity(capacity)
}

// Literals wraps plain numbers as operands.
func Literals(xs ...float64) []Operand {
	return autodiff.Literals(xs...)
}

// Operands converts values to operands.
func Operands(vs ...Value) []Operand {
	return autodiff.Operands(vs...)
}

// ZeroGrads resets the gradient of every given value to zero.
func ZeroGrads(values ...Value) {
	autodiff.ZeroGrads(values...)
}
