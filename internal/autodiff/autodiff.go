// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Graph: an arena of scalar nodes plus a tape recording, per node, the
//     operation that produced it
//   - Value: a handle to one node (value, gradient, predecessors, operator)
//   - Operand: a Value or a Literal; literals are promoted to fresh leaves
//   - ops.Operation: one type per operation kind with a fixed backward rule
//   - Backward: topological sort from a root, then each operation's rule in
//     reverse order
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(3)
//	y := x.Mul(x).Add(autodiff.Literal(1)) // y = x² + 1
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6
package autodiff

import (
	"fmt"
	"math"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// Add returns a + b.
func (g *Graph) Add(a, b Operand) Value {
	x, y := g.resolve(a), g.resolve(b)
	return g.derive(g.value(x)+g.value(y), func(out scalar.ID) ops.Operation {
		return ops.NewAddOp(x, y, out)
	})
}

// Mul returns a * b.
func (g *Graph) Mul(a, b Operand) Value {
	x, y := g.resolve(a), g.resolve(b)
	return g.derive(g.value(x)*g.value(y), func(out scalar.ID) ops.Operation {
		return ops.NewMulOp(x, y, out)
	})
}

// Pow returns a raised to the constant power p.
func (g *Graph) Pow(a Operand, p float64) Value {
	x := g.resolve(a)
	return g.derive(math.Pow(g.value(x), p), func(out scalar.ID) ops.Operation {
		return ops.NewPowOp(x, out, p)
	})
}

// Power returns base raised to exponent, where exponent must be a Literal.
// A Value exponent fails with ErrInvalidOperand: gradients never flow into
// an exponent.
func (g *Graph) Power(base, exponent Operand) (Value, error) {
	p, ok := exponent.(Literal)
	if !ok {
		return Value{}, fmt.Errorf("autodiff: power exponent must be a literal, got %T: %w", exponent, ErrInvalidOperand)
	}
	return g.Pow(base, float64(p)), nil
}

// Neg returns -a, computed as a * -1.
func (g *Graph) Neg(a Operand) Value {
	return g.Mul(a, Literal(-1))
}

// Sub returns a - b, computed as a + (-b).
func (g *Graph) Sub(a, b Operand) Value {
	x := g.resolve(a)
	return g.Add(Value{g: g, id: x}, g.Neg(b))
}

// Div returns a / b, computed as a * b^-1. Dividing by a zero-valued node
// yields a non-finite result rather than an error.
func (g *Graph) Div(a, b Operand) Value {
	x := g.resolve(a)
	return g.Mul(Value{g: g, id: x}, g.Pow(b, -1))
}

// Tanh returns tanh(a).
func (g *Graph) Tanh(a Operand) Value {
	x := g.resolve(a)
	return g.derive(math.Tanh(g.value(x)), func(out scalar.ID) ops.Operation {
		return ops.NewTanhOp(x, out)
	})
}

// Exp returns e^a.
func (g *Graph) Exp(a Operand) Value {
	x := g.resolve(a)
	return g.derive(math.Exp(g.value(x)), func(out scalar.ID) ops.Operation {
		return ops.NewExpOp(x, out)
	})
}

// Sum returns the left-fold sum 0 + terms[0] + terms[1] + ...
// An empty sum is a leaf holding 0.
func (g *Graph) Sum(terms ...Operand) Value {
	acc := g.Leaf(0)
	for _, t := range terms {
		acc = g.Add(acc, t)
	}
	return acc
}
