// Package ops defines the differentiable operations of the scalar engine.
//
// Each operation records the IDs of its inputs and output during the forward
// pass and, during the backward pass, adds its output's gradient (scaled by
// the local derivative) into each input's gradient:
//   - AddOp: d(a+b)/da = 1, d(a+b)/db = 1
//   - MulOp: d(a*b)/da = b, d(a*b)/db = a
//   - PowOp: d(a^p)/da = p * a^(p-1), p a constant
//   - TanhOp: d(tanh(a))/da = 1 - tanh²(a)
//   - ExpOp: d(exp(a))/da = exp(a)
//
// Negation, subtraction and division have no operation of their own; they
// are composed from MulOp, AddOp and PowOp.
package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward reads the accumulated gradient of Output and adds the local
	// contribution into the gradient of every input. It must run only after
	// every consumer of Output has run its own Backward.
	Backward(store scalar.Store)

	// Inputs returns the operand IDs, in operand order. An operand used twice
	// (x * x) appears twice.
	Inputs() []scalar.ID

	// Output returns the ID of the node produced by this operation.
	Output() scalar.ID

	// Tag returns the diagnostic operator label ("+", "*", "**2", "tanh", "exp").
	Tag() string
}
