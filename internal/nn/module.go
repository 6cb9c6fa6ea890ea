// Package nn implements a small feed-forward network on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: Base interface for all NN components
//   - Neuron: tanh(w·x + b) over one scalar weight per input
//   - Layer: independent neurons sharing the same inputs
//   - MLP: layers chained output-to-input
//
// Every weight and bias is a leaf of the caller's autodiff.Graph, so a
// forward pass builds the computation graph and Backward on its output fills
// the parameter gradients.
package nn

import "github.com/born-ml/scalargrad/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules can be composed to build larger networks:
//
//	g := autodiff.NewGraph()
//	mlp := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.NewSource(42))
//	out := mlp.Forward(autodiff.Literals(2, 3, -1))
type Module interface {
	// Forward evaluates the module on the given inputs and returns one
	// value per output.
	Forward(inputs []autodiff.Operand) []autodiff.Value

	// Parameters returns all trainable leaves of the module, in a stable
	// order.
	Parameters() []autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
//
// Gradients accumulate across backward passes; call this before each
// independent pass.
func ZeroGrad(m Module) {
	autodiff.ZeroGrads(m.Parameters()...)
}
