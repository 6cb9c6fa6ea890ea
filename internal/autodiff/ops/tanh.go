package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// TanhOp represents the hyperbolic tangent activation: output = tanh(x).
type TanhOp struct {
	input  scalar.ID
	output scalar.ID
}

// NewTanhOp creates a new tanh operation.
func NewTanhOp(input, output scalar.ID) *TanhOp {
	return &TanhOp{
		input:  input,
		output: output,
	}
}

// Inputs returns the input ID [x].
func (op *TanhOp) Inputs() []scalar.ID {
	return []scalar.ID{op.input}
}

// Output returns the ID of tanh(x).
func (op *TanhOp) Output() scalar.ID {
	return op.output
}

// Tag returns "tanh".
func (op *TanhOp) Tag() string {
	return "tanh"
}

// Backward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input += (1 - output²) * grad_output.
func (op *TanhOp) Backward(store scalar.Store) {
	t := store.Value(op.output)
	store.AccumulateGrad(op.input, (1-t*t)*store.Grad(op.output))
}
