package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input += output * grad_output
type ExpOp struct {
	input  scalar.ID // x
	output scalar.ID // exp(x)
}

// NewExpOp creates a new ExpOp.
func NewExpOp(input, output scalar.ID) *ExpOp {
	return &ExpOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for exp, using the already computed
// output as the local derivative.
func (op *ExpOp) Backward(store scalar.Store) {
	y := store.Value(op.output)
	store.AccumulateGrad(op.input, y*store.Grad(op.output))
}

// Inputs returns the input ID [x].
func (op *ExpOp) Inputs() []scalar.ID {
	return []scalar.ID{op.input}
}

// Output returns the ID of exp(x).
func (op *ExpOp) Output() scalar.ID {
	return op.output
}

// Tag returns "exp".
func (op *ExpOp) Tag() string {
	return "exp"
}
