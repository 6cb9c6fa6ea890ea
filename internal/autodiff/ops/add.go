package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// AddOp represents addition: output = a + b.
//
// Backward pass:
//   - grad_a += outputGrad
//   - grad_b += outputGrad
type AddOp struct {
	inputs [2]scalar.ID // [a, b]
	output scalar.ID    // a + b
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output scalar.ID) *AddOp {
	return &AddOp{
		inputs: [2]scalar.ID{a, b},
		output: output,
	}
}

// Backward routes the output gradient unchanged to both inputs.
func (op *AddOp) Backward(store scalar.Store) {
	g := store.Grad(op.output)
	store.AccumulateGrad(op.inputs[0], 1.0*g)
	store.AccumulateGrad(op.inputs[1], 1.0*g)
}

// Inputs returns the input IDs [a, b].
func (op *AddOp) Inputs() []scalar.ID {
	return op.inputs[:]
}

// Output returns the ID of a + b.
func (op *AddOp) Output() scalar.ID {
	return op.output
}

// Tag returns "+".
func (op *AddOp) Tag() string {
	return "+"
}
