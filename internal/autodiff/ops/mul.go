package ops

import "github.com/born-ml/scalargrad/internal/scalar"

// MulOp represents multiplication: output = a * b.
//
// Backward pass:
//   - grad_a += b * outputGrad
//   - grad_b += a * outputGrad
type MulOp struct {
	inputs [2]scalar.ID // [a, b]
	output scalar.ID    // a * b
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output scalar.ID) *MulOp {
	return &MulOp{
		inputs: [2]scalar.ID{a, b},
		output: output,
	}
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(store scalar.Store) {
	a, b := op.inputs[0], op.inputs[1]
	g := store.Grad(op.output)

	// Read both operand values before accumulating; a and b may be the same node.
	av, bv := store.Value(a), store.Value(b)
	store.AccumulateGrad(a, bv*g)
	store.AccumulateGrad(b, av*g)
}

// Inputs returns the input IDs [a, b].
func (op *MulOp) Inputs() []scalar.ID {
	return op.inputs[:]
}

// Output returns the ID of a * b.
func (op *MulOp) Output() scalar.ID {
	return op.output
}

// Tag returns "*".
func (op *MulOp) Tag() string {
	return "*"
}
