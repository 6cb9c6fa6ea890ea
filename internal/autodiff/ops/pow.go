package ops

import (
	"math"
	"strconv"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// PowOp represents raising a node to a constant power: output = a^p.
//
// The exponent is a plain number, never a node, so no gradient flows to it.
//
// Backward pass:
//   - grad_a += p * a^(p-1) * outputGrad
type PowOp struct {
	input    scalar.ID
	output   scalar.ID
	exponent float64
}

// NewPowOp creates a new PowOp.
func NewPowOp(input, output scalar.ID, exponent float64) *PowOp {
	return &PowOp{
		input:    input,
		output:   output,
		exponent: exponent,
	}
}

// Backward computes the input gradient for a^p.
func (op *PowOp) Backward(store scalar.Store) {
	a := store.Value(op.input)
	local := op.exponent * math.Pow(a, op.exponent-1)
	store.AccumulateGrad(op.input, local*store.Grad(op.output))
}

// Inputs returns the input ID [a].
func (op *PowOp) Inputs() []scalar.ID {
	return []scalar.ID{op.input}
}

// Output returns the ID of a^p.
func (op *PowOp) Output() scalar.ID {
	return op.output
}

// Exponent returns the constant exponent p.
func (op *PowOp) Exponent() float64 {
	return op.exponent
}

// Tag returns "**p", e.g. "**2" or "**-1".
func (op *PowOp) Tag() string {
	return "**" + strconv.FormatFloat(op.exponent, 'g', -1, 64)
}
