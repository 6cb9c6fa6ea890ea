package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Neuron computes tanh(Σ w_i * x_i + b).
//
// Weights and bias are drawn uniformly from [-1, 1) at construction.
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 2, nn.NewSource(1))
//	y := n.Call(autodiff.Literals(1.0, -1.0))
//	y.Backward()
type Neuron struct {
	g *autodiff.Graph
	w []autodiff.Value
	b autodiff.Value
}

// NewNeuron creates a neuron with nin inputs on g.
func NewNeuron(g *autodiff.Graph, nin int, src Source) *Neuron {
	return newNeuron(g, nin, src, "")
}

func newNeuron(g *autodiff.Graph, nin int, src Source, prefix string) *Neuron {
	if nin < 0 {
		panic(fmt.Sprintf("nn.NewNeuron: negative input width %d", nin))
	}

	w := make([]autodiff.Value, nin)
	for i := range w {
		w[i] = newParameter(g, fmt.Sprintf("%sw%d", prefix, i), src)
	}
	b := newParameter(g, prefix+"b", src)

	return &Neuron{g: g, w: w, b: b}
}

// Call computes the neuron's output for inputs, which must have one entry
// per weight.
func (n *Neuron) Call(inputs []autodiff.Operand) autodiff.Value {
	if len(inputs) != len(n.w) {
		panic(fmt.Sprintf("Neuron.Call: expected %d inputs, got %d", len(n.w), len(inputs)))
	}

	terms := make([]autodiff.Operand, len(n.w))
	for i, w := range n.w {
		terms[i] = n.g.Mul(w, inputs[i])
	}
	act := n.g.Sum(terms...).Add(n.b)

	return act.Tanh()
}

// Forward returns the single output of Call as a one-element slice.
func (n *Neuron) Forward(inputs []autodiff.Operand) []autodiff.Value {
	return []autodiff.Value{n.Call(inputs)}
}

// Parameters returns [bias, w_0, ..., w_{n-1}].
func (n *Neuron) Parameters() []autodiff.Value {
	params := make([]autodiff.Value, 0, len(n.w)+1)
	params = append(params, n.b)
	return append(params, n.w...)
}

// Weights returns the weight parameters in input order.
func (n *Neuron) Weights() []autodiff.Value {
	return n.w
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() autodiff.Value {
	return n.b
}

// NumInputs returns the input width.
func (n *Neuron) NumInputs() int {
	return len(n.w)
}
