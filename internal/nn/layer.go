package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Layer is a set of independent neurons evaluated on the same inputs.
type Layer struct {
	g       *autodiff.Graph
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with nin inputs.
func NewLayer(g *autodiff.Graph, nin, nout int, src Source) *Layer {
	return newLayer(g, nin, nout, src, "")
}

func newLayer(g *autodiff.Graph, nin, nout int, src Source, prefix string) *Layer {
	if nout < 1 {
		panic(fmt.Sprintf("nn.NewLayer: output width must be positive, got %d", nout))
	}

	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = newNeuron(g, nin, src, fmt.Sprintf("%sn%d.", prefix, i))
	}

	return &Layer{g: g, neurons: neurons}
}

// Forward evaluates every neuron on inputs and returns their outputs in
// neuron order.
func (l *Layer) Forward(inputs []autodiff.Operand) []autodiff.Value {
	// Promote literal inputs once instead of once per neuron.
	x := autodiff.Operands(l.g.Values(inputs...)...)

	outs := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Call(x)
	}
	return outs
}

// Parameters returns the parameters of all neurons, in neuron order.
func (l *Layer) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.neurons[0].NumInputs()
}

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}
