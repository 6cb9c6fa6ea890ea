package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// MLP is a multi-layer perceptron: layers chained so that each layer's
// outputs are the next layer's inputs.
//
// Example:
//
//	g := autodiff.NewGraph()
//	mlp := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.NewSource(42))
//	y, err := mlp.Predict(autodiff.Literals(2, 3, -1))
//
// This is equivalent to:
//
//	h1 := layer0.Forward(x)
//	h2 := layer1.Forward(h1)
//	y := layer2.Forward(h2)[0]
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(g *autodiff.Graph, nin int, nouts []int, src Source) *MLP {
	if len(nouts) == 0 {
		panic("nn.NewMLP: at least one layer is required")
	}

	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = newLayer(g, sizes[i], sizes[i+1], src, fmt.Sprintf("l%d.", i))
	}

	return &MLP{layers: layers}
}

// Forward applies all layers in order and returns the last layer's outputs.
func (m *MLP) Forward(inputs []autodiff.Operand) []autodiff.Value {
	var outs []autodiff.Value
	for _, l := range m.layers {
		outs = l.Forward(inputs)
		inputs = autodiff.Operands(outs...)
	}
	return outs
}

// Predict applies the network and returns its single output. It fails with
// ErrNotScalar if the last layer has more than one neuron.
func (m *MLP) Predict(inputs []autodiff.Operand) (autodiff.Value, error) {
	outs := m.Forward(inputs)
	if len(outs) != 1 {
		return autodiff.Value{}, fmt.Errorf("nn: MLP has %d outputs: %w", len(outs), ErrNotScalar)
	}
	return outs[0], nil
}

// Parameters returns the parameters of all layers, in layer order.
func (m *MLP) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Layers returns the network's layers.
func (m *MLP) Layers() []*Layer {
	return m.layers
}
