// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// ErrNotScalar is returned by MLP.Predict when the last layer is wider than one.
var ErrNotScalar = nn.ErrNotScalar

// Source produces uniform random numbers in [0, 1). *rand.Rand satisfies it.
type Source = nn.Source

// NewSource returns a seeded Source.
func NewSource(seed int64) Source {
	return nn.NewSource(seed)
}

// Uniform draws a value uniformly from [-1, 1).
func Uniform(src Source) float64 {
	return nn.Uniform(src)
}

// Neuron computes tanh(Σ w_i*x_i + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 2, nn.NewSource(1))
//	y := n.Call(autodiff.Literals(1, -1))
func NewNeuron(g *autodiff.Graph, nin int, src Source) *Neuron {
	return nn.NewNeuron(g, nin, src)
}

// Layer is a set of independent neurons over the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(g *autodiff.Graph, nin, nout int, src Source) *Layer {
	return nn.NewLayer(g, nin, nout, src)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
//
// Example:
//
//	g := autodiff.NewGraph()
//	mlp := nn.NewMLP(g, 2, []int{3, 1}, nn.NewSource(7))
func NewMLP(g *autodiff.Graph, nin int, nouts []int, src Source) *MLP {
	return nn.NewMLP(g, nin, nouts, src)
}
