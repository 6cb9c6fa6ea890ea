// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small feed-forward network built on scalar autodiff.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(Σ w_i*x_i + b) with one scalar parameter per weight
//   - Layer: independent neurons over the same inputs
//   - MLP: layers chained output-to-input
//   - Module interface, ZeroGrad, and seeded initialization (NewSource)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    mlp := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.NewSource(42))
//	    mark := g.Mark()
//
//	    y, _ := mlp.Predict(autodiff.Literals(2, 3, -1))
//	    loss := y.Sub(autodiff.Literal(1)).Pow(2)
//
//	    nn.ZeroGrad(mlp)
//	    loss.Backward()
//	    for _, p := range mlp.Parameters() {
//	        _ = p.SetData(p.Data() - 0.05*p.Grad())
//	    }
//
//	    // Drop this iteration's forward nodes, keep the parameters.
//	    g.Release(mark)
//	}
//
// # Parameters
//
// Parameters() lists every weight and bias leaf: a neuron yields
// [bias, w_0, ..., w_{n-1}], a layer concatenates its neurons, an MLP its
// layers. Weights and biases are drawn uniformly from [-1, 1).
package nn
