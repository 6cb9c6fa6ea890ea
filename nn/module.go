// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute one output value per unit from the inputs
//   - Parameters: Return all trainable leaves
type Module = nn.Module

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}
