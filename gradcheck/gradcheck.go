// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck compares autodiff gradients with central finite
// differences.
//
// Example:
//
//	f := func(g *autodiff.Graph, x []autodiff.Value) autodiff.Value {
//	    return x[0].Mul(x[1]).Tanh()
//	}
//	report, err := gradcheck.Check(gradcheck.DefaultConfig(), f, []float64{0.5, -2})
//	if errors.Is(err, gradcheck.ErrMismatch) {
//	    // inspect report.Results
//	}
package gradcheck

import (
	"github.com/born-ml/scalargrad/internal/gradcheck"
)

// Func builds a scalar expression of its inputs and returns the root.
type Func = gradcheck.Func

// Config controls a gradient check.
type Config = gradcheck.Config

// Result is the comparison for one input.
type Result = gradcheck.Result

// Report is the outcome of Check.
type Report = gradcheck.Report

// Errors returned by Check.
var (
	ErrMismatch      = gradcheck.ErrMismatch
	ErrInvalidConfig = gradcheck.ErrInvalidConfig
)

// DefaultConfig returns ε = 1e-5, a 1e-4 tolerance and CPU-count fan-out.
func DefaultConfig() Config {
	return gradcheck.DefaultConfig()
}

// Check evaluates f at point and compares analytic and numerical gradients.
func Check(cfg Config, f Func, point []float64) (Report, error) {
	return gradcheck.Check(cfg, f, point)
}
