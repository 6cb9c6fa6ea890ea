// Package gradcheck verifies engine gradients against central finite
// differences.
//
// For every input x_i of a scalar function f, the analytic gradient from
// Backward is compared with
//
//	(f(x + ε·e_i) - f(x - ε·e_i)) / 2ε
//
// Each probe evaluates f on its own fresh graph, so probes run concurrently.
package gradcheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/parallel"
)

// Common errors.
var (
	ErrMismatch      = errors.New("analytic and numerical gradients differ")
	ErrInvalidConfig = errors.New("invalid gradient check config")
)

// Func builds a scalar expression of inputs on g and returns its root.
//
// Check calls a Func concurrently on distinct graphs; it must not share
// graph state between calls.
type Func func(g *autodiff.Graph, inputs []autodiff.Value) autodiff.Value

// Config controls a gradient check.
type Config struct {
	Epsilon   float64         // Finite-difference step.
	Tolerance float64         // Allowed error, relative to max(1, |analytic|, |numerical|).
	Parallel  parallel.Config // Fan-out for the numerical probes.
}

// DefaultConfig returns ε = 1e-5 and a 1e-4 tolerance.
func DefaultConfig() Config {
	return Config{
		Epsilon:   1e-5,
		Tolerance: 1e-4,
		Parallel:  parallel.DefaultConfig(),
	}
}

// Result is the comparison for one input.
type Result struct {
	Index     int
	Analytic  float64
	Numerical float64
	Error     float64 // Scaled absolute difference.
}

// Report is the outcome of Check.
type Report struct {
	Output   float64  // f evaluated at the point.
	Results  []Result // One per input, in input order.
	MaxError float64
}

// Check evaluates f at point and compares analytic and numerical gradients.
// It returns ErrMismatch, together with the full report, if any input
// exceeds the tolerance or produces a non-finite gradient.
func Check(cfg Config, f Func, point []float64) (Report, error) {
	if cfg.Epsilon <= 0 || cfg.Tolerance <= 0 {
		return Report{}, fmt.Errorf("gradcheck: epsilon %g, tolerance %g: %w", cfg.Epsilon, cfg.Tolerance, ErrInvalidConfig)
	}

	output, analytic := evaluate(f, point)
	numerical := numericalGradient(cfg, f, point)

	report := Report{Output: output, Results: make([]Result, len(point))}
	var failed []int
	for i := range point {
		r := Result{
			Index:     i,
			Analytic:  analytic[i],
			Numerical: numerical[i],
			Error:     scaledError(analytic[i], numerical[i]),
		}
		report.Results[i] = r
		if math.IsNaN(r.Error) || r.Error > cfg.Tolerance {
			failed = append(failed, i)
		}
		if r.Error > report.MaxError || math.IsNaN(r.Error) {
			report.MaxError = r.Error
		}
	}

	if len(failed) > 0 {
		return report, fmt.Errorf("gradcheck: inputs %v: %w", failed, ErrMismatch)
	}
	return report, nil
}

// evaluate builds f at point on a fresh graph, runs Backward and returns the
// output and the gradient of every input.
func evaluate(f Func, point []float64) (float64, []float64) {
	g := autodiff.NewGraph()
	inputs := leaves(g, point)
	root := f(g, inputs)
	root.Backward()

	grads := make([]float64, len(inputs))
	for i, x := range inputs {
		grads[i] = x.Grad()
	}
	return root.Data(), grads
}

// numericalGradient runs two forward probes per input.
func numericalGradient(cfg Config, f Func, point []float64) []float64 {
	probes := make([]float64, 2*len(point))

	parallel.For(len(probes), func(k int) {
		i, sign := k/2, 1.0
		if k%2 == 1 {
			sign = -1.0
		}
		shifted := append([]float64(nil), point...)
		shifted[i] += sign * cfg.Epsilon

		g := autodiff.NewGraph()
		probes[k] = f(g, leaves(g, shifted)).Data()
	}, cfg.Parallel)

	grads := make([]float64, len(point))
	for i := range grads {
		grads[i] = (probes[2*i] - probes[2*i+1]) / (2 * cfg.Epsilon)
	}
	return grads
}

func leaves(g *autodiff.Graph, point []float64) []autodiff.Value {
	return g.Values(autodiff.Literals(point...)...)
}

func scaledError(a, n float64) float64 {
	if math.IsInf(a, 0) || math.IsInf(n, 0) {
		return math.NaN()
	}
	scale := max(1, math.Abs(a), math.Abs(n))
	return math.Abs(a-n) / scale
}
