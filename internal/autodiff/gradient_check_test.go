package autodiff_test

import (
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/stretchr/testify/assert"
)

type scalarFn func(g *autodiff.Graph, xs []autodiff.Value) autodiff.Value

// analyticGradient builds f at point and backpropagates from its output.
func analyticGradient(f scalarFn, point []float64) []float64 {
	g := autodiff.NewGraph()
	xs := make([]autodiff.Value, len(point))
	for i, p := range point {
		xs[i] = g.Leaf(p)
	}
	f(g, xs).Backward()

	grads := make([]float64, len(xs))
	for i, x := range xs {
		grads[i] = x.Grad()
	}
	return grads
}

// numericalGradient computes the central difference of f along every input.
func numericalGradient(f scalarFn, point []float64, epsilon float64) []float64 {
	eval := func(p []float64) float64 {
		g := autodiff.NewGraph()
		xs := make([]autodiff.Value, len(p))
		for i, v := range p {
			xs[i] = g.Leaf(v)
		}
		return f(g, xs).Data()
	}

	grads := make([]float64, len(point))
	shifted := make([]float64, len(point))
	for i := range point {
		copy(shifted, point)
		shifted[i] = point[i] + epsilon
		plus := eval(shifted)
		shifted[i] = point[i] - epsilon
		minus := eval(shifted)
		grads[i] = (plus - minus) / (2 * epsilon)
	}
	return grads
}

// TestNumericalGradient compares analytic and central-difference gradients.
func TestNumericalGradient(t *testing.T) {
	const epsilon = 1e-5

	tests := []struct {
		name  string
		f     scalarFn
		point []float64
	}{
		{
			name:  "square",
			f:     func(_ *autodiff.Graph, x []autodiff.Value) autodiff.Value { return x[0].Mul(x[0]) },
			point: []float64{3},
		},
		{
			name: "polynomial",
			// x³ - 2x² + x
			f: func(_ *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				return x[0].Pow(3).Sub(x[0].Pow(2).Mul(autodiff.Literal(2))).Add(x[0])
			},
			point: []float64{2},
		},
		{
			name: "quotient",
			// (x + 2y) / (y² + 1)
			f: func(_ *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				num := x[0].Add(x[1].Mul(autodiff.Literal(2)))
				return num.Div(x[1].Pow(2).Add(autodiff.Literal(1)))
			},
			point: []float64{0.4, -1.2},
		},
		{
			name: "tanh_exp",
			// tanh(x*y + x²) / (exp(y) - 3 + x)
			f: func(g *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				num := x[0].Mul(x[1]).Add(x[0].Pow(2)).Tanh()
				den := x[1].Exp().Sub(autodiff.Literal(3)).Add(x[0])
				return g.Div(num, den)
			},
			point: []float64{0.7, -0.4},
		},
		{
			name: "manual_tanh",
			// (e^{2x} - 1) / (e^{2x} + 1), tanh spelled out
			f: func(_ *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				e := x[0].Mul(autodiff.Literal(2)).Exp()
				return e.Sub(autodiff.Literal(1)).Div(e.Add(autodiff.Literal(1)))
			},
			point: []float64{0.8814},
		},
		{
			name: "shared_subgraph",
			// h = x*y; h*h + tanh(h) - 1/x
			f: func(g *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				h := x[0].Mul(x[1])
				return h.Mul(h).Add(h.Tanh()).Sub(g.Div(autodiff.Literal(1), x[0]))
			},
			point: []float64{1.3, 0.6},
		},
		{
			name: "neuron",
			// tanh(w0*x0 + w1*x1 + b)
			f: func(g *autodiff.Graph, x []autodiff.Value) autodiff.Value {
				act := g.Sum(x[0].Mul(x[2]), x[1].Mul(x[3]), x[4])
				return act.Tanh()
			},
			point: []float64{-3, 0, 2, 1, 6.8813735870195432},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analytic := analyticGradient(tt.f, tt.point)
			numerical := numericalGradient(tt.f, tt.point, epsilon)

			for i := range analytic {
				assert.InDelta(t, numerical[i], analytic[i], 1e-4,
					"input %d: analytic %g, numerical %g", i, analytic[i], numerical[i])
			}
		})
	}
}
