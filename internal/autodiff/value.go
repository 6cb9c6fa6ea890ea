package autodiff

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/born-ml/scalargrad/internal/scalar"
)

// Operand is anything an engine operation accepts: a Value of the same graph
// or a Literal, which is promoted to a fresh leaf before use.
//
// The set of implementations is closed.
type Operand interface {
	resolve(g *Graph) scalar.ID
}

// Literal is a plain number used as an operand.
type Literal float64

func (l Literal) resolve(g *Graph) scalar.ID {
	return g.Leaf(float64(l)).id
}

// Value is a handle to a scalar node of a Graph.
//
// A Value is small and meant to be passed by value. Its forward value never
// changes once created (leaves excepted, see SetData); its gradient is
// accumulated by Backward.
type Value struct {
	g  *Graph
	id scalar.ID
}

func (v Value) resolve(g *Graph) scalar.ID {
	if v.g == nil {
		panic(fmt.Errorf("autodiff: zero Value used as operand: %w", ErrInvalidOperand))
	}
	if v.g != g {
		panic(fmt.Errorf("autodiff: node %d: %w", v.id, ErrForeignValue))
	}
	return v.id
}

func (v Value) graph() *Graph {
	if v.g == nil {
		panic(fmt.Errorf("autodiff: zero Value: %w", ErrInvalidOperand))
	}
	return v.g
}

// Graph returns the graph that owns v.
func (v Value) Graph() *Graph {
	return v.g
}

// IsZero reports whether v is the zero Value, which refers to no node.
func (v Value) IsZero() bool {
	return v.g == nil
}

// Data returns the forward value.
func (v Value) Data() float64 {
	return v.graph().arena.Value(v.id)
}

// Grad returns the accumulated gradient.
func (v Value) Grad() float64 {
	return v.graph().arena.Grad(v.id)
}

// ZeroGrad resets the gradient to zero.
func (v Value) ZeroGrad() {
	v.graph().arena.SetGrad(v.id, 0)
}

// IsLeaf reports whether v has no predecessors.
func (v Value) IsLeaf() bool {
	return v.graph().tape.op(v.id) == nil
}

// SetData replaces the value of a leaf, typically a parameter being updated
// by an optimizer. Nodes already derived from v keep their old value.
func (v Value) SetData(d float64) error {
	if !v.IsLeaf() {
		return fmt.Errorf("autodiff: set data of %q node: %w", v.Op(), ErrNotLeaf)
	}
	v.g.arena.SetValue(v.id, d)
	return nil
}

// Op returns the label of the operation that produced v, or "" for a leaf.
func (v Value) Op() string {
	op := v.graph().tape.op(v.id)
	if op == nil {
		return ""
	}
	return op.Tag()
}

// Prev returns the distinct predecessors of v in operand order.
func (v Value) Prev() []Value {
	op := v.graph().tape.op(v.id)
	if op == nil {
		return nil
	}
	inputs := op.Inputs()
	prev := make([]Value, 0, len(inputs))
	for i, id := range inputs {
		if slices.Contains(inputs[:i], id) {
			continue
		}
		prev = append(prev, Value{g: v.g, id: id})
	}
	return prev
}

// Label returns the diagnostic label attached with SetLabel.
func (v Value) Label() string {
	return v.graph().labels[v.id]
}

// SetLabel attaches a diagnostic label and returns v.
func (v Value) SetLabel(label string) Value {
	g := v.graph()
	if label == "" {
		delete(g.labels, v.id)
	} else {
		g.labels[v.id] = label
	}
	return v
}

// String renders v as Value(data=<value>).
func (v Value) String() string {
	if v.g == nil {
		return "Value(<nil>)"
	}
	return "Value(data=" + strconv.FormatFloat(v.Data(), 'g', -1, 64) + ")"
}

// Add returns v + o.
func (v Value) Add(o Operand) Value { return v.graph().Add(v, o) }

// Sub returns v - o.
func (v Value) Sub(o Operand) Value { return v.graph().Sub(v, o) }

// Mul returns v * o.
func (v Value) Mul(o Operand) Value { return v.graph().Mul(v, o) }

// Div returns v / o.
func (v Value) Div(o Operand) Value { return v.graph().Div(v, o) }

// Pow returns v raised to the constant power p.
func (v Value) Pow(p float64) Value { return v.graph().Pow(v, p) }

// Neg returns -v.
func (v Value) Neg() Value { return v.graph().Neg(v) }

// Tanh returns tanh(v).
func (v Value) Tanh() Value { return v.graph().Tanh(v) }

// Exp returns e^v.
func (v Value) Exp() Value { return v.graph().Exp(v) }

// Backward computes the gradient of v with respect to every node it depends on.
func (v Value) Backward() { v.graph().Backward(v) }

// ZeroGrads resets the gradient of every given value to zero.
func ZeroGrads(values ...Value) {
	for _, v := range values {
		v.ZeroGrad()
	}
}

// Literals wraps plain numbers as operands.
func Literals(xs ...float64) []Operand {
	out := make([]Operand, len(xs))
	for i, x := range xs {
		out[i] = Literal(x)
	}
	return out
}

// Operands converts values to operands.
func Operands(vs ...Value) []Operand {
	out := make([]Operand, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
