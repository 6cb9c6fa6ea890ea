package autodiff

import (
	"fmt"
	"maps"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// defaultCapacity is the number of node slots pre-allocated by NewGraph.
const defaultCapacity = 64

// Graph owns the nodes of one computation graph.
//
// Nodes live in an arena and are addressed by index, so a derived node can
// only reference nodes created before it and the graph is a DAG by
// construction. Parameters are usually created first; per-iteration forward
// nodes can then be discarded in bulk with Mark and Release.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	arena  *scalar.Arena
	tape   *tape
	labels map[scalar.ID]string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return NewGraphWithCapacity(defaultCapacity)
}

// NewGraphWithCapacity creates an empty graph with room for capacity nodes
// before the arena has to grow.
func NewGraphWithCapacity(capacity int) *Graph {
	return &Graph{
		arena:  scalar.NewArena(capacity),
		tape:   newTape(capacity),
		labels: make(map[scalar.ID]string),
	}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return g.arena.Len()
}

// NumOps returns the number of derived (non-leaf) nodes in the graph.
func (g *Graph) NumOps() int {
	return g.tape.numOps()
}

// Mark returns a position that Release can roll the graph back to.
func (g *Graph) Mark() int {
	return g.arena.Len()
}

// Release discards every node created after mark.
//
// Values referring to released nodes must not be used afterwards: their
// slots are reused by the next allocations.
func (g *Graph) Release(mark int) {
	g.arena.Truncate(mark)
	g.tape.truncate(mark)
	maps.DeleteFunc(g.labels, func(id scalar.ID, _ string) bool {
		return int(id) >= mark
	})
}

// ZeroGrad resets the gradient of every node in the graph to zero.
func (g *Graph) ZeroGrad() {
	g.arena.ZeroGrads()
}

// Leaf creates a node with no predecessors holding v.
func (g *Graph) Leaf(v float64) Value {
	id := g.arena.Alloc(v)
	g.tape.push(nil)
	return Value{g: g, id: id}
}

// derive allocates the output node of an operation. build receives the
// output ID and returns the operation to record for it.
func (g *Graph) derive(v float64, build func(out scalar.ID) ops.Operation) Value {
	out := g.Leaf(v)
	g.tape.set(out.id, build(out.id))
	return out
}

// resolve returns the node ID for an operand, promoting literals to fresh leaves.
func (g *Graph) resolve(o Operand) scalar.ID {
	if o == nil {
		panic(fmt.Errorf("autodiff: nil operand: %w", ErrInvalidOperand))
	}
	return o.resolve(g)
}

func (g *Graph) value(id scalar.ID) float64 {
	return g.arena.Value(id)
}

// Values resolves operands to values of g, promoting each literal to a
// fresh leaf once.
func (g *Graph) Values(operands ...Operand) []Value {
	out := make([]Value, len(operands))
	for i, o := range operands {
		out[i] = Value{g: g, id: g.resolve(o)}
	}
	return out
}
