package autodiff

import (
	"github.com/born-ml/scalargrad/internal/scalar"
)

// Backward computes d(root)/d(node) for every node reachable from root and
// adds it into that node's gradient.
//
// Algorithm:
//  1. Topologically sort the nodes reachable from root (predecessors first)
//  2. Set root's gradient to 1
//  3. Run each node's backward rule in reverse topological order, so every
//     node has received all contributions before it distributes its own
//
// Gradients are not reset: call ZeroGrad between independent passes.
func (g *Graph) Backward(root Value) {
	id := g.resolve(root)
	order := g.topoSort(id)
	g.arena.SetGrad(id, 1.0)

	for i := len(order) - 1; i >= 0; i-- {
		g.propagate(order[i])
	}
}

// TopoSort returns every node reachable from root such that each node comes
// after all of its predecessors. root is last.
func (g *Graph) TopoSort(root Value) []Value {
	order := g.topoSort(g.resolve(root))
	values := make([]Value, len(order))
	for i, id := range order {
		values[i] = Value{g: g, id: id}
	}
	return values
}

// propagate runs the backward rule of node id, if it has one.
func (g *Graph) propagate(id scalar.ID) {
	if op := g.tape.op(id); op != nil {
		op.Backward(g.arena)
	}
}

// frame is a DFS stack entry: a node and the index of its next input to visit.
type frame struct {
	id   scalar.ID
	next int
}

// topoSort is an iterative depth-first post-order traversal. Each node is
// visited once, so shared sub-graphs cost nothing extra and deep chains do
// not grow the goroutine stack.
func (g *Graph) topoSort(root scalar.ID) []scalar.ID {
	visited := make([]bool, int(root)+1)
	order := make([]scalar.ID, 0, int(root)+1)
	stack := []frame{{id: root}}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		var inputs []scalar.ID
		if op := g.tape.op(top.id); op != nil {
			inputs = op.Inputs()
		}

		if top.next < len(inputs) {
			child := inputs[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{id: child})
			}
			continue
		}

		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	return order
}
