package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// tape records, for every node of a graph, the operation that produced it.
//
// The tape is indexed by node ID and kept in lockstep with the arena: leaves
// hold a nil entry, derived nodes hold their operation. Because an operation
// only references nodes allocated before its output, the tape is already in
// execution order.
type tape struct {
	operations []ops.Operation
}

func newTape(capacity int) *tape {
	return &tape{
		operations: make([]ops.Operation, 0, capacity),
	}
}

// push appends the entry for the next allocated node.
func (t *tape) push(op ops.Operation) {
	t.operations = append(t.operations, op)
}

// set replaces the entry of node id.
func (t *tape) set(id scalar.ID, op ops.Operation) {
	t.operations[id] = op
}

// op returns the operation that produced id, or nil for a leaf.
func (t *tape) op(id scalar.ID) ops.Operation {
	return t.operations[id]
}

// truncate drops the entries of every node with ID >= n.
func (t *tape) truncate(n int) {
	clear(t.operations[n:])
	t.operations = t.operations[:n]
}

// numOps returns the number of recorded (non-leaf) operations.
func (t *tape) numOps() int {
	n := 0
	for _, op := range t.operations {
		if op != nil {
			n++
		}
	}
	return n
}
