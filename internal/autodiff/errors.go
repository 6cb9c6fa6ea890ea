package autodiff

import "errors"

// Common errors.
var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrForeignValue   = errors.New("value belongs to a different graph")
	ErrNotLeaf        = errors.New("value is not a leaf")
)
