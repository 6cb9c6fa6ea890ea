package nn

import "errors"

// ErrNotScalar is returned when a single output is requested from a module
// with more than one output.
var ErrNotScalar = errors.New("module output is not a single value")
