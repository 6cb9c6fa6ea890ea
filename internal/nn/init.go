package nn

import "math/rand"

// Source produces uniform random numbers in [0, 1).
//
// *rand.Rand satisfies Source; inject a seeded one for reproducible
// initialization.
type Source interface {
	Float64() float64
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) Source {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}

// Uniform draws a value uniformly from [-1, 1).
func Uniform(src Source) float64 {
	return src.Float64()*2.0 - 1.0
}
