package fpr

import "gonum.org/v1/gonum/mat"

// NewEaseMatrix wraps a flat, row-major I*I slice of affinities as a
// gonum *mat.Dense without copying it — mat.NewDense uses the supplied
// slice directly as its backing store, so a 10k x 10k float64 matrix
// (roughly 800MB) is borrowed, not duplicated, as required by spec (the
// constructor must not copy the EASE matrix needlessly).
//
// Row i, column j is the affinity "item j given item i in history," per
// the data model; the diagonal is conventionally zero but that is never
// assumed here.
func NewEaseMatrix(data []float64, itemUniverseSize int) (*mat.Dense, error) {
	if itemUniverseSize <= 0 {
		return nil, newShapeError("ease matrix: item universe size must be positive, got %d", itemUniverseSize)
	}
	want := itemUniverseSize * itemUniverseSize
	if len(data) != want {
		return nil, newShapeError("ease matrix: expected %d x %d = %d entries, got %d", itemUniverseSize, itemUniverseSize, want, len(data))
	}
	return mat.NewDense(itemUniverseSize, itemUniverseSize, data), nil
}
