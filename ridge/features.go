package ridge

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/core/parallel"
)

// BasisSize is the length of the expanded feature vector: intercept,
// linear and quadratic terms.
const BasisSize = 3

// Expand maps a scalar input x to its quadratic feature vector [1, x, x²].
// The intercept term comes first; coefficient indices are interpreted
// positionally downstream.
func Expand(x float64) []float64 {
	return []float64{1, x, x * x}
}

// Row count above which design-matrix construction and batch prediction
// switch to parallel processing.
const parallelThreshold = 1000

// designMatrix stacks Expand(x) for each input, one row per sample in
// input order, so that rows stay aligned with the target vector.
func designMatrix(xs []float64) *mat.Dense {
	n := len(xs)
	X := mat.NewDense(n, BasisSize, nil)

	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			x := xs[i]
			X.Set(i, 0, 1.0)
			X.Set(i, 1, x)
			X.Set(i, 2, x*x)
		}
	})

	return X
}
