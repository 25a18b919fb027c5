// Package metric defines the distance-function contract and sentinel
// errors for metric resolution in github.com/katalvlaran/relief.
package metric

import "errors"

// Sentinel errors for metric resolution and precomputed lookups.
var (
	// ErrUnknownMetric indicates a metric name that does not resolve.
	ErrUnknownMetric = errors.New("metric: unknown metric name")

	// ErrDimensionMismatch indicates two points of differing dimension.
	ErrDimensionMismatch = errors.New("metric: points have different dimensions")

	// ErrMatrixShape indicates a precomputed matrix that is not n×n
	// aligned with the supplied coordinates.
	ErrMatrixShape = errors.New("metric: precomputed matrix must be square and aligned to coordinates")

	// ErrCoincident indicates a precomputed lookup on coincident points.
	// Precomputed distances cannot disambiguate identical coordinates; add
	// a slight bit of noise to the input and recompute the matrix.
	ErrCoincident = errors.New("metric: precomputed distances cannot disambiguate coincident points")

	// ErrUnknownPoint indicates a precomputed lookup for a point that was
	// not part of the original matrix. Precomputed mode cannot extrapolate
	// to new points.
	ErrUnknownPoint = errors.New("metric: precomputed distances cannot reach points outside the matrix")
)

// Func computes the distance between two points of equal dimension.
// Implementations must be pure and deterministic: the isolation sweep
// calls a Func once per processed point and never retries.
type Func func(p, q []float64) (float64, error)
