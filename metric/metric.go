package metric

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Resolve maps a metric name to a distance Func.
//
// Supported names (case-insensitive):
//
//   - "euclidean"              — L2 norm
//   - "manhattan", "cityblock" — L1 norm
//   - "chebyshev"              — L∞ norm
//   - "haversine"              — great-circle central angle, see Haversine
//
// Any other name returns ErrUnknownMetric. Resolution happens before any
// computation begins, so a bad name fails fast.
func Resolve(name string) (Func, error) {
	switch strings.ToLower(name) {
	case "euclidean":
		return minkowski(2), nil
	case "manhattan", "cityblock":
		return minkowski(1), nil
	case "chebyshev":
		return minkowski(math.Inf(1)), nil
	case "haversine":
		return Haversine, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// minkowski builds an L-norm distance Func on top of floats.Distance.
func minkowski(l float64) Func {
	return func(p, q []float64) (float64, error) {
		if len(p) != len(q) {
			return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(p), len(q))
		}

		return floats.Distance(p, q, l), nil
	}
}

// Haversine computes the great-circle distance between two points given
// as (longitude, latitude) in radians, returned as the central angle on
// the unit sphere. Multiply by a sphere radius to obtain a length.
//
// Points must have at least two dimensions; extra dimensions are ignored.
func Haversine(p, q []float64) (float64, error) {
	if len(p) < 2 || len(q) < 2 {
		return 0, fmt.Errorf("%w: haversine needs (lon, lat) pairs", ErrDimensionMismatch)
	}
	sinLat := math.Sin((q[1] - p[1]) / 2)
	sinLon := math.Sin((q[0] - p[0]) / 2)
	h := sinLat*sinLat + math.Cos(p[1])*math.Cos(q[1])*sinLon*sinLon

	return 2 * math.Asin(math.Sqrt(h)), nil
}
