// Package metric resolves distance functions between coordinate points.
//
// What:
//
//   - Func is the binary distance contract used by the isolation engine.
//   - Resolve maps a metric name to a Func: "euclidean", "manhattan"
//     (alias "cityblock") and "chebyshev" are Minkowski norms served by
//     gonum's floats.Distance; "haversine" is the great-circle kernel.
//   - Precomputed wraps a full pairwise-distance matrix as a Func that
//     looks distances up by exact coordinate match instead of computing.
//
// Why:
//
//   - Named metrics cover ordinary planar / normed analysis.
//   - Haversine covers lon/lat data on a sphere.
//   - Precomputed covers network distances, travel times, or any
//     externally supplied dissimilarity that no formula reproduces.
//
// Errors:
//
//   - ErrUnknownMetric: name does not resolve (configuration error,
//     raised before any computation starts).
//   - ErrDimensionMismatch: the two points do not share a dimension.
//   - ErrMatrixShape: precomputed matrix is not n×n aligned to coords.
//   - ErrCoincident: precomputed lookup cannot disambiguate coincident
//     points; jitter the input and rebuild the matrix.
//   - ErrUnknownPoint: precomputed lookup for a point absent from the
//     matrix; precomputed mode cannot extrapolate.
//
// Coincident / unknown lookups are structural limitations of precomputed
// mode, not transient failures — never retry them.
package metric
