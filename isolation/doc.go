// Package isolation measures, for every observation, the distance to its
// nearest higher-valued neighbor — the "isolation" of a peak in
// topographic terms — and the precedence forest those parent links form.
//
// What:
//
//   - Compute consumes a 1-D field plus one coordinate point per
//     observation and returns one Record per index: the parent (nearest
//     equal-or-higher point), both ranks, the metric distance and the
//     elevation gap. The global maximum has no parent.
//   - FromPoints is the multi-dimensional-field entry: the field is first
//     collapsed to elevations via a center statistic (default median).
//   - Records.Distances is the summary view: just the distance column.
//
// How:
//
//	Elevations are visited in strictly descending order (ties broken by
//	original index, stable). A dynamic R-tree starts with only the global
//	maximum; each subsequent point queries the tree for its nearest
//	already-inserted point — by construction a point of equal or higher
//	elevation — records the link, then inserts itself. A point tied with
//	its parent is "lower" purely because it sorts later.
//
// Complexity: O(n log n) for the sort, O(n log n) amortized R-tree
// insert/query, O(n) memory beyond the index.
//
// Errors:
//
//   - ErrEmptyField:       no observations.
//   - ErrShapeMismatch:    field length ≠ coordinate count.
//   - ErrIndexUnavailable: the spatial index cannot be built for these
//     coordinates (ragged rows or zero dimensions).
//   - metric resolution and lookup errors propagate unchanged; see the
//     metric package for the precomputed mode's failure modes.
//
// The nearest-neighbor query is answered in the index's euclidean
// geometry; the recorded Distance always uses the resolved metric.
package isolation
