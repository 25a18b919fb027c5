// Package prominence decomposes a scalar field on a connectivity graph
// into its peak hierarchy: the peaks themselves, the saddle "key cols"
// where their basins merge, and each peak's height above its controlling
// saddle — topographic prominence, on arbitrary graphs instead of grids.
//
// What:
//
//   - Compute consumes a 1-D field and a mesh.Graph and returns a Result:
//     per-node prominence, the peak list in discovery order, the key-col
//     table, and each node's dominating peak.
//   - FromPoints is the multi-dimensional-field entry (center statistic,
//     default mean).
//   - WithObserver attaches a per-step hook for tracing; StepLogger is a
//     ready-made observer that writes each step to a structured logger.
//
// How — one descending sweep, each node classified exactly once:
//
//	Nodes are visited in strictly descending elevation (ties broken by
//	index, stable). At each node the ordered, de-duplicated list of
//	already-discovered peaks reachable through its neighbors — the
//	candidate peaks, in peak discovery order — drives a four-way rule,
//	evaluated in priority order:
//
//	 1. the exact candidate tuple was already merged   → slope (memoized)
//	 2. no candidate peaks                             → peak
//	 3. ≥2 candidates, at least one still open         → key col
//	 4. otherwise                                      → slope
//
//	A new peak starts its prominence at its own elevation, so an island
//	that never merges keeps its full height. A key col records the merge
//	under the ordered candidate tuple, zeroes its own prominence, and
//	settles every still-open candidate peak by subtracting the col's
//	elevation — peak minus col, the topographic prominence. A slope joins
//	its single candidate's basin, or, among already-merged candidates,
//	the one a plurality of its neighbors point to (frequency ties go to
//	the lowest peak index).
//
// The sweep is strictly sequential with a single writer over an explicit
// state arena; identical inputs give bit-identical outputs.
//
// Complexity: O(n log n) for the sort plus O(n·d̄ + n·p) for the sweep,
// where d̄ is mean degree and p the final peak count. Memory O(n).
//
// Errors:
//
//   - ErrNilGraph:      nil connectivity graph.
//   - ErrEmptyField:    no observations.
//   - ErrShapeMismatch: field length ≠ graph order.
package prominence
