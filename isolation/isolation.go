// Package isolation implements the nearest-higher-neighbor sweep.
//
// Algorithm outline:
//
//  1. Rescale the field to elevations (minimum at zero).
//  2. Sort indices by descending elevation, ties broken by index (stable).
//  3. Insert the global maximum into an empty R-tree; it has no parent.
//  4. For each subsequent index: query the tree for the nearest inserted
//     point (by construction equal-or-higher), record
//     {index, parent, rank, parent rank, metric distance, elevation gap},
//     and insert the point so later, lower points can adopt it.
//  5. Return the records permuted back into original index order.
//
// The sweep is strictly sequential: each step depends on the index's
// contents after all previous steps. No shared state survives a call.
package isolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/relief/elevation"
	"github.com/katalvlaran/relief/metric"
)

// Compute runs the isolation sweep over a 1-D field.
//
// values[i] is the raw field value at coords[i]; both must have one entry
// per observation. The result is ordered by original index and contains
// one Record per observation; see Records.Distances for the summary view.
//
// Preconditions and validation (in order):
//  1. values must be non-empty (ErrEmptyField).
//  2. coords must align with values (ErrShapeMismatch).
//  3. the metric must resolve (metric.ErrUnknownMetric, metric.ErrMatrixShape).
//  4. coords must support spatial indexing (ErrIndexUnavailable).
//
// Precomputed-metric lookups may additionally fail mid-sweep with
// metric.ErrCoincident or metric.ErrUnknownPoint; no partial result is
// returned in that case.
func Compute(values []float64, coords [][]float64, opts ...Option) (Records, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(values) == 0 {
		return nil, ErrEmptyField
	}
	if len(coords) != len(values) {
		return nil, fmt.Errorf("%w: %d values vs %d coordinates", ErrShapeMismatch, len(values), len(coords))
	}

	dist, err := resolveMetric(&cfg, coords)
	if err != nil {
		return nil, err
	}

	return sweep(elevation.Rescale(values), coords, dist)
}

// FromPoints runs the isolation sweep over a multi-dimensional field.
//
// points[i] is the raw field observation (k ≥ 1 values) located at
// coords[i]. The field is first collapsed to elevations as the distance
// from its central point, located per dimension by the configured center
// statistic (default "median"). Validation otherwise matches Compute.
func FromPoints(points [][]float64, coords [][]float64, opts ...Option) (Records, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(points) == 0 {
		return nil, ErrEmptyField
	}
	if len(coords) != len(points) {
		return nil, fmt.Errorf("%w: %d observations vs %d coordinates", ErrShapeMismatch, len(points), len(coords))
	}

	// Resolve both names first: configuration errors surface before any
	// computation starts.
	dist, err := resolveMetric(&cfg, coords)
	if err != nil {
		return nil, err
	}
	center := cfg.Center
	if center == nil {
		if center, err = elevation.ResolveCenter(cfg.CenterName); err != nil {
			return nil, err
		}
	}

	elev, err := elevation.FromPoints(points, center)
	if err != nil {
		return nil, err
	}

	return sweep(elev, coords, dist)
}

// resolveMetric picks the distance function in precedence order:
// explicit callable, precomputed matrix, named metric.
func resolveMetric(cfg *Options, coords [][]float64) (metric.Func, error) {
	switch {
	case cfg.MetricFunc != nil:
		return cfg.MetricFunc, nil
	case cfg.Dist != nil:
		return metric.Precomputed(coords, cfg.Dist)
	default:
		return metric.Resolve(cfg.Metric)
	}
}

// sweep is the core descending pass. elev and coords are aligned by
// index; dist has already been resolved.
func sweep(elev []float64, coords [][]float64, dist metric.Func) (Records, error) {
	index, err := newNNIndex(coords)
	if err != nil {
		return nil, err
	}

	// Total visiting order: descending elevation, stable on ties. A point
	// tied with an earlier one is treated as lower purely by sort order.
	order := elevation.DescendingOrder(elev)
	records := make(Records, len(elev))

	// The global maximum opens the sweep with the sentinel parent.
	top := order[0]
	records[top] = Record{
		Index:       top,
		ParentIndex: -1,
		Rank:        0,
		ParentRank:  -1,
		Distance:    math.NaN(),
		Gap:         math.NaN(),
	}
	index.insert(top, 0, coords[top])

	var node, parent int
	var d float64
	for rank := 1; rank < len(order); rank++ {
		node = order[rank]

		// Nearest already-inserted point = nearest equal-or-higher point.
		match := index.nearest(coords[node])
		parent = match.node

		if d, err = dist(coords[node], coords[parent]); err != nil {
			return nil, err
		}
		records[node] = Record{
			Index:       node,
			ParentIndex: parent,
			Rank:        rank,
			ParentRank:  match.rank,
			Distance:    d,
			Gap:         elev[parent] - elev[node],
		}

		// From here on, this point is a candidate parent for lower ones.
		index.insert(node, rank, coords[node])
	}

	return records, nil
}
