// Package elevation implements the field-to-elevation transform of
// github.com/katalvlaran/relief.
package elevation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for elevation transforms.
var (
	// ErrUnknownCenter indicates a center-statistic name that does not resolve.
	ErrUnknownCenter = errors.New("elevation: unknown center statistic")

	// ErrRaggedPoints indicates point rows of differing (or zero) dimension.
	ErrRaggedPoints = errors.New("elevation: points must share one positive dimension")
)

// Center computes the central value of one coordinate column.
// It is applied per dimension by FromPoints to locate the field's center.
type Center func(column []float64) float64

// Mean is the arithmetic-mean center statistic.
func Mean(column []float64) float64 {
	return stat.Mean(column, nil)
}

// Median is the empirical-median center statistic.
func Median(column []float64) float64 {
	sorted := append([]float64(nil), column...)
	sort.Float64s(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// ResolveCenter maps a statistic name to a Center.
// Supported (case-insensitive): "mean", "median".
// Any other name returns ErrUnknownCenter.
func ResolveCenter(name string) (Center, error) {
	switch strings.ToLower(name) {
	case "mean":
		return Mean, nil
	case "median":
		return Median, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCenter, name)
	}
}

// Rescale returns a copy of a 1-D field shifted so its minimum is zero.
// The lowest observation becomes "sea level"; all elevations are ≥ 0.
// An empty input yields an empty output.
func Rescale(values []float64) []float64 {
	out := append([]float64(nil), values...)
	if len(out) == 0 {
		return out
	}
	low := floats.Min(out)
	for i := range out {
		out[i] -= low
	}

	return out
}

// DescendingOrder returns the index permutation that visits elev from its
// highest value down. Ties keep original index order (stable sort); the
// engines' tie-breaking guarantees rest on exactly this rule.
func DescendingOrder(elev []float64) []int {
	order := make([]int, len(elev))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return elev[order[a]] > elev[order[b]]
	})

	return order
}

// FromPoints computes the elevation of n points in k-dimensional space as
// each point's euclidean distance from the field's central point, where
// the center is located per dimension by the given statistic.
//
// All rows must share one positive dimension (ErrRaggedPoints otherwise).
// An empty input yields an empty output.
func FromPoints(points [][]float64, center Center) ([]float64, error) {
	n := len(points)
	if n == 0 {
		return []float64{}, nil
	}
	k := len(points[0])
	if k == 0 {
		return nil, fmt.Errorf("%w: row 0 has no dimensions", ErrRaggedPoints)
	}
	for i, pt := range points {
		if len(pt) != k {
			return nil, fmt.Errorf("%w: row %d has %d dimensions, want %d", ErrRaggedPoints, i, len(pt), k)
		}
	}

	// Locate the center, one statistic evaluation per dimension.
	mid := make([]float64, k)
	column := make([]float64, n)
	for d := 0; d < k; d++ {
		for i := range points {
			column[i] = points[i][d]
		}
		mid[d] = center(column)
	}

	// Elevation = distance from the center point.
	out := make([]float64, n)
	for i, pt := range points {
		out[i] = floats.Distance(pt, mid, 2)
	}

	return out, nil
}
