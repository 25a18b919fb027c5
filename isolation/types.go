// Package isolation defines records, options, and sentinel errors for the
// nearest-higher-neighbor engine of github.com/katalvlaran/relief.
package isolation

import (
	"errors"

	"github.com/katalvlaran/relief/elevation"
	"github.com/katalvlaran/relief/metric"
)

// Sentinel errors for isolation execution.
var (
	// ErrEmptyField indicates a field with no observations.
	ErrEmptyField = errors.New("isolation: field must have at least one observation")

	// ErrShapeMismatch indicates field length ≠ coordinate count.
	ErrShapeMismatch = errors.New("isolation: field and coordinates must align by index")

	// ErrIndexUnavailable indicates the spatial index required by the
	// sweep cannot be constructed for the given coordinates.
	ErrIndexUnavailable = errors.New("isolation: spatial index unavailable for these coordinates")
)

// Record links one observation to its nearest equal-or-higher neighbor.
//
// The global maximum carries the sentinel parent: ParentIndex and
// ParentRank are -1, Distance and Gap are NaN.
type Record struct {
	Index       int     // own observation index
	ParentIndex int     // index of the nearest higher neighbor, -1 for the top
	Rank        int     // position in descending-elevation order (0 = highest)
	ParentRank  int     // parent's rank, -1 for the top
	Distance    float64 // metric distance to the parent, NaN for the top
	Gap         float64 // parent elevation − own elevation, NaN for the top
}

// Records is the full precedence forest, ordered by original index:
// Records[i].Index == i.
type Records []Record

// Distances returns just the distance column, aligned by original index.
// This is the summary view of the precedence forest.
func (rs Records) Distances() []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Distance
	}

	return out
}

// Options configures the isolation engine.
//
// Metric     – named metric, used when MetricFunc and Dist are unset.
// MetricFunc – explicit distance callable; takes precedence over names.
// Dist       – precomputed distance matrix; takes precedence over Metric.
// CenterName – center statistic for FromPoints ("mean" or "median").
// Center     – explicit center callable; takes precedence over CenterName.
type Options struct {
	Metric     string
	MetricFunc metric.Func
	Dist       [][]float64
	CenterName string
	Center     elevation.Center
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// DefaultOptions returns the engine defaults: euclidean metric, median
// center statistic.
func DefaultOptions() Options {
	return Options{
		Metric:     "euclidean",
		CenterName: "median",
	}
}

// WithMetric selects a named metric; see metric.Resolve for the names.
func WithMetric(name string) Option {
	return func(o *Options) {
		o.Metric = name
	}
}

// WithMetricFunc supplies an explicit distance callable.
func WithMetricFunc(f metric.Func) Option {
	return func(o *Options) {
		if f != nil {
			o.MetricFunc = f
		}
	}
}

// WithPrecomputed supplies a full pairwise-distance matrix aligned with
// the coordinates; distances are then looked up, never computed.
func WithPrecomputed(dist [][]float64) Option {
	return func(o *Options) {
		o.Dist = dist
	}
}

// WithCenterStat selects the named center statistic used by FromPoints.
func WithCenterStat(name string) Option {
	return func(o *Options) {
		o.CenterName = name
	}
}

// WithCenterFunc supplies an explicit center callable for FromPoints.
func WithCenterFunc(c elevation.Center) Option {
	return func(o *Options) {
		if c != nil {
			o.Center = c
		}
	}
}
