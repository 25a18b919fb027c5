package prominence_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/relief/elevation"
	"github.com/katalvlaran/relief/mesh"
	"github.com/katalvlaran/relief/prominence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathGraph builds a path 0—1—…—(n-1).
func pathGraph(t *testing.T, n int) *mesh.Graph {
	t.Helper()
	g, err := mesh.New(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	return g
}

// assertField compares two float slices treating NaN as equal to NaN.
func assertField(t *testing.T, want, got []float64, msg string) {
	t.Helper()
	require.Len(t, got, len(want), msg)
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "%s: node %d should be NaN, got %v", msg, i, got[i])
			continue
		}
		assert.InDelta(t, want[i], got[i], 1e-12, "%s: node %d", msg, i)
	}
}

// TestCompute_PathScenario pins the exact classification behavior on the
// canonical five-node path, including the "new peak from a not-yet-
// connected region" case at node 2 and the n-way col bookkeeping.
//
// Values [10 7 9 3 8] → elevations [7 4 6 0 5]; visit order 0,2,4,1,3.
// Node 2's neighbors are both unvisited when it is reached, so it opens
// a fresh peak even though the path later connects everything.
func TestCompute_PathScenario(t *testing.T) {
	values := []float64{10, 7, 9, 3, 8}
	g := pathGraph(t, 5)

	var classes []prominence.Class
	var visited []int
	res, err := prominence.Compute(values, g,
		prominence.WithObserver(func(s prominence.Step) {
			classes = append(classes, s.Class)
			visited = append(visited, s.Node)
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4, 1, 3}, visited, "descending visit order")
	assert.Equal(t, []prominence.Class{
		prominence.ClassPeak,
		prominence.ClassPeak,
		prominence.ClassPeak,
		prominence.ClassKeyCol,
		prominence.ClassKeyCol,
	}, classes)

	assert.Equal(t, []int{0, 2, 4}, res.Peaks, "peaks in discovery order")
	assertField(t, []float64{3, 0, 2, 0, 5}, res.Prominence, "prominence")
	assert.Equal(t, []int{0, 2, 0, 4, 2}, res.DominatingPeak)

	require.Len(t, res.KeyCols, 2)
	assert.Equal(t, prominence.KeyCol{Peaks: []int{0, 2}, Col: 1}, res.KeyCols[0])
	assert.Equal(t, prominence.KeyCol{Peaks: []int{2, 4}, Col: 3}, res.KeyCols[1])
}

// TestCompute_TwoIslands verifies disconnected components: two peaks,
// each keeping its full elevation, and an empty key-col table.
func TestCompute_TwoIslands(t *testing.T) {
	values := []float64{5, 1, 4, 1}
	g, err := mesh.FromEdges(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	res, err := prominence.Compute(values, g)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, res.Peaks)
	assert.Empty(t, res.KeyCols, "no basins ever meet")
	// Elevations are [4 0 3 0]; unmerged peaks keep their own elevation.
	assertField(t, []float64{4, math.NaN(), 3, math.NaN()}, res.Prominence, "prominence")
	assert.Equal(t, []int{0, 0, 0, 2}, res.DominatingPeak)
}

// TestCompute_Bridge verifies a single col where two components meet:
// the lower peak's prominence is its elevation minus the bridge's.
func TestCompute_Bridge(t *testing.T) {
	// Elevations [7 4 2 6 0]; peaks 0 and 3, bridge at node 2.
	values := []float64{9, 6, 4, 8, 2}
	g := pathGraph(t, 5)

	res, err := prominence.Compute(values, g)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3}, res.Peaks)
	require.Len(t, res.KeyCols, 1)
	assert.Equal(t, prominence.KeyCol{Peaks: []int{0, 3}, Col: 2}, res.KeyCols[0])
	assertField(t, []float64{5, math.NaN(), 0, 4, math.NaN()}, res.Prominence, "prominence")
}

// TestCompute_SlopeMemoized verifies that a node whose candidate tuple
// was already merged is a slope, and that the frequency tie among its
// neighbors' basins resolves to the lowest peak index.
func TestCompute_SlopeMemoized(t *testing.T) {
	// Path 0—1—2—3—4 plus node 5 touching both 0 and 2. By the time
	// node 5 is visited, peaks 0 and 2 have already merged at col 1.
	values := []float64{10, 7, 9, 3, 8, 4}
	g := pathGraph(t, 6)
	require.NoError(t, g.AddEdge(5, 0))
	require.NoError(t, g.AddEdge(5, 2))

	var class5 prominence.Class
	res, err := prominence.Compute(values, g,
		prominence.WithObserver(func(s prominence.Step) {
			if s.Node == 5 {
				class5 = s.Class
			}
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, prominence.ClassSlope, class5, "merged tuple re-encountered")
	assert.Equal(t, 0, res.DominatingPeak[5], "one neighbor per basin: tie goes to the lowest peak")
	require.Len(t, res.KeyCols, 2, "the tuple {0,2} must merge only once")
}

// TestCompute_SlopePlurality verifies the plurality rule when the
// neighbor counts are not tied.
func TestCompute_SlopePlurality(t *testing.T) {
	// Peaks at 0 and 2 merge at col 1. Node 5 is a slope of 0. Node 6
	// touches {0, 5, 2}: two neighbors in basin 0, one in basin 2.
	values := []float64{10, 7, 9, 6, 5, 8, 3}
	g, err := mesh.FromEdges(7, [][2]int{
		{0, 1}, {1, 2}, {0, 5}, {2, 3}, {2, 4}, {6, 0}, {6, 5}, {6, 2},
	})
	require.NoError(t, err)

	res, err := prominence.Compute(values, g)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, res.Peaks)
	assert.Equal(t, 0, res.DominatingPeak[6], "plurality of neighbors sits in basin 0")
	assert.Equal(t, 0, res.DominatingPeak[5])
	assert.Equal(t, 2, res.DominatingPeak[3])
	assert.Equal(t, 2, res.DominatingPeak[4])
}

// TestCompute_ThreeWayCol verifies the generic n-way merge: one col may
// close more than two peaks in a single step.
func TestCompute_ThreeWayCol(t *testing.T) {
	// Star: center node 3 touches three otherwise disconnected peaks.
	values := []float64{9, 8, 7, 1}
	g, err := mesh.FromEdges(4, [][2]int{{0, 3}, {1, 3}, {2, 3}})
	require.NoError(t, err)

	res, err := prominence.Compute(values, g)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, res.Peaks)
	require.Len(t, res.KeyCols, 1, "one col closes all three peaks")
	assert.Equal(t, prominence.KeyCol{Peaks: []int{0, 1, 2}, Col: 3}, res.KeyCols[0])
	// Elevations [8 7 6 0]; every peak settles against the same col.
	assertField(t, []float64{8, 7, 6, 0}, res.Prominence, "prominence")
	assert.Equal(t, 2, res.DominatingPeak[3], "col adopts the lowest merged peak")
}

// TestCompute_SingleIslandNode verifies a degree-0 node becomes a peak
// with prominence equal to its full elevation.
func TestCompute_SingleIslandNode(t *testing.T) {
	values := []float64{3, 9, 5}
	g, err := mesh.FromEdges(3, [][2]int{{0, 2}}) // node 1 is an island
	require.NoError(t, err)

	res, err := prominence.Compute(values, g)
	require.NoError(t, err)

	// Elevations [0 6 2]. Node 1 leads the sweep and never merges.
	assert.Equal(t, []int{1, 2}, res.Peaks)
	assertField(t, []float64{math.NaN(), 6, 2}, res.Prominence, "prominence")
	assert.Empty(t, res.KeyCols)
}

// TestCompute_Idempotent verifies two runs yield bit-identical output.
func TestCompute_Idempotent(t *testing.T) {
	values := []float64{10, 7, 9, 3, 8, 4}
	g := pathGraph(t, 6)
	require.NoError(t, g.AddEdge(5, 0))
	require.NoError(t, g.AddEdge(5, 2))

	first, err := prominence.Compute(values, g)
	require.NoError(t, err)
	second, err := prominence.Compute(values, g)
	require.NoError(t, err)

	assert.Equal(t, first.Peaks, second.Peaks)
	assert.Equal(t, first.KeyCols, second.KeyCols)
	assert.Equal(t, first.DominatingPeak, second.DominatingPeak)
	assertField(t, first.Prominence, second.Prominence, "prominence")
}

// TestCompute_ObserverCannotSteer verifies the observer sees every step
// but mutating its snapshots leaves the result untouched.
func TestCompute_ObserverCannotSteer(t *testing.T) {
	values := []float64{10, 7, 9, 3, 8}
	g := pathGraph(t, 5)

	baseline, err := prominence.Compute(values, g)
	require.NoError(t, err)

	steps := 0
	res, err := prominence.Compute(values, g,
		prominence.WithObserver(func(s prominence.Step) {
			steps++
			// Vandalize the snapshot; the sweep must not notice.
			for i := range s.Prominence {
				s.Prominence[i] = -999
			}
			for i := range s.Peaks {
				s.Peaks[i] = -1
			}
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, len(values), steps, "one observation per node")
	assert.Equal(t, baseline.Peaks, res.Peaks)
	assertField(t, baseline.Prominence, res.Prominence, "prominence")
}

// TestCompute_Validation covers the precondition errors.
func TestCompute_Validation(t *testing.T) {
	g := pathGraph(t, 3)

	_, err := prominence.Compute([]float64{1, 2, 3}, nil)
	assert.ErrorIs(t, err, prominence.ErrNilGraph)

	_, err = prominence.Compute(nil, g)
	assert.ErrorIs(t, err, prominence.ErrEmptyField)

	_, err = prominence.Compute([]float64{1, 2}, g)
	assert.ErrorIs(t, err, prominence.ErrShapeMismatch)
}

// TestKeyColFor verifies the ordered-tuple lookup.
func TestKeyColFor(t *testing.T) {
	values := []float64{10, 7, 9, 3, 8}
	res, err := prominence.Compute(values, pathGraph(t, 5))
	require.NoError(t, err)

	col, ok := res.KeyColFor([]int{0, 2})
	require.True(t, ok)
	assert.Equal(t, 1, col)

	_, ok = res.KeyColFor([]int{2, 0})
	assert.False(t, ok, "the key preserves discovery order")

	_, ok = res.KeyColFor([]int{0, 4})
	assert.False(t, ok)
}

// TestFromPoints_CenterStat verifies the multi-dimensional entry point
// collapses the field through the configured center statistic.
func TestFromPoints_CenterStat(t *testing.T) {
	// One column, mean 5 → elevations |x−5| = [5 5 0]; node 0 leads the
	// tie, node 1 joins its basin through their shared edge.
	points := [][]float64{{0}, {10}, {5}}
	g := pathGraph(t, 3)

	res, err := prominence.FromPoints(points, g)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Peaks)
	assertField(t, []float64{5, math.NaN(), math.NaN()}, res.Prominence, "prominence")

	_, err = prominence.FromPoints(points, g, prominence.WithCenterStat("mode"))
	assert.ErrorIs(t, err, elevation.ErrUnknownCenter)
}

// TestClassString verifies the closed enumeration's tags.
func TestClassString(t *testing.T) {
	assert.Equal(t, "peak", prominence.ClassPeak.String())
	assert.Equal(t, "slope", prominence.ClassSlope.String())
	assert.Equal(t, "keycol", prominence.ClassKeyCol.String())
	assert.Equal(t, "unknown", prominence.Class(42).String())
}
