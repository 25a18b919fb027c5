package metric

import (
	"fmt"
	"strconv"
	"strings"
)

// Precomputed wraps a full pairwise-distance matrix as a Func.
//
// coords must hold the n coordinate points the matrix was computed for,
// and dist must be an n×n matrix aligned with them: dist[a][b] is the
// distance from coords[a] to coords[b]. The returned Func resolves its
// two arguments back to matrix rows by exact coordinate match.
//
// Structural limitations, surfaced as errors at lookup time:
//
//   - ErrCoincident  — a queried point matches more than one coords row.
//   - ErrUnknownPoint — a queried point matches no coords row.
//
// A non-square or misaligned matrix fails immediately with ErrMatrixShape.
func Precomputed(coords [][]float64, dist [][]float64) (Func, error) {
	n := len(coords)
	if len(dist) != n {
		return nil, fmt.Errorf("%w: %d rows for %d points", ErrMatrixShape, len(dist), n)
	}
	for i, row := range dist {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMatrixShape, i, len(row), n)
		}
	}

	// Index coordinates by an exact bit-level key. A key seen twice marks
	// a coincident pair that can never be disambiguated.
	rows := make(map[string]int, n)
	coincident := make(map[string]struct{})
	for i, pt := range coords {
		k := pointKey(pt)
		if _, dup := rows[k]; dup {
			coincident[k] = struct{}{}
			continue
		}
		rows[k] = i
	}

	lookup := func(pt []float64) (int, error) {
		k := pointKey(pt)
		if _, dup := coincident[k]; dup {
			return 0, fmt.Errorf("%w: %v", ErrCoincident, pt)
		}
		i, ok := rows[k]
		if !ok {
			return 0, fmt.Errorf("%w: %v", ErrUnknownPoint, pt)
		}

		return i, nil
	}

	return func(p, q []float64) (float64, error) {
		a, err := lookup(p)
		if err != nil {
			return 0, err
		}
		b, err := lookup(q)
		if err != nil {
			return 0, err
		}

		return dist[a][b], nil
	}, nil
}

// pointKey renders a point as an exact, collision-free string key.
// The 'b' format preserves every bit of each float64.
func pointKey(pt []float64) string {
	var sb strings.Builder
	for i, x := range pt {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(strconv.FormatFloat(x, 'b', -1, 64))
	}

	return sb.String()
}
