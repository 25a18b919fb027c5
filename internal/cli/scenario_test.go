package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario drops a TOML scenario into a temp dir and returns its path.
func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadScenario_Valid parses a full scenario.
func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
values      = [10.0, 7.0, 9.0, 3.0, 8.0]
coordinates = [[0.0, 0.0], [1.0, 0.0], [2.5, 0.0], [3.0, 0.0], [4.0, 0.0]]
edges       = [[0, 1], [1, 2], [2, 3], [3, 4]]
metric      = "euclidean"
center      = "median"
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, sc.Values, 5)
	assert.Len(t, sc.Coordinates, 5)
	assert.Len(t, sc.Edges, 4)
	assert.Equal(t, "euclidean", sc.Metric)

	g, err := sc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
}

// TestLoadScenario_Empty rejects a scenario without values.
func TestLoadScenario_Empty(t *testing.T) {
	path := writeScenario(t, `edges = [[0, 1]]`)

	_, err := LoadScenario(path)
	assert.ErrorIs(t, err, ErrScenarioEmpty)
}

// TestLoadScenario_BadEdge rejects malformed edges.
func TestLoadScenario_BadEdge(t *testing.T) {
	path := writeScenario(t, `
values = [1.0, 2.0]
edges  = [[0, 1, 2]]
`)

	_, err := LoadScenario(path)
	assert.ErrorIs(t, err, ErrScenarioEdge)
}

// TestLoadScenario_MissingFile surfaces the filesystem error.
func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
