package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/relief/mesh"
)

// Sentinel errors for scenario loading.
var (
	// ErrScenarioEmpty indicates a scenario without values.
	ErrScenarioEmpty = errors.New("cli: scenario must define at least one value")

	// ErrScenarioEdge indicates an edge that is not a {u, v} pair.
	ErrScenarioEdge = errors.New("cli: scenario edges must be pairs of node indices")
)

// Scenario is the TOML description of one field to analyze.
//
// A minimal isolation scenario needs values and coordinates; a minimal
// prominence scenario needs values and edges (possibly empty, for a
// field of pure islands). Example:
//
//	values      = [10.0, 7.0, 9.0, 3.0, 8.0]
//	coordinates = [[0.0, 0.0], [1.0, 0.0], [2.5, 0.0], [3.0, 0.0], [4.0, 0.0]]
//	edges       = [[0, 1], [1, 2], [2, 3], [3, 4]]
//	metric      = "euclidean"
//	center      = "median"
type Scenario struct {
	Values      []float64   `toml:"values"`
	Coordinates [][]float64 `toml:"coordinates"`
	Edges       [][]int     `toml:"edges"`
	Metric      string      `toml:"metric"`
	Center      string      `toml:"center"`
}

// LoadScenario reads and validates a scenario file. Validation failures
// are reported here, before any computation begins.
func LoadScenario(path string) (*Scenario, error) {
	var sc Scenario
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return nil, fmt.Errorf("cli: decoding %s: %w", path, err)
	}
	if len(sc.Values) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrScenarioEmpty, path)
	}
	for i, e := range sc.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrScenarioEdge, i, len(e))
		}
	}

	return &sc, nil
}

// Graph materializes the scenario's edge list as a connectivity graph
// over the scenario's nodes.
func (sc *Scenario) Graph() (*mesh.Graph, error) {
	g, err := mesh.New(len(sc.Values))
	if err != nil {
		return nil, err
	}
	for _, e := range sc.Edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
