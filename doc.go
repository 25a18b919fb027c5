// Package relief computes topography-inspired statistics over scalar
// fields observed at spatial locations — peaks, saddles, prominence and
// isolation, the classic digital-elevation-model vocabulary repurposed
// for exploratory spatial data analysis on arbitrary graphs.
//
// 🚀 What is relief?
//
//	A small, deterministic library that brings together:
//		• mesh       — symmetric adjacency ("connectivity") over node indices
//		• metric     — distance resolution: named metrics, haversine, callables,
//		               and precomputed pairwise-distance matrices
//		• elevation  — rescaling raw fields into "height above sea level"
//		• isolation  — distance from each point to its nearest higher neighbor,
//		               via an incrementally grown R-tree
//		• prominence — a descending sweep that discovers peaks, key cols and
//		               each peak's height above its controlling saddle
//
// ✨ Why choose relief?
//
//   - Deterministic – stable tie-breaking everywhere; identical inputs give
//     bit-identical outputs
//   - Auditable – each sweep is a single writer over an explicit state arena
//   - Observable – per-step observer hooks for tracing and debugging,
//     decoupled from the algorithms' control flow
//   - Pure computation – no files, no network, no persisted state
//
// Quick ASCII intuition, a 1-D field on a path graph:
//
//	 10▲   ▲9
//	   │  7│   ▲8
//	   │   │  3│
//	   0───1───2───3───4
//
//	nodes 0 and 2 rise above their neighbors; the cols where their basins
//	meet carry the prominence of the lower peak.
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/relief
package relief
