// Package mesh provides the connectivity structure consumed by the
// prominence sweep: a sparse, symmetric adjacency relation over the node
// indices 0..n-1 of an observed field.
//
// What:
//
//   - Graph holds a fixed number of nodes and an undirected, deduplicated
//     edge set between them.
//   - Nodes are plain indices, aligned with the field they describe; a node
//     with no edges is a legal "island".
//   - Neighbor lists are kept sorted ascending, so every traversal over a
//     Graph is deterministic.
//
// Why:
//
//   - Polygon adjacency: contiguity between census tracts, counties, parcels.
//   - k-nearest or distance-band neighbor relations materialized as edges.
//   - Any symmetric relation where "touches" matters more than "how far".
//
// Complexity:
//
//   - AddEdge:   O(d) per call (ordered insert into two neighbor lists).
//   - Neighbors: O(1), returning a shared sorted slice (do not mutate).
//   - Memory:    O(n + e).
//
// Errors:
//
//   - ErrBadOrder:  requested node count is not positive.
//   - ErrNodeRange: an edge endpoint lies outside 0..n-1.
package mesh
