// Package core defines the two abstractions every centra algorithm is
// written against — Graph and DistanceMatrix — together with reference
// implementations of both.
//
// Overview:
//
//   - Vertices are dense int indices 0..n-1; a vertex has no identity
//     beyond its index. This keeps every per-vertex working array a
//     plain slice and makes results directly indexable.
//   - Graph is a read-only view: vertex count, out-neighbor enumeration,
//     out-degree, and a directed/undirected flag. AdjacencyGraph is the
//     bundled adjacency-list implementation; any caller-supplied type
//     with the same four methods works equally well.
//   - DistanceMatrix maps an ordered vertex pair to an edge weight.
//     UnitWeights (the default everywhere) returns 1 for every lookup,
//     which is exactly the unweighted convention. Dense stores an
//     explicit square float64 matrix with +Inf meaning "no path".
//
// Numeric policy:
//
//   - Weights and distances are float64 throughout. math.Inf(1) is the
//     only sentinel for "unreachable"/"no edge"; NaN is never produced.
//
// Concurrency:
//
//   - AdjacencyGraph and Dense are plain in-memory structures with no
//     internal locking. They are safe for concurrent readers; callers
//     must not mutate them while an algorithm is running.
//
// Errors (sentinel):
//
//   - ErrVertexOutOfRange – an endpoint index is < 0 or ≥ Order().
//   - ErrNotSquare        – Dense construction from non-square rows.
package core
