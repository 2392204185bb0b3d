// Package core: interfaces, sentinel errors and construction options.
package core

import "errors"

// Sentinel errors for core graph and matrix operations.
var (
	// ErrVertexOutOfRange indicates an endpoint index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNotSquare indicates that Dense rows do not form a square matrix.
	ErrNotSquare = errors.New("core: weight rows must form a square matrix")
)

// Graph is the read-only view the centra engines consume.
//
// Order reports the vertex count n; valid vertex indices are 0..n-1.
// OutNeighbors enumerates the heads of edges leaving u (for undirected
// graphs every incident edge appears in both endpoints' lists).
// OutDegree is len(OutNeighbors(u)) without the allocation.
// Directed reports whether edges are one-way.
type Graph interface {
	Order() int
	Directed() bool
	OutNeighbors(u int) []int
	OutDegree(u int) int
}

// DistanceMatrix maps an ordered vertex pair (u, v) to the weight of the
// edge u→v. It is consulted only for pairs the Graph reports as edges,
// so implementations need not encode adjacency themselves.
type DistanceMatrix interface {
	Weight(u, v int) float64
}

// GraphOption configures an AdjacencyGraph at construction time.
type GraphOption func(*AdjacencyGraph)

// WithDirected sets the directedness of all edges (true = one-way).
// The default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *AdjacencyGraph) { g.directed = directed }
}
