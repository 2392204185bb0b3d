package core

import "fmt"

// AdjacencyGraph is the bundled Graph implementation: an adjacency list
// over dense int vertices. Undirected graphs mirror every edge into both
// endpoints' neighbor lists.
//
// The zero value is an empty undirected graph; prefer NewGraph.
type AdjacencyGraph struct {
	directed bool
	adj      [][]int
}

// NewGraph creates a graph with n isolated vertices (indices 0..n-1).
// Negative n is treated as zero.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *AdjacencyGraph {
	if n < 0 {
		n = 0
	}
	g := &AdjacencyGraph{adj: make([][]int, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Order returns the vertex count.
func (g *AdjacencyGraph) Order() int { return len(g.adj) }

// Directed reports whether edges are one-way.
func (g *AdjacencyGraph) Directed() bool { return g.directed }

// OutNeighbors returns the heads of edges leaving u. The returned slice
// is the graph's own storage: callers must not modify it.
func (g *AdjacencyGraph) OutNeighbors(u int) []int { return g.adj[u] }

// OutDegree returns the number of edges leaving u.
func (g *AdjacencyGraph) OutDegree(u int) int { return len(g.adj[u]) }

// AddVertex appends an isolated vertex and returns its index.
// Complexity: amortized O(1).
func (g *AdjacencyGraph) AddVertex() int {
	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// AddEdge inserts the edge u→v (and v→u when the graph is undirected).
// Parallel edges are not deduplicated; self-loops are permitted.
// Returns ErrVertexOutOfRange if either endpoint is invalid.
// Complexity: O(1).
func (g *AdjacencyGraph) AddEdge(u, v int) error {
	n := len(g.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: edge %d→%d in graph of order %d", ErrVertexOutOfRange, u, v, n)
	}
	g.adj[u] = append(g.adj[u], v)
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], u)
	}

	return nil
}

// HasEdge reports whether an edge u→v exists. Out-of-range endpoints
// simply report false.
// Complexity: O(OutDegree(u)).
func (g *AdjacencyGraph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Edges enumerates all edges as [from, to] pairs in vertex order.
// For undirected graphs each edge is reported once, with from ≤ to.
// Complexity: O(V + E).
func (g *AdjacencyGraph) Edges() [][2]int {
	var out [][2]int
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if !g.directed && v < u {
				continue // mirrored copy; reported from the lower endpoint
			}
			out = append(out, [2]int{u, v})
		}
	}

	return out
}
