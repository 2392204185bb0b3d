// Package centra is a compact toolkit for single-source shortest paths
// and betweenness centrality on weighted, directed or undirected graphs.
//
// 🚀 What is centra?
//
//	A small, deterministic library that brings together:
//		• Core primitives: a dense int-indexed Graph plus pluggable DistanceMatrix weights
//		• Shortest paths: Dijkstra (non-negative weights, all-paths tie tracking)
//		  and SPFA (negative weights, negative-cycle detection, bounded radius)
//		• Centrality: Brandes betweenness with normalization, endpoint counting,
//		  vertex subsets and seeded sampling
//		• Fixtures: deterministic topology builders for tests and benchmarks
//
// ✨ Why choose centra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same graph, options and seed ⇒ identical output
//   - Pure Go – no cgo; the engines consume interfaces, so any graph
//     representation with out-neighbor enumeration plugs in
//
// Everything is organized under four subpackages and one command:
//
//	core/       — Graph and DistanceMatrix abstractions + reference implementations
//	shortest/   — Dijkstra and SPFA single-source engines, shared Result type
//	centrality/ — Brandes betweenness accumulation and rescaling
//	builder/    — deterministic graph fixtures (path, cycle, star, complete, sparse)
//	cmd/centra  — edge-list CLI for distances, betweenness and fixture generation
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a square on four vertices; every vertex has betweenness 1/6 after
//	default normalization.
//
//	go get github.com/katalvlaran/centra
package centra
