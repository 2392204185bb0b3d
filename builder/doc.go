// Package builder assembles deterministic graph fixtures for tests,
// benchmarks and the CLI.
//
// One orchestrator — BuildGraph — creates a core.AdjacencyGraph of the
// requested order, resolves the builder configuration from functional
// options, and applies topology constructors in order. Same order,
// options, seed and constructor sequence ⇒ identical graphs.
//
// Constructors:
//
//	Path()           — simple path 0-1-…-(n-1), n ≥ 2
//	Cycle()          — simple cycle over all vertices, n ≥ 3
//	Star()           — hub at vertex 0 with n-1 spokes, n ≥ 2
//	Complete()       — every unordered pair, n ≥ 1
//	RandomSparse(p)  — each pair independently with probability p,
//	                   driven by the seeded rng (WithSeed)
//
// Constructors respect the graph's directedness: on directed graphs
// Path/Cycle emit forward edges only and Star emits hub→leaf spokes.
// All constructors validate parameters early and return sentinel
// errors; none panic at runtime.
package builder
