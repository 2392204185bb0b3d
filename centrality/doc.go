// Package centrality computes betweenness centrality — the fraction of
// all-pairs shortest paths passing through each vertex — with Brandes'
// dependency-accumulation algorithm.
//
// For every chosen source vertex a single-source shortest-path run
// (shortest.Dijkstra with all-paths tie tracking) produces distances,
// set-valued predecessors, path counts and a finalization order; the
// accumulator then walks that order in reverse (farthest vertex first)
// and propagates each vertex's dependency to its predecessors before
// folding it into the running betweenness vector. One rescale pass at
// the end applies normalization, undirected halving and sample
// extrapolation.
//
// Knobs (functional options):
//
//   - WithWeights(m)       — edge weights; default core.UnitWeights.
//   - WithNormalize(false) — skip the 1/((n-1)(n-2)) normalization;
//     unnormalized undirected scores are halved instead, since each
//     undirected path is counted from both endpoints.
//   - WithEndpoints()      — also credit path endpoints: every reached
//     vertex scores one extra per source, and the source itself scores
//     the number of vertices it reaches.
//   - WithVertexSubset(vs) — accumulate only over the given sources.
//   - WithSample(k)        — sample k sources uniformly without
//     replacement (from the subset, or all vertices); the result is
//     extrapolated by n/k during rescaling.
//   - WithSeed(s)          — rng seed for sampling; fixed default, so
//     runs are reproducible unless the caller varies the seed.
//   - WithWorkers(w)       — fan sources out across w goroutines, each
//     accumulating into a private partial vector summed at the end.
//
// Complexity: O(s·(V + E) log V) for s sources on weighted graphs,
// O(V·E) space-free of the quadratic all-pairs table.
//
// Determinism: with the same graph, options and seed the result is
// bit-identical for Workers == 1; for Workers > 1 floating-point
// summation order may vary in the last ulps.
package centrality
