// Package shortest provides two interchangeable single-source
// shortest-path engines over a core.Graph and a core.DistanceMatrix:
//
//   - Dijkstra — priority-queue relaxation for non-negative weights.
//     Optionally tracks *all* shortest-path predecessors and path
//     counts (WithAllPaths), which is what Brandes-style centrality
//     consumers need; always records the order in which vertices were
//     finalized (non-decreasing distance from the source).
//   - SPFA — queue-optimized Bellman-Ford relaxation. Supports negative
//     edge weights, detects negative-weight cycles reachable from the
//     source (ErrNegativeCycle), and honors a WithMaxDistance bound for
//     cheap bounded-radius searches.
//
// Both return the same Result type, so callers can switch engines
// without touching downstream code. HasNegativeWeightCycle is the
// non-throwing probe form of SPFA's cycle detection.
//
// Choosing an engine:
//
//   - All weights ≥ 0       → Dijkstra, O((V+E) log V).
//   - Any weight < 0        → SPFA, O(V·E) worst case, usually far less
//     on sparse graphs thanks to the work-queue optimization.
//   - Dijkstra rejects negative weights defensively with
//     ErrNegativeWeight instead of returning wrong distances.
//
// Weights default to core.UnitWeights (every edge weighs 1); pass
// WithWeights to supply an explicit matrix.
//
// Complexity:
//
//   - Dijkstra: Time O((V + E) log V) under lazy decrease-key
//     (duplicates pushed, stale entries skipped on pop); Space O(V + E).
//   - SPFA: Time O(V·E) worst case, Space O(V).
//
// All state is allocated per call; a Result is owned by the caller and
// carries nothing shared with the engine after return.
package shortest
