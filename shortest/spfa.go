package shortest

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/centra/core"
)

// SPFA computes shortest distances from source using Bellman-Ford
// relaxation restricted to a FIFO work queue of "active" vertices: a
// vertex is enqueued only when its distance improves and it is not
// already queued, which avoids rescanning all edges every round on
// sparse graphs. Negative edge weights are fully supported.
//
// A per-vertex relaxation counter detects negative cycles: once any
// vertex improves more than Order() times, a negative-weight cycle is
// reachable from source and the run aborts with ErrNegativeCycle — no
// partial result is returned.
//
// WithMaxDistance bounds exploration: a vertex whose tentative distance
// would exceed the bound is neither updated nor enqueued and keeps its
// last recorded (possibly infinite) distance.
//
// Predecessor and path-count bookkeeping is single-parent: on strict
// improvement Preds[v] resets to {u} and Counts[v] to Counts[u]; ties
// are not tracked. Result.Order is materialized after convergence as
// the reachable vertices sorted by non-decreasing distance, matching
// the finalization-order contract of the Dijkstra engine.
//
// Complexity: Time O(V·E) worst case, Space O(V).
func SPFA(g core.Graph, source int, opts ...Option) (*Result, error) {
	cfg, err := validate(g, source, opts)
	if err != nil {
		return nil, err
	}

	return runSPFA(g, source, cfg)
}

// HasNegativeWeightCycle reports whether g contains a negative-weight
// cycle under the configured weights. It never returns an error: the
// probe restarts SPFA from the lowest-index vertex not reached by any
// earlier run until every vertex is covered, so cycles in every
// component are found. Any MaxDistance option is ignored — a bounded
// probe could miss cycles past the horizon.
func HasNegativeWeightCycle(g core.Graph, opts ...Option) bool {
	if g == nil {
		return false
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.MaxDistance = math.Inf(1)

	covered := make([]bool, g.Order())
	for s := range covered {
		if covered[s] {
			continue
		}
		res, err := runSPFA(g, s, cfg)
		if err != nil {
			// runSPFA only fails on a detected cycle.
			return errors.Is(err, ErrNegativeCycle)
		}
		for _, v := range res.Order {
			covered[v] = true
		}
	}

	return false
}

// runSPFA executes one queue-based relaxation pass with resolved options.
func runSPFA(g core.Graph, source int, cfg Options) (*Result, error) {
	n := g.Order()
	res := &Result{
		Source: source,
		Dist:   make([]float64, n),
		Preds:  make([][]int, n),
		Counts: make([]float64, n),
	}
	inf := math.Inf(1)
	for v := range res.Dist {
		res.Dist[v] = inf
	}
	res.Dist[source] = 0
	res.Counts[source] = 1

	var (
		inQueue = make([]bool, n)
		relaxed = make([]int, n) // improvement counter per vertex
		queue   = make([]int, 0, n)
		u, v    int
		w, nd   float64
	)
	queue = append(queue, source)
	inQueue[source] = true

	for len(queue) > 0 {
		u = queue[0]
		queue = queue[1:]
		inQueue[u] = false

		for _, v = range g.OutNeighbors(u) {
			w = cfg.Weights.Weight(u, v)
			nd = res.Dist[u] + w
			if nd >= res.Dist[v] {
				continue
			}
			if nd > cfg.MaxDistance {
				// Past the horizon: keep the last recorded distance.
				continue
			}

			res.Dist[v] = nd
			if v != source {
				res.Preds[v] = append(res.Preds[v][:0], u)
				res.Counts[v] = res.Counts[u]
			}

			relaxed[v]++
			if relaxed[v] > n {
				return nil, ErrNegativeCycle
			}
			if !inQueue[v] {
				queue = append(queue, v)
				inQueue[v] = true
			}
		}
	}

	res.Order = orderByDistance(res.Dist)

	return res, nil
}

// orderByDistance lists the reachable vertices sorted by non-decreasing
// final distance (index ascending on equal distance, for determinism).
func orderByDistance(dist []float64) []int {
	order := make([]int, 0, len(dist))
	for v, d := range dist {
		if !math.IsInf(d, 1) {
			order = append(order, v)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if dist[order[i]] != dist[order[j]] {
			return dist[order[i]] < dist[order[j]]
		}

		return order[i] < order[j]
	})

	return order
}
