package shortest

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/centra/core"
)

// Dijkstra computes shortest distances from source to every vertex of g
// under the configured weight matrix. All weights must be non-negative;
// a negative weight aborts the run with ErrNegativeWeight.
//
// Bookkeeping on relaxing an edge (u,w) with candidate d = Dist[u] + weight(u,w):
//
//   - d < Dist[w]:  replace Dist[w], reset Preds[w] = {u}, reset
//     Counts[w] = Counts[u], push w onto the heap.
//   - d == Dist[w]: under WithAllPaths, append u to Preds[w] and add
//     Counts[u] to Counts[w]; otherwise ties are ignored.
//
// Vertices are finalized in non-decreasing distance order and appended
// to Result.Order as they leave the queue; unreachable vertices keep
// Dist = +Inf and do not appear in Order.
//
// Complexity: Time O((V + E) log V), Space O(V + E).
func Dijkstra(g core.Graph, source int, opts ...Option) (*Result, error) {
	cfg, err := validate(g, source, opts)
	if err != nil {
		return nil, err
	}

	r := newDijkstraRun(g, source, cfg)
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// dijkstraRun holds the mutable state of a single execution. Every
// buffer is allocated here and handed to the caller inside res; nothing
// leaks between calls.
type dijkstraRun struct {
	g       core.Graph
	weights core.DistanceMatrix
	cfg     Options
	visited []bool
	pq      nodePQ
	res     *Result
}

func newDijkstraRun(g core.Graph, source int, cfg Options) *dijkstraRun {
	n := g.Order()
	res := &Result{
		Source: source,
		Dist:   make([]float64, n),
		Preds:  make([][]int, n),
		Counts: make([]float64, n),
		Order:  make([]int, 0, n),
	}
	inf := math.Inf(1)
	for v := range res.Dist {
		res.Dist[v] = inf
	}
	res.Dist[source] = 0
	res.Counts[source] = 1

	r := &dijkstraRun{
		g:       g,
		weights: cfg.Weights,
		cfg:     cfg,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
		res:     res,
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})

	return r
}

// process repeatedly extracts the closest unfinalized vertex and
// relaxes its outgoing edges, until the heap drains or the minimum
// distance in the heap exceeds MaxDistance.
func (r *dijkstraRun) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u, d := item.id, item.dist

		// Stale lazy-decrease-key entry: already finalized, skip.
		if r.visited[u] {
			continue
		}
		// Everything still queued is at least this far away.
		if d > r.cfg.MaxDistance {
			break
		}

		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve distances to every out-neighbor of u.
// Assumes Dist[u] is final.
func (r *dijkstraRun) relax(u int) error {
	var (
		w, nd float64
		v     int
	)
	for _, v = range r.g.OutNeighbors(u) {
		w = r.weights.Weight(u, v)
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, w)
		}

		nd = r.res.Dist[u] + w
		if nd > r.cfg.MaxDistance {
			continue
		}

		switch {
		case nd < r.res.Dist[v]:
			// Strictly shorter: restart bookkeeping for v.
			r.res.Dist[v] = nd
			r.res.Counts[v] = r.res.Counts[u]
			r.res.Preds[v] = append(r.res.Preds[v][:0], u)
			heap.Push(&r.pq, nodeItem{id: v, dist: nd})
		case r.cfg.AllPaths && nd == r.res.Dist[v] && v != r.res.Source:
			// Tie: one more family of shortest paths arrives via u.
			r.res.Counts[v] += r.res.Counts[u]
			r.res.Preds[v] = append(r.res.Preds[v], u)
		}
	}

	return nil
}

// nodeItem pairs a vertex with the tentative distance it was pushed at.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist. Lazy decrease-key:
// improvements push duplicates, stale entries are skipped on pop.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
