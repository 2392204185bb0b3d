package centrality

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/centra/core"
	"github.com/katalvlaran/centra/shortest"
)

// Betweenness computes the betweenness centrality of every vertex of g
// and returns a dense vector indexed by vertex.
//
//	C_B(v) = Σ_{s ≠ v ≠ t} σ_st(v) / σ_st
//
// where σ_st is the number of shortest s→t paths and σ_st(v) the subset
// passing through v. Sources with zero out-degree contribute nothing
// and are skipped; unreachable pairs contribute nothing. The final
// vector is rescaled once according to Normalize, directedness and the
// sample size (see package doc).
//
// Errors: nil graph, invalid subset vertices, invalid sample size, bad
// option values, and any engine failure (e.g. shortest.ErrNegativeWeight
// for a matrix with negative entries — betweenness is defined over
// non-negative weights).
//
// Complexity: O(s·(V + E) log V) time for s sources, O(V + E) space.
func Betweenness(g core.Graph, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.Order()
	sources, err := chooseSources(n, cfg)
	if err != nil {
		return nil, err
	}

	bc := make([]float64, n)
	if cfg.Workers > 1 {
		err = accumulateParallel(bc, g, cfg, sources)
	} else {
		err = accumulateSequential(bc, g, cfg, sources)
	}
	if err != nil {
		return nil, err
	}

	rescale(bc, n, cfg.Normalize, g.Directed(), cfg.K)

	return bc, nil
}

// chooseSources resolves the subset/sampling options into the concrete
// list of source vertices for this run.
func chooseSources(n int, cfg Options) ([]int, error) {
	candidates := cfg.Subset
	if len(candidates) == 0 {
		candidates = make([]int, n)
		for v := range candidates {
			candidates[v] = v
		}
	} else {
		for _, v := range candidates {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: vertex %d, order %d", ErrVertexOutOfRange, v, n)
			}
		}
	}

	if cfg.K == 0 {
		return candidates, nil
	}
	if cfg.K > len(candidates) {
		return nil, fmt.Errorf("%w: k=%d exceeds %d candidate sources", ErrBadSampleSize, cfg.K, len(candidates))
	}

	// Uniform without replacement: shuffle a copy, take the prefix.
	rng := rand.New(rand.NewSource(cfg.Seed))
	sample := make([]int, len(candidates))
	copy(sample, candidates)
	rng.Shuffle(len(sample), func(i, j int) { sample[i], sample[j] = sample[j], sample[i] })

	return sample[:cfg.K], nil
}

// accumulateSequential runs one shortest-path pass per source and folds
// each result into bc immediately.
func accumulateSequential(bc []float64, g core.Graph, cfg Options, sources []int) error {
	for _, s := range sources {
		if g.OutDegree(s) == 0 {
			continue
		}
		res, err := shortest.Dijkstra(g, s, shortest.WithWeights(cfg.Weights), shortest.WithAllPaths())
		if err != nil {
			return err
		}
		accumulate(bc, res, cfg.Endpoints)
	}

	return nil
}

// accumulateParallel fans sources across cfg.Workers goroutines. Each
// worker owns a private partial vector; partials are summed under a
// mutex once the worker drains its share. Addition commutes, so the
// final sums match the sequential result up to floating-point
// association.
func accumulateParallel(bc []float64, g core.Graph, cfg Options, sources []int) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	next := make(chan int, len(sources))
	for _, s := range sources {
		next <- s
	}
	close(next)

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			partial := make([]float64, len(bc))
			for s := range next {
				if g.OutDegree(s) == 0 {
					continue
				}
				res, err := shortest.Dijkstra(g, s, shortest.WithWeights(cfg.Weights), shortest.WithAllPaths())
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()

					return
				}
				accumulate(partial, res, cfg.Endpoints)
			}
			mu.Lock()
			for v := range bc {
				bc[v] += partial[v]
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	return firstErr
}

// accumulate folds one single-source result into bc (Brandes' second
// phase). Result.Order is consumed in reverse so that a vertex's
// dependency is complete before it propagates to its predecessors.
// Every vertex in Order is reachable, hence Counts[w] ≥ 1 and the
// division is safe.
func accumulate(bc []float64, res *shortest.Result, endpoints bool) {
	delta := make([]float64, len(res.Dist))
	src := res.Source
	// Source never has parents; enforce before propagating.
	res.Preds[src] = res.Preds[src][:0]

	if endpoints && len(res.Order) > 0 {
		// Every reachable vertex's path ends at the source too.
		bc[src] += float64(len(res.Order) - 1)
	}

	var coeff float64
	for i := len(res.Order) - 1; i >= 0; i-- {
		w := res.Order[i]
		coeff = (1 + delta[w]) / res.Counts[w]
		for _, v := range res.Preds[w] {
			delta[v] += res.Counts[v] * coeff
		}
		if w == src {
			continue
		}
		if endpoints {
			bc[w] += delta[w] + 1
		} else {
			bc[w] += delta[w]
		}
	}
}

// rescale applies the single post-processing pass:
//
//   - Normalize and n > 2:     scale by 1/((n-1)(n-2)).
//   - Normalize and n ≤ 2:     nothing (avoids dividing by zero).
//   - raw scores, undirected:  halve (each path seen from both ends).
//   - raw scores, directed:    nothing.
//   - sampling (k > 0):        additionally multiply by n/k to
//     extrapolate the estimate to the full vertex set.
func rescale(bc []float64, n int, normalize, directed bool, k int) {
	scale := 1.0
	apply := false
	switch {
	case normalize && n > 2:
		scale = 1 / float64((n-1)*(n-2))
		apply = true
	case !normalize && !directed:
		scale = 0.5
		apply = true
	}
	if !apply {
		return
	}
	if k > 0 {
		scale *= float64(n) / float64(k)
	}
	for v := range bc {
		bc[v] *= scale
	}
}
