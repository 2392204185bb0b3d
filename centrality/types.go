// Package centrality: options and error definitions for betweenness.
package centrality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/centra/core"
)

// Sentinel errors for centrality computation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrVertexOutOfRange is returned when a subset vertex is not a
	// valid index of the graph.
	ErrVertexOutOfRange = errors.New("centrality: subset vertex out of range")

	// ErrBadSampleSize is returned when the sample size is negative or
	// exceeds the number of candidate sources.
	ErrBadSampleSize = errors.New("centrality: invalid sample size")

	// ErrBadWorkers is returned when the worker count is not positive.
	ErrBadWorkers = errors.New("centrality: worker count must be positive")
)

// defaultSeed makes sampling reproducible out of the box; override with
// WithSeed when independent estimates are wanted.
const defaultSeed int64 = 1

// Option configures Betweenness via functional arguments. An invalid
// Option is recorded internally and surfaced when Betweenness runs.
type Option func(*Options)

// Options holds the parameters of one betweenness computation.
type Options struct {
	// Weights supplies edge weights. Defaults to core.UnitWeights.
	Weights core.DistanceMatrix

	// Normalize scales the final vector by 1/((n-1)(n-2)) when n > 2.
	// Default true. When false, undirected scores are halved instead.
	Normalize bool

	// Endpoints also counts path endpoints: each reached vertex scores
	// one extra per source and the source scores the number of vertices
	// it reaches.
	Endpoints bool

	// Subset restricts the accumulated sources. Empty means all vertices.
	Subset []int

	// K > 0 samples K sources uniformly without replacement from the
	// subset (or all vertices); rescaling extrapolates by n/K.
	K int

	// Seed drives the sampling rng.
	Seed int64

	// Workers fans the per-source runs across this many goroutines.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with unit weights, normalization on,
// endpoints off, all sources, no sampling, and a single worker.
func DefaultOptions() Options {
	return Options{
		Weights:   core.UnitWeights{},
		Normalize: true,
		Seed:      defaultSeed,
		Workers:   1,
	}
}

// WithWeights supplies an explicit distance matrix. A nil matrix keeps
// the unit-weight default.
func WithWeights(m core.DistanceMatrix) Option {
	return func(o *Options) {
		if m != nil {
			o.Weights = m
		}
	}
}

// WithNormalize toggles the 1/((n-1)(n-2)) normalization (default on).
func WithNormalize(normalize bool) Option {
	return func(o *Options) { o.Normalize = normalize }
}

// WithEndpoints enables endpoint counting.
func WithEndpoints() Option {
	return func(o *Options) { o.Endpoints = true }
}

// WithVertexSubset restricts accumulation to the given source vertices.
// The slice is not copied; callers must not mutate it during the run.
func WithVertexSubset(vs []int) Option {
	return func(o *Options) { o.Subset = vs }
}

// WithSample draws k sources uniformly at random without replacement.
//
//	k > 0:  sample k sources
//	k == 0: explicit "use every source"
//	k < 0:  invalid option → ErrBadSampleSize
func WithSample(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: k=%d", ErrBadSampleSize, k)
			return
		}
		o.K = k
	}
}

// WithSeed fixes the sampling rng seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers runs the per-source shortest-path phase on w goroutines.
//
//	w ≥ 1: use w workers
//	w < 1: invalid option → ErrBadWorkers
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, w)
			return
		}
		o.Workers = w
	}
}
