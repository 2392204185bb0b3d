// Package shortest: shared result type, options and error definitions
// for the Dijkstra and SPFA engines.
package shortest

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/centra/core"
)

// Sentinel errors for shortest-path execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrSourceOutOfRange is returned when the source index is not a
	// valid vertex of the graph.
	ErrSourceOutOfRange = errors.New("shortest: source vertex out of range")

	// ErrNegativeWeight is returned by Dijkstra when a negative edge
	// weight is encountered; use SPFA for such graphs.
	ErrNegativeWeight = errors.New("shortest: negative edge weight encountered")

	// ErrNegativeCycle is returned by SPFA when a negative-weight cycle
	// reachable from the source is detected. No partial result is returned.
	ErrNegativeCycle = errors.New("shortest: negative-weight cycle reachable from source")

	// ErrBadMaxDistance is returned when WithMaxDistance is given a
	// negative or NaN bound.
	ErrBadMaxDistance = errors.New("shortest: MaxDistance must be non-negative")
)

// Option configures an engine run via functional arguments. An invalid
// Option is recorded internally and surfaced as an error when the
// engine is invoked.
type Option func(*Options)

// Options holds parameters shared by both engines.
type Options struct {
	// Weights supplies edge weights. Defaults to core.UnitWeights
	// (every edge weighs 1, i.e. unweighted mode).
	Weights core.DistanceMatrix

	// AllPaths enables set-valued predecessor tracking in Dijkstra:
	// on a distance tie the relaxing vertex is appended to the
	// predecessor set and path counts are accumulated. SPFA ignores
	// this flag and always keeps single-parent semantics.
	AllPaths bool

	// MaxDistance bounds exploration: a vertex whose tentative distance
	// would exceed the bound is not finalized/enqueued and keeps its
	// last recorded (possibly infinite) distance. Default +Inf.
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with unit weights, single-parent
// bookkeeping and no distance bound.
func DefaultOptions() Options {
	return Options{
		Weights:     core.UnitWeights{},
		MaxDistance: math.Inf(1),
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

// WithAllPaths enables all-predecessor tie tracking and exhaustive
// shortest-path counting (Dijkstra only).
func WithAllPaths() Option {
	return func(o *Options) { o.AllPaths = true }
}

// WithMaxDistance bounds exploration to distances ≤ max.
//
//	max ≥ 0:        limit exploration radius
//	max < 0 or NaN: invalid option → ErrBadMaxDistance
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result is the product of one single-source run. All slices are
// indexed by vertex; the caller owns the Result outright.
type Result struct {
	// Source is the vertex the run started from.
	Source int

	// Dist[v] is the shortest distance from Source to v, or +Inf when
	// v is unreachable.
	Dist []float64

	// Preds[v] lists the predecessors of v on shortest paths: every u
	// with an edge u→v lying on some shortest path to v under AllPaths,
	// or at most the single current parent otherwise. Preds[Source] is
	// always empty; unreachable vertices have nil entries.
	Preds [][]int

	// Counts[v] is the number of distinct shortest paths from Source
	// to v (Counts[Source] == 1, unreachable ⇒ 0). Stored as float64,
	// exact for counts below 2^53.
	Counts []float64

	// Order lists reachable vertices in the order they were finalized,
	// i.e. by non-decreasing distance from Source. Unreachable vertices
	// are excluded. Dependency accumulation consumes Order reversed.
	Order []int
}

// PathTo reconstructs one shortest path Source→…→dest by walking the
// predecessor links. Returns an error if dest is out of range or was
// not reached.
// Complexity: O(path length).
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: vertex %d", ErrSourceOutOfRange, dest)
	}
	if math.IsInf(r.Dist[dest], 1) {
		return nil, fmt.Errorf("shortest: no path to vertex %d", dest)
	}
	// build reversed path
	path := []int{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Preds[cur][0]
		path = append(path, cur)
	}
	// reverse to get Source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// validate applies opts on top of DefaultOptions and runs the shared
// input checks. Returns the resolved Options.
func validate(g core.Graph, source int, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if g == nil {
		return cfg, ErrGraphNil
	}
	if source < 0 || source >= g.Order() {
		return cfg, fmt.Errorf("%w: source %d, order %d", ErrSourceOutOfRange, source, g.Order())
	}

	return cfg, nil
}
