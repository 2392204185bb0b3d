package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/centra/core"
)

// Sentinel errors returned by builder constructors.
var (
	// ErrTooFewVertices indicates the graph order is below the minimum
	// the requested topology needs.
	ErrTooFewVertices = errors.New("builder: too few vertices for topology")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0, 1]")

	// ErrNilConstructor indicates a nil Constructor was passed to BuildGraph.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// defaultSeed keeps stochastic constructors reproducible unless the
// caller overrides it with WithSeed.
const defaultSeed int64 = 1

// Constructor applies one deterministic topology mutation using the
// resolved configuration. Constructors validate parameters early,
// return sentinel errors, and emit edges in a stable documented order.
type Constructor func(g *core.AdjacencyGraph, cfg builderConfig) error

// builderConfig is the immutable resolved configuration handed to
// every constructor.
type builderConfig struct {
	rng *rand.Rand
}

// Option configures the builder (currently: the rng seed).
type Option func(*builderConfig)

// WithSeed freezes the rng driving stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// BuildGraph creates a graph with n vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. The first constructor error aborts the build;
// no partial cleanup is attempted.
func BuildGraph(n int, gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.AdjacencyGraph, error) {
	g := core.NewGraph(n, gopts...)

	cfg := builderConfig{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range bopts {
		opt(&cfg)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
