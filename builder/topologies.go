package builder

import (
	"fmt"

	"github.com/katalvlaran/centra/core"
)

// Minimum orders per topology.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns a Constructor building the simple path 0-1-…-(n-1).
// Edges are emitted in ascending tail order.
func Path() Constructor {
	return func(g *core.AdjacencyGraph, _ builderConfig) error {
		n := g.Order()
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		for u := 0; u < n-1; u++ {
			if err := g.AddEdge(u, u+1); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor building the simple cycle
// 0-1-…-(n-1)-0.
func Cycle() Constructor {
	return func(g *core.AdjacencyGraph, _ builderConfig) error {
		n := g.Order()
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		for u := 0; u < n; u++ {
			if err := g.AddEdge(u, (u+1)%n); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Star returns a Constructor building a star with the hub at vertex 0
// and spokes to every other vertex, in ascending leaf order.
func Star() Constructor {
	return func(g *core.AdjacencyGraph, _ builderConfig) error {
		n := g.Order()
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := g.AddEdge(0, leaf); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor connecting every unordered vertex
// pair (both directions on directed graphs).
func Complete() Constructor {
	return func(g *core.AdjacencyGraph, _ builderConfig) error {
		n := g.Order()
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		directed := g.Directed()
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
				if directed {
					if err := g.AddEdge(v, u); err != nil {
						return fmt.Errorf("Complete: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor inserting each unordered pair
// independently with probability p, using the seeded rng so the same
// seed reproduces the same topology. Directed graphs draw each ordered
// pair independently.
func RandomSparse(p float64) Constructor {
	return func(g *core.AdjacencyGraph, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		n := g.Order()
		directed := g.Directed()
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if cfg.rng.Float64() < p {
					if err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("RandomSparse: %w", err)
					}
				}
				if directed && cfg.rng.Float64() < p {
					if err := g.AddEdge(v, u); err != nil {
						return fmt.Errorf("RandomSparse: %w", err)
					}
				}
			}
		}

		return nil
	}
}
