// Package centrality_test provides runnable examples for betweenness.
package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/centra/builder"
	"github.com/katalvlaran/centra/centrality"
)

// ExampleBetweenness scores the hub of a star: every leaf-to-leaf
// shortest path crosses it.
func ExampleBetweenness() {
	g, err := builder.BuildGraph(5, nil, nil, builder.Star())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	bc, err := centrality.Betweenness(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("hub=%.2f leaf=%.2f\n", bc[0], bc[1])
	// Output: hub=1.00 leaf=0.00
}

// ExampleBetweenness_raw shows unnormalized scores on a path; the
// undirected halving leaves the count of transit pair families.
func ExampleBetweenness_raw() {
	g, err := builder.BuildGraph(4, nil, nil, builder.Path())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	bc, err := centrality.Betweenness(g, centrality.WithNormalize(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.0f\n", bc)
	// Output: [0 2 2 0]
}
