// Command centra runs the library's analytics over edge-list files:
// single-source distances, betweenness centrality, and deterministic
// fixture generation.
//
// Edge-list format: one edge per line as "u v" or "u v w" with int
// vertex indices and an optional float weight; '#' starts a comment.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "centra",
	Short: "Shortest paths and betweenness centrality over edge lists",
	Long: `Centra computes single-source shortest paths (Dijkstra or SPFA) and
Brandes betweenness centrality on weighted, directed or undirected
graphs read from plain edge-list files.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
