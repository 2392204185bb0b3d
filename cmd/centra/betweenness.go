package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/centra/centrality"
)

var betweennessCmd = &cobra.Command{
	Use:   "betweenness <edge-list>",
	Short: "Brandes betweenness centrality",
	Long: `Computes betweenness centrality for every vertex. Scores are
normalized by 1/((n-1)(n-2)) unless --raw is set; --sample K estimates
the result from K random sources and extrapolates by n/K.`,
	Args: cobra.ExactArgs(1),
	RunE: runBetweenness,
}

func init() {
	betweennessCmd.Flags().Bool("directed", false, "treat edges as directed")
	betweennessCmd.Flags().Bool("raw", false, "skip normalization (undirected scores are halved)")
	betweennessCmd.Flags().Bool("endpoints", false, "also credit path endpoints")
	betweennessCmd.Flags().Int("sample", 0, "sample this many sources (0 = all)")
	betweennessCmd.Flags().Int64("seed", 1, "rng seed for sampling")
	betweennessCmd.Flags().Int("workers", 1, "goroutines for the per-source phase")
	rootCmd.AddCommand(betweennessCmd)
}

func runBetweenness(cmd *cobra.Command, args []string) error {
	directed, _ := cmd.Flags().GetBool("directed")
	raw, _ := cmd.Flags().GetBool("raw")
	endpoints, _ := cmd.Flags().GetBool("endpoints")
	sample, _ := cmd.Flags().GetInt("sample")
	seed, _ := cmd.Flags().GetInt64("seed")
	workers, _ := cmd.Flags().GetInt("workers")

	el, err := loadEdgeList(args[0], directed)
	if err != nil {
		return err
	}

	opts := []centrality.Option{
		centrality.WithNormalize(!raw),
		centrality.WithSample(sample),
		centrality.WithSeed(seed),
		centrality.WithWorkers(workers),
	}
	if endpoints {
		opts = append(opts, centrality.WithEndpoints())
	}
	if el.weights != nil {
		opts = append(opts, centrality.WithWeights(el.weights))
	}

	bc, err := centrality.Betweenness(el.graph, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for v, score := range bc {
		fmt.Fprintf(out, "%d %g\n", v, score)
	}

	return nil
}
