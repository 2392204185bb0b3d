package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/centra/shortest"
)

var distancesCmd = &cobra.Command{
	Use:   "distances <edge-list>",
	Short: "Single-source shortest-path distances",
	Long: `Computes distances from --source to every vertex with Dijkstra, or
with SPFA when --spfa is set (required for negative weights; detects
negative cycles). Unreachable vertices print "inf".`,
	Args: cobra.ExactArgs(1),
	RunE: runDistances,
}

func init() {
	distancesCmd.Flags().IntP("source", "s", 0, "source vertex index")
	distancesCmd.Flags().Bool("spfa", false, "use the SPFA engine (supports negative weights)")
	distancesCmd.Flags().Bool("directed", false, "treat edges as directed")
	distancesCmd.Flags().Float64("max-distance", math.Inf(1), "exploration bound; farther vertices stay unreached")
	rootCmd.AddCommand(distancesCmd)
}

func runDistances(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetInt("source")
	useSPFA, _ := cmd.Flags().GetBool("spfa")
	directed, _ := cmd.Flags().GetBool("directed")
	maxDist, _ := cmd.Flags().GetFloat64("max-distance")

	el, err := loadEdgeList(args[0], directed)
	if err != nil {
		return err
	}

	opts := []shortest.Option{shortest.WithMaxDistance(maxDist)}
	if el.weights != nil {
		opts = append(opts, shortest.WithWeights(el.weights))
	}

	var res *shortest.Result
	if useSPFA {
		res, err = shortest.SPFA(el.graph, source, opts...)
	} else {
		res, err = shortest.Dijkstra(el.graph, source, opts...)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for v, d := range res.Dist {
		if math.IsInf(d, 1) {
			fmt.Fprintf(out, "%d inf\n", v)
			continue
		}
		fmt.Fprintf(out, "%d %g\n", v, d)
	}

	return nil
}
