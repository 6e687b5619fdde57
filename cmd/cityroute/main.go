// Command cityroute is the file-driven front end of the shortest-path
// library: it loads a tab-delimited distance file, answers each query of
// a pair file, and writes route reports.
//
// Usage:
//
//	cityroute plan --cities ukcities.txt --pairs citypairs.txt --out output.txt
//
// A malformed distance file or a non-positive distance aborts the run;
// per-query failures (unknown place, unreachable destination) are written
// into the report and the remaining queries still run.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/routefile"
)

func main() {
	var (
		citiesPath string
		pairsPath  string
		outPath    string
	)

	rootCmd := &cobra.Command{
		Use:   "cityroute",
		Short: "Shortest routes between named places over a distance file",
	}

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Answer every query in the pair file against the distance file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, citiesPath, pairsPath, outPath)
		},
	}

	planCmd.Flags().StringVar(&citiesPath, "cities", "ukcities.txt", "Distance file (name TAB name TAB km)")
	planCmd.Flags().StringVar(&pairsPath, "pairs", "citypairs.txt", "Query file (source TAB destination)")
	planCmd.Flags().StringVar(&outPath, "out", "output.txt", "Report output file, or - for stdout")
	rootCmd.AddCommand(planCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runPlan(cmd *cobra.Command, citiesPath, pairsPath, outPath string) error {
	cities, err := os.Open(citiesPath)
	if err != nil {
		return fmt.Errorf("open distance file: %w", err)
	}
	defer cities.Close()

	graph, err := routefile.LoadGraph(cities)
	if err != nil {
		// Fatal: a broken distance file means no trustworthy graph.
		return fmt.Errorf("load %s: %w", citiesPath, err)
	}
	cmd.Printf("loaded %s: %d places, %d distances\n", citiesPath, graph.NodeCount(), graph.EdgeCount())

	pairs, err := os.Open(pairsPath)
	if err != nil {
		return fmt.Errorf("open query file: %w", err)
	}
	defer pairs.Close()

	queries, err := routefile.ReadQueries(pairs)
	if err != nil {
		return fmt.Errorf("load %s: %w", pairsPath, err)
	}

	var out io.Writer = os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	// One tree per distinct source answers any number of queries from it.
	trees := make(map[string]*dijkstra.Tree)
	for _, q := range queries {
		tree, ok := trees[q.Source]
		if !ok {
			tree, err = dijkstra.Dijkstra(graph, dijkstra.Source(q.Source))
			if err != nil {
				// Unknown source: report this query, keep going.
				if werr := routefile.WriteReportError(out, q.Source, q.Dest, err); werr != nil {
					return werr
				}
				continue
			}
			trees[q.Source] = tree
		}

		route, err := tree.PathTo(q.Dest)
		if err != nil {
			// Unknown or unreachable destination: same policy.
			if werr := routefile.WriteReportError(out, q.Source, q.Dest, err); werr != nil {
				return werr
			}
			continue
		}
		if err = routefile.WriteReport(out, route); err != nil {
			return err
		}
	}
	cmd.Printf("answered %d queries into %s\n", len(queries), outPath)

	return nil
}
