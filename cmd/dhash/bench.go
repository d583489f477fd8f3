package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/theflywheel/dhash/internal/benchfmt"
)

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Benchmark history tools",
		Commands: []*cli.Command{
			{
				Name:      "compare",
				Usage:     "Compare two benchmark_history files",
				ArgsUsage: "<base.json> <current.json>",
				Flags: []cli.Flag{
					&cli.FloatFlag{
						Name:  "threshold",
						Value: benchfmt.DefaultThreshold,
						Usage: "Percentage change treated as significant",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Also write the comparison as JSON to this path",
					},
					&cli.BoolFlag{
						Name:  "fail-on-regression",
						Usage: "Return an error when any benchmark regressed",
					},
				},
				Action: compareAction,
			},
		},
	}
}

func compareAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("usage: dhash bench compare <base.json> <current.json>")
	}

	base, err := benchfmt.Load(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	current, err := benchfmt.Load(cmd.Args().Get(1))
	if err != nil {
		return err
	}

	report := benchfmt.Compare(base, current, cmd.Float("threshold"))
	printReport(cmd.Root().Writer, report)

	if path := cmd.String("output"); path != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("error creating comparison JSON: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("error writing comparison file: %w", err)
		}
	}

	if cmd.Bool("fail-on-regression") && report.Regressed > 0 {
		return fmt.Errorf("%d significant performance regressions detected", report.Regressed)
	}
	return nil
}

// printReport outputs a human-readable comparison report
func printReport(w io.Writer, r benchfmt.Report) {
	fmt.Fprintf(w, "Benchmark Comparison: %s vs %s\n\n", r.BaseCommit, r.CurrentCommit)
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "- Total benchmarks compared: %d\n", len(r.Comparisons))
	fmt.Fprintf(w, "- Improvements: %d\n", r.Improved)
	fmt.Fprintf(w, "- Regressions: %d\n", r.Regressed)

	if len(r.Comparisons) == 0 {
		fmt.Fprintln(w, "\nNo matching benchmarks found for comparison")
		return
	}

	fmt.Fprintln(w, "\nBenchmark Details (sorted by impact):")
	fmt.Fprintln(w, "======================================")

	for _, c := range r.Comparisons {
		fmt.Fprintf(w, "\n[%s] %s (%s):\n", c.Assessment, c.Name, c.Category)

		metrics := append([]benchfmt.MetricComparison(nil), c.Metrics...)
		sort.SliceStable(metrics, func(i, j int) bool {
			return math.Abs(metrics[i].PercentChange) > math.Abs(metrics[j].PercentChange)
		})

		for _, m := range metrics {
			if m.PercentChange == 0 {
				continue
			}
			indicator := " "
			if m.IsSignificant && m.IsRegression {
				indicator = "▼"
			} else if m.IsSignificant && m.IsImprovement {
				indicator = "▲"
			}
			fmt.Fprintf(w, "  %s %-24s: %+8.2f%% (%g → %g)\n",
				indicator, m.Name, m.PercentChange, m.BaseValue, m.CurrentValue)
		}
	}
}
