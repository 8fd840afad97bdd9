package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/sgc/portfolio/renderer"
)

// snapshotCmd displays the snapshot table.
type snapshotCmd struct{}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "display the holdings with their weights and trailing returns" }
func (*snapshotCmd) Usage() string {
	return `sgc [-today <date>] [-lookbacks <windows>] snapshot

  Displays every holding with a positive net quantity: latest price, market
  value, weight and trailing returns. See the holdings and returns topics.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {}

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dash, err := NewDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	snap, err := dash.Snapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderHoldings(renderer.NewHoldings(snap, dash.Currency), renderer.RenderOptions{}))
	return subcommands.ExitSuccess
}

// overviewCmd displays the latest value of each holding.
type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the latest value of each holding" }
func (*overviewCmd) Usage() string {
	return `sgc overview

  Displays the quantity, real-time price and value of each holding, and the
  total value of the portfolio.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {}

func (c *overviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dash, err := NewDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	o, err := dash.Overview(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing overview: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderOverview(renderer.NewOverview(o, dash.Currency), renderer.RenderOptions{}))
	return subcommands.ExitSuccess
}

// performanceCmd displays the value series and the benchmark comparison.
type performanceCmd struct {
	chart string
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display the portfolio value since inception against the benchmark" }
func (*performanceCmd) Usage() string {
	return `sgc [-benchmark <symbol>] performance [-chart <file>]

  Displays the daily value of the portfolio since the first transaction and
  compares it with the benchmark. See the performance topic.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.chart, "chart", "", "Also draw the chart into this file, PNG or SVG depending on the extension")
}

func (c *performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dash, err := NewDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := dash.Performance(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing performance: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPerformance(renderer.NewPerformance(p, dash.Currency), renderer.RenderOptions{}))

	if c.chart == "" {
		return subcommands.ExitSuccess
	}
	format := renderer.PNG
	if strings.EqualFold(filepath.Ext(c.chart), ".svg") {
		format = renderer.SVG
	}
	out, err := os.Create(c.chart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating chart file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if p.HasBenchmark() {
		err = renderer.ComparisonChart(out, p.Comparison, format)
	} else {
		err = renderer.ValueChart(out, p.Value, format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error drawing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Chart written to %s\n", c.chart)
	return subcommands.ExitSuccess
}
