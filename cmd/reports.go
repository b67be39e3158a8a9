package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

type recordsCmd struct{}

func (*recordsCmd) Name() string     { return "records" }
func (*recordsCmd) Synopsis() string { return "list all records" }
func (*recordsCmd) Usage() string {
	return `itk records

  Lists every record with, for each investment, value (shares @ price).
`
}

func (*recordsCmd) SetFlags(f *flag.FlagSet) {}

func (*recordsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return failure(err)
	}
	defer a.Close()

	snap, err := a.load()
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.RecordsMarkdown(snap.Records, snap.Investments, a.cfg.Currency))
	return subcommands.ExitSuccess
}

type totalsCmd struct{}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display totals per investment and grand total" }
func (*totalsCmd) Usage() string {
	return `itk totals

  Displays total shares, current value, total invested and profit/loss for
  each investment, valued at the latest price. See 'itk topic totals'.
`
}

func (*totalsCmd) SetFlags(f *flag.FlagSet) {}

func (*totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return failure(err)
	}
	defer a.Close()

	snap, err := a.load()
	if err != nil {
		return failure(err)
	}
	summary, err := tracker.ComputeTotals(snap.Records, snap.Investments)
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.TotalsMarkdown(summary, snap.Investments, a.cfg.Currency))
	return subcommands.ExitSuccess
}

type chartCmd struct {
	granularity date.Granularity
	investment  string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display price per share over time" }
func (*chartCmd) Usage() string {
	return `itk chart [-g day|week|month|year] [-i <investment>]

  Displays the price per share of each investment, grouped by day, week,
  month or year. The latest price of each period is shown.
  See 'itk topic granularity'.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.granularity, "g", "Granularity: day, week, month or year (defaults to the configuration)")
	f.StringVar(&c.investment, "i", "", "Show only this investment")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return failure(err)
	}
	defer a.Close()

	g := c.granularity
	if !isFlagSet(f, "g") {
		if g, err = date.ParseGranularity(a.cfg.Granularity); err != nil {
			return failure(err)
		}
	}

	snap, err := a.load()
	if err != nil {
		return failure(err)
	}
	investments := snap.Investments
	if c.investment != "" {
		i := tracker.IndexInvestment(investments, c.investment)
		if i < 0 {
			return failure(fmt.Errorf("%w %q", tracker.ErrUnknownInvestment, c.investment))
		}
		investments = investments[i : i+1]
	}

	points, err := tracker.Aggregate(snap.Records, investments, g)
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.SeriesMarkdown(points, investments, g, a.cfg.Currency))
	return subcommands.ExitSuccess
}

type importCmd struct {
	paths tracker.LegacyPaths
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import an export of the browser tracker" }
func (*importCmd) Usage() string {
	return `itk import [-investments <jsonpath>] [-records <jsonpath>] <file>

  Imports investments and records from a JSON export of the browser tracker.
  The imported data replaces the current data. See 'itk topic import'.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.paths.Investments, "investments", tracker.DefaultLegacyPaths.Investments, "JSONPath of the investments collection")
	f.StringVar(&c.paths.Records, "records", tracker.DefaultLegacyPaths.Records, "JSONPath of the records collection")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a file to import is required")
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return failure(err)
	}
	defer a.Close()

	r, err := os.Open(f.Arg(0))
	if err != nil {
		return failure(err)
	}
	defer r.Close()

	snap, err := tracker.ImportLegacy(r, c.paths, a.log)
	if err != nil {
		return failure(err)
	}
	if err := a.save(snap); err != nil {
		return failure(err)
	}
	fmt.Printf("Successfully imported %d investments and %d records\n", len(snap.Investments), len(snap.Records))
	return subcommands.ExitSuccess
}

// isFlagSet reports whether the flag name was given on the command line.
func isFlagSet(f *flag.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) { set = set || fl.Name == name })
	return set
}
