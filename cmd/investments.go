package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

type investCmd struct {
	color string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "add a new investment, or list them" }
func (*investCmd) Usage() string {
	return `itk invest [-color <#rrggbb>] [<name>]

  Adds a new investment to track. Without a name, lists the investments.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.color, "color", "#8884d8", "Color of the investment in charts")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: a single investment name is expected, quote names with spaces")
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return failure(err)
	}
	defer a.Close()

	snap, err := a.load()
	if err != nil {
		return failure(err)
	}

	if f.NArg() == 0 {
		for _, inv := range snap.Investments {
			fmt.Printf("%s\t%s\n", inv.Name, inv.Color)
		}
		return subcommands.ExitSuccess
	}

	snap.Investments, err = tracker.AddInvestment(snap.Investments, tracker.Investment{Name: f.Arg(0), Color: c.color})
	if err != nil {
		return failure(err)
	}
	if err := a.save(snap); err != nil {
		return failure(err)
	}
	fmt.Printf("Successfully added investment %q\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type dropCmd struct{}

func (*dropCmd) Name() string     { return "drop" }
func (*dropCmd) Synopsis() string { return "delete an investment and all its data" }
func (*dropCmd) Usage() string {
	return `itk drop <name>

  Deletes an investment. Its value, shares, invested amount and price are
  removed from every record.
`
}

func (*dropCmd) SetFlags(f *flag.FlagSet) {}

func (*dropCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: an investment name is required")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	a, err := openApp()
	if err != nil {
		return failure(err)
	}
	defer a.Close()

	snap, err := a.load()
	if err != nil {
		return failure(err)
	}
	if err := requireInvestment(snap, name); err != nil {
		return failure(err)
	}

	if err := a.save(tracker.DeleteInvestment(snap, name)); err != nil {
		return failure(err)
	}
	fmt.Printf("Successfully deleted investment %q\n", name)
	return subcommands.ExitSuccess
}

// requireInvestment fails when name is not an investment of snap.
func requireInvestment(snap tracker.Snapshot, name string) error {
	if tracker.IndexInvestment(snap.Investments, name) < 0 {
		return fmt.Errorf("%w %q", tracker.ErrUnknownInvestment, name)
	}
	return nil
}

// usageError reports whether err is due to user input rather than to the store.
func usageError(err error) bool {
	return errors.Is(err, tracker.ErrMalformedRecord) ||
		errors.Is(err, tracker.ErrIncompleteObservation) ||
		errors.Is(err, tracker.ErrInvalidGranularity) ||
		errors.Is(err, tracker.ErrUnknownInvestment) ||
		errors.Is(err, tracker.ErrDuplicateInvestment)
}
