package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
	"github.com/google/subcommands"
)

// failure maps err to an exit status after printing it.
func failure(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if usageError(err) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

type addCmd struct {
	in tracker.ObservationInput
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record the value of an investment on a date" }
func (*addCmd) Usage() string {
	return `itk add -i <investment> -v <value> -s <shares> -p <price> [-d <date>]

  Records an investment value, number of shares and price per share on a date.
  The value is also the invested amount. If there is already a record on that
  date, only this investment is updated.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in.Date, "d", date.Today().String(), "Date of the observation (YYYY-MM-DD)")
	f.StringVar(&c.in.Investment, "i", "", "Investment name")
	f.StringVar(&c.in.Value, "v", "", "Investment value")
	f.StringVar(&c.in.Shares, "s", "", "Number of shares")
	f.StringVar(&c.in.PricePerShare, "p", "", "Price per share")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, obs, err := c.in.Parse()
	if err != nil {
		return failure(err)
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
	name := strings.TrimSpace(c.in.Investment)
	if err := requireInvestment(snap, name); err != nil {
		return failure(err)
	}
	if snap.Records, err = tracker.Upsert(snap.Records, on.String(), name, obs); err != nil {
		return failure(err)
	}
	if err := a.save(snap); err != nil {
		return failure(err)
	}
	fmt.Printf("Successfully recorded %s on %s\n", name, on)
	return subcommands.ExitSuccess
}

type rmCmd struct {
	date string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove the record of a date" }
func (*rmCmd) Usage() string {
	return `itk rm -d <date>

  Removes the record of that date, for all investments.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the record to remove (YYYY-MM-DD)")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -d is required")
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return failure(err)
	}
	defer a.Close()

	on, err := date.Parse(c.date)
	if err != nil {
		return failure(fmt.Errorf("%w: %w", tracker.ErrMalformedRecord, err))
	}

	snap, err := a.load()
	if err != nil {
		return failure(err)
	}
	n := len(snap.Records)
	snap.Records = tracker.Remove(snap.Records, on.String())
	if len(snap.Records) == n {
		a.log.Warn().Stringer("date", on).Msg("no record on that date")
		return subcommands.ExitSuccess
	}
	if err := a.save(snap); err != nil {
		return failure(err)
	}
	fmt.Printf("Successfully removed the record of %s\n", on)
	return subcommands.ExitSuccess
}

type editCmd struct {
	date string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace the record of a date" }
func (*editCmd) Usage() string {
	return `itk edit -d <date> <investment>=<value>:<shares>:<price>...

  Replaces the whole record of a date by the given observations. Investments
  not listed are removed from that record.

Usage Examples:
$ itk edit -d 2024-01-01 SP500=1000:10:100 "AI & Big Data=500:20:25"
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the record to edit")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" || f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: -d and at least one observation are required")
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

	rec := tracker.Record{Date: c.date, Observations: make(map[string]tracker.Observation)}
	for _, arg := range f.Args() {
		name, obs, err := parseAssignment(c.date, arg)
		if err != nil {
			return failure(err)
		}
		if err := requireInvestment(snap, name); err != nil {
			return failure(err)
		}
		rec.Observations[name] = obs
	}

	if snap.Records, err = tracker.Replace(snap.Records, rec); err != nil {
		return failure(err)
	}
	if err := a.save(snap); err != nil {
		return failure(err)
	}
	fmt.Printf("Successfully edited the record of %s\n", c.date)
	return subcommands.ExitSuccess
}

// parseAssignment parses "name=value:shares:price".
func parseAssignment(on, arg string) (string, tracker.Observation, error) {
	name, fields, ok := strings.Cut(arg, "=")
	if !ok {
		return "", tracker.Observation{}, fmt.Errorf("invalid observation %q, want <investment>=<value>:<shares>:<price>", arg)
	}
	parts := strings.Split(fields, ":")
	if len(parts) > 3 {
		return "", tracker.Observation{}, fmt.Errorf("invalid observation %q, want <investment>=<value>:<shares>:<price>", arg)
	}
	parts = append(parts, "", "", "")[:3] // missing parts are reported as incomplete
	in := tracker.ObservationInput{Date: on, Investment: name, Value: parts[0], Shares: parts[1], PricePerShare: parts[2]}
	_, obs, err := in.Parse()
	if err != nil {
		return "", tracker.Observation{}, fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(name), obs, nil
}
