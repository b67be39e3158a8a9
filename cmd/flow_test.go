package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useStore points the global flags to a fresh jsonl store and returns its folder.
func useStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldPath, oldKind, oldPlain := *storePath, *storeKind, *plain
	*storePath, *storeKind, *plain = dir, tracker.StoreJSONL, true
	t.Cleanup(func() { *storePath, *storeKind, *plain = oldPath, oldKind, oldPlain })
	for _, env := range []string{"ITK_STORE", "ITK_STORE_KIND", "ITK_CURRENCY", "ITK_LOG_LEVEL"} {
		t.Setenv(env, "")
	}
	return dir
}

// run parses args like the commander does and executes c.
func run(c subcommands.Command, args ...string) subcommands.ExitStatus {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return c.Execute(context.Background(), f)
}

func load(t *testing.T, dir string) tracker.Snapshot {
	t.Helper()
	s, err := tracker.OpenStore(tracker.StoreJSONL, dir, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()
	snap, err := s.Load()
	require.NoError(t, err)
	return snap
}

func TestCommands(t *testing.T) {
	dir := useStore(t)

	legacy := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(legacy, []byte(`{
		"investments": [{"name": "X", "color": "#000"}],
		"investmentData": [{"date": "2024-03-01", "X": 10, "X_shares": 1, "X_invested": 10, "X_price_per_share": 10}]
	}`), 0o644))

	price := func(t *testing.T, snap tracker.Snapshot, name string) float64 {
		t.Helper()
		require.Len(t, snap.Records, 1)
		o, ok := snap.Records[0].Get(name)
		require.True(t, ok)
		p, ok := o.Price()
		require.True(t, ok)
		return p
	}

	steps := []struct {
		name  string
		cmd   subcommands.Command
		args  []string
		want  subcommands.ExitStatus
		check func(t *testing.T, snap tracker.Snapshot)
	}{
		{"invest", &investCmd{}, []string{"A"}, subcommands.ExitSuccess, func(t *testing.T, snap tracker.Snapshot) {
			assert.Len(t, snap.Investments, 4, "defaults and A")
		}},
		{"invest duplicate", &investCmd{}, []string{"A"}, subcommands.ExitUsageError, nil},
		{"add", &addCmd{}, []string{"-d", "2024-1-9", "-i", "A", "-v", "1000", "-s", "10", "-p", "100"}, subcommands.ExitSuccess, func(t *testing.T, snap tracker.Snapshot) {
			assert.Equal(t, "2024-01-09", snap.Records[0].Date)
			assert.Equal(t, 100.0, price(t, snap, "A"))
		}},
		{"add unknown investment", &addCmd{}, []string{"-i", "Z", "-v", "1", "-s", "1", "-p", "1"}, subcommands.ExitUsageError, nil},
		{"add incomplete", &addCmd{}, []string{"-i", "A", "-v", "1"}, subcommands.ExitUsageError, nil},
		{"edit", &editCmd{}, []string{"-d", "2024-01-09", "A=1200:10:120"}, subcommands.ExitSuccess, func(t *testing.T, snap tracker.Snapshot) {
			assert.Equal(t, 120.0, price(t, snap, "A"))
		}},
		{"edit missing record", &editCmd{}, []string{"-d", "2024-01-10", "A=1:1:1"}, subcommands.ExitFailure, nil},
		{"records", &recordsCmd{}, nil, subcommands.ExitSuccess, nil},
		{"totals", &totalsCmd{}, nil, subcommands.ExitSuccess, nil},
		{"chart", &chartCmd{}, []string{"-g", "week", "-i", "A"}, subcommands.ExitSuccess, nil},
		{"chart default granularity", &chartCmd{}, nil, subcommands.ExitSuccess, nil},
		{"chart bad granularity", &chartCmd{}, []string{"-g", "quarter"}, subcommands.ExitUsageError, nil},
		{"chart unknown investment", &chartCmd{}, []string{"-i", "Z"}, subcommands.ExitUsageError, nil},
		{"drop unknown", &dropCmd{}, []string{"Z"}, subcommands.ExitUsageError, nil},
		{"drop", &dropCmd{}, []string{"SP500"}, subcommands.ExitSuccess, func(t *testing.T, snap tracker.Snapshot) {
			assert.Equal(t, -1, tracker.IndexInvestment(snap.Investments, "SP500"))
			assert.Len(t, snap.Records, 1)
		}},
		{"rm loose date", &rmCmd{}, []string{"-d", "2024-1-9"}, subcommands.ExitSuccess, func(t *testing.T, snap tracker.Snapshot) {
			assert.Empty(t, snap.Records)
		}},
		{"rm bad date", &rmCmd{}, []string{"-d", "someday"}, subcommands.ExitUsageError, nil},
		{"import", &importCmd{}, []string{legacy}, subcommands.ExitSuccess, func(t *testing.T, snap tracker.Snapshot) {
			assert.Equal(t, []tracker.Investment{{Name: "X", Color: "#000"}}, snap.Investments)
			assert.Equal(t, 10.0, price(t, snap, "X"))
		}},
		{"import missing file", &importCmd{}, []string{filepath.Join(dir, "nope.json")}, subcommands.ExitFailure, nil},
		{"topic", &topicCmd{}, []string{"totals"}, subcommands.ExitSuccess, nil},
	}
	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			assert.Equal(t, s.want, run(s.cmd, s.args...))
			if s.check != nil {
				s.check(t, load(t, dir))
			}
		})
	}
}
