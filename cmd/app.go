// Package cmd implements the CLI application to track investments.
package cmd

import (
	"flag"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", ".itk.yaml", "Path to the optional YAML configuration file")
	storePath  = flag.String("store", "", "Path to the data store, a folder for jsonl or a file for sqlite (overrides the configuration)")
	storeKind  = flag.String("store-kind", "", "Kind of data store: jsonl or sqlite (overrides the configuration)")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	groups := Commands()
	for _, group := range slices.Sorted(maps.Keys(groups)) {
		for _, cmd := range groups[group] {
			c.Register(cmd, group)
		}
	}
}

// Commands returns the application commands by group.
func Commands() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"investments": {&investCmd{}, &dropCmd{}},
		"records":     {&addCmd{}, &rmCmd{}, &editCmd{}, &importCmd{}},
		"reports":     {&recordsCmd{}, &totalsCmd{}, &chartCmd{}},
		"help":        {&topicCmd{}},
	}
}

// app bundles what a command needs to run.
type app struct {
	cfg   *Config
	log   zerolog.Logger
	store tracker.Store
}

// openApp loads the configuration, sets up logging and opens the store.
func openApp() (*app, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("kind", cfg.Store.Kind).Str("path", cfg.Store.Path).Msg("opening store")

	store, err := tracker.OpenStore(cfg.Store.Kind, cfg.Store.Path, log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, store: store}, nil
}

// Close closes the store.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Error().Err(err).Msg("closing store")
	}
}

// load reads the snapshot. A store that has never been written starts with
// the default investments.
func (a *app) load() (tracker.Snapshot, error) {
	snap, err := a.store.Load()
	if err != nil {
		return tracker.Snapshot{}, fmt.Errorf("could not load data: %w", err)
	}
	if snap.Investments == nil && snap.Records == nil {
		a.log.Info().Msg("empty store, starting with the default investments")
		snap.Investments = tracker.DefaultInvestments()
	}
	return snap, nil
}

// save writes the snapshot.
func (a *app) save(snap tracker.Snapshot) error {
	if err := a.store.Save(snap); err != nil {
		return fmt.Errorf("could not save data: %w", err)
	}
	return nil
}
