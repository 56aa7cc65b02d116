package main

import (
	"fmt"

	"github.com/entrhq/tabforge/pkg/bookmarks"
	"github.com/entrhq/tabforge/pkg/config"
	"github.com/entrhq/tabforge/pkg/planner"
	"github.com/spf13/cobra"
)

// planFlags are the flags shared by preview and process.
type planFlags struct {
	configFile string
	omitRoot   bool
	titleTab   bool
	omitEmpty  bool
	include    []string
	exclude    []string
}

func (f *planFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configFile, "config", "c", "", "Path to configuration file (YAML)")
	flags.BoolVar(&f.omitRoot, "omit-root", false, "Open every top-level folder as its own window")
	flags.BoolVar(&f.titleTab, "title-tab", false, "Open a title page first in every window")
	flags.BoolVar(&f.omitEmpty, "omit-empty", false, "Skip windows without tabs")
	flags.StringArrayVar(&f.include, "include", nil, "Only open links whose URL matches this glob (repeatable)")
	flags.StringArrayVar(&f.exclude, "exclude", nil, "Skip links whose URL matches this glob (repeatable)")
}

// loadConfig reads the configuration file and applies the flags the user set.
func (f *planFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("omit-root") {
		cfg.Options.OmitRoot = f.omitRoot
	}
	if flags.Changed("title-tab") {
		cfg.Options.AddTitleTab = f.titleTab
	}
	if flags.Changed("omit-empty") {
		cfg.Options.OmitEmptyWindows = f.omitEmpty
	}
	if flags.Changed("include") {
		cfg.Filters.Include = f.include
	}
	if flags.Changed("exclude") {
		cfg.Filters.Exclude = f.exclude
	}

	return cfg, nil
}

// buildPlan parses the bookmark file, applies the URL filters and plans the
// windows.
func buildPlan(path string, cfg *config.Config) ([]planner.WindowPlan, error) {
	filter, err := cfg.Filter()
	if err != nil {
		return nil, err
	}

	root, err := bookmarks.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks: %w", err)
	}

	return planner.Plan(filter.Apply(root), cfg.Options), nil
}
