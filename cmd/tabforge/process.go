package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/entrhq/tabforge/pkg/config"
	"github.com/entrhq/tabforge/pkg/executor"
	"github.com/entrhq/tabforge/pkg/host/browser"
	"github.com/entrhq/tabforge/pkg/host/memory"
	"github.com/entrhq/tabforge/pkg/logging"
	"github.com/entrhq/tabforge/pkg/report"
	"github.com/spf13/cobra"
)

type processFlags struct {
	planFlags
	dryRun    bool
	headless  bool
	channel   string
	verbosity string
	artifacts string
}

func newProcessCmd() *cobra.Command {
	f := &processFlags{}

	cmd := &cobra.Command{
		Use:   "process <bookmarks-file>",
		Short: "Open the windows, tabs and groups of a bookmark file",
		Long: `Process plans the windows for a bookmark file and opens them in a Chromium
browser driven by playwright. With --dry-run the plan is replayed against an
in-memory host instead and nothing is opened.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args[0], f)
		},
	}

	f.register(cmd)
	flags := cmd.Flags()
	flags.BoolVar(&f.dryRun, "dry-run", false, "Replay the plan in memory without opening a browser")
	flags.BoolVar(&f.headless, "headless", false, "Run the browser without a visible window")
	flags.StringVar(&f.channel, "channel", "", "Browser channel to launch, e.g. chrome or msedge")
	flags.StringVarP(&f.verbosity, "verbosity", "v", "", "Console verbosity: quiet, normal, verbose or debug")
	flags.StringVar(&f.artifacts, "artifacts", "", "Write run.json and summary.md to this directory")

	return cmd
}

func (f *processFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := f.planFlags.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("headless") {
		cfg.Browser.Headless = f.headless
	}
	if flags.Changed("channel") {
		cfg.Browser.Channel = f.channel
	}
	if flags.Changed("verbosity") {
		cfg.Logging.Verbosity = f.verbosity
	}
	if flags.Changed("artifacts") {
		cfg.Artifacts.Enabled = true
		cfg.Artifacts.OutputDir = f.artifacts
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// processHost is the capability a run replays against, plus its lifecycle.
type processHost interface {
	executor.WindowingCapability
	Start(ctx context.Context) error
	Close() error
}

// dryRunHost adapts the memory host to processHost.
type dryRunHost struct {
	*memory.Host
}

func (dryRunHost) Start(context.Context) error { return nil }
func (dryRunHost) Close() error                { return nil }

func runProcess(cmd *cobra.Command, path string, f *processFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return err
	}

	console := report.NewLogger(cmd.OutOrStdout(), report.ParseLogLevel(cfg.Logging.Verbosity))
	debugLog, logErr := logging.NewLogger("process")
	if logErr != nil {
		console.Warningf("file logging unavailable: %v", logErr)
	}
	defer debugLog.Close()

	console.Header("tabforge")
	console.Section("Plan")
	console.Step("Planning " + path)
	plans, err := buildPlan(path, cfg)
	if err != nil {
		return err
	}
	debugLog.Infof("planned %d windows from %s (options %+v)", len(plans), path, cfg.Options)
	console.Infof("%d windows planned", len(plans))

	hostName := "browser"
	var host processHost
	if f.dryRun {
		hostName = "memory"
		host = dryRunHost{memory.New()}
	} else {
		host = browser.New(cfg.Browser, browser.WithLogger(debugLog))
	}

	console.Section("Replay")
	console.Step("Starting " + hostName + " host")
	if err := host.Start(ctx); err != nil {
		return fmt.Errorf("failed to start %s host: %w", hostName, err)
	}
	defer func() {
		if closeErr := host.Close(); closeErr != nil {
			debugLog.Warnf("failed to close %s host: %v", hostName, closeErr)
			console.Warningf("failed to close %s host: %v", hostName, closeErr)
		}
	}()

	console.Step("Opening windows")
	ex := executor.NewExecutor(host,
		executor.WithLogger(debugLog),
		executor.WithWindowHook(console.Window),
	)
	summary := report.NewRunSummary(path, hostName, len(plans))
	runErr := ex.Execute(ctx, plans)
	stats := ex.Stats()
	summary.Finish(stats, runErr)

	if dry, ok := host.(dryRunHost); ok && console.Level() >= report.LogLevelDebug {
		for _, call := range dry.Calls() {
			console.Debugf("%s window=%s url=%q tabs=%v group=%s", call.Op, call.Window, call.URL, call.Tabs, call.Group)
		}
	}

	if runErr != nil {
		console.Errorf("run stopped after %d of %d windows", stats.Windows, len(plans))
	} else {
		console.Successf("opened %d windows with %d tabs", stats.Windows, stats.Tabs)
	}

	console.Summary(summary)
	if logPath := debugLog.LogPath(); logPath != "" {
		console.Verbosef("debug log written to %s", logPath)
	}

	if cfg.Artifacts.Enabled {
		dir := cfg.Artifacts.OutputDir
		if err := report.NewArtifactWriter(dir, cfg.Artifacts).WriteAll(summary); err != nil {
			console.Warningf("failed to write artifacts: %v", err)
		} else {
			console.Verbosef("artifacts written to %s", filepath.Clean(dir))
		}
	}

	if runErr != nil {
		return runErr
	}

	if !f.dryRun && !cfg.Browser.Headless && cfg.Browser.KeepOpen {
		console.Newline()
		console.Infof("Browser is open. Press Ctrl-C to close it.")
		<-ctx.Done()
	}
	return nil
}
