package main

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/entrhq/tabforge/pkg/preview"
	"github.com/spf13/cobra"
)

type previewFlags struct {
	planFlags
	jsonOutput  bool
	interactive bool
	copy        bool
}

func newPreviewCmd() *cobra.Command {
	f := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview <bookmarks-file>",
		Short: "Show the windows and groups a bookmark file would open",
		Long: `Preview plans the windows, tabs and groups for a bookmark file without
opening anything. The file is a browser bookmark export (HTML) or a tabforge
JSON tree (.json).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], f)
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output the plan as JSON")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "Show the preview in a scrollable viewer")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Copy the preview to the clipboard")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, f *previewFlags) error {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	plans, err := buildPlan(path, cfg)
	if err != nil {
		return err
	}

	var out string
	if f.jsonOutput {
		var buf bytes.Buffer
		if err := preview.RenderJSON(&buf, plans); err != nil {
			return fmt.Errorf("failed to render plan: %w", err)
		}
		out = buf.String()
	} else {
		out = preview.Render(plans)
	}

	if f.copy {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("failed to copy preview: %w", err)
		}
	}

	if f.interactive {
		return preview.View(fmt.Sprintf("tabforge preview: %s (%d windows)", path, len(plans)), out)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
