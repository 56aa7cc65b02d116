package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/entrhq/tabforge/pkg/config"
)

// ArtifactWriter handles writing run artifacts
type ArtifactWriter struct {
	outputDir string
	config    config.ArtifactConfig
}

// NewArtifactWriter creates a new artifact writer
func NewArtifactWriter(outputDir string, cfg config.ArtifactConfig) *ArtifactWriter {
	return &ArtifactWriter{
		outputDir: outputDir,
		config:    cfg,
	}
}

// WriteAll writes all configured artifact formats
func (w *ArtifactWriter) WriteAll(summary *RunSummary) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if w.config.JSON {
		if err := w.WriteRunJSON(summary); err != nil {
			return err
		}
	}

	if w.config.Markdown {
		if err := w.WriteSummaryMarkdown(summary); err != nil {
			return err
		}
	}

	return nil
}

// WriteRunJSON writes the full run summary as JSON
func (w *ArtifactWriter) WriteRunJSON(summary *RunSummary) error {
	path := filepath.Join(w.outputDir, "run.json")

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
		return fmt.Errorf("failed to write run JSON: %w", writeErr)
	}

	return nil
}

// WriteSummaryMarkdown writes a human-readable markdown summary
func (w *ArtifactWriter) WriteSummaryMarkdown(summary *RunSummary) error {
	path := filepath.Join(w.outputDir, "summary.md")

	var md strings.Builder

	md.WriteString("# tabforge Run Summary\n\n")
	md.WriteString(fmt.Sprintf("**Source:** %s\n\n", summary.Source))
	md.WriteString(fmt.Sprintf("**Host:** %s\n\n", summary.Host))
	md.WriteString(fmt.Sprintf("**Status:** %s\n\n", summary.Status))
	md.WriteString(fmt.Sprintf("**Started:** %s\n\n", summary.StartTime.Format(time.RFC3339)))
	md.WriteString(fmt.Sprintf("**Completed:** %s\n\n", summary.EndTime.Format(time.RFC3339)))
	md.WriteString(fmt.Sprintf("**Duration:** %s\n\n", summary.Duration))

	md.WriteString("## Result\n\n")
	if summary.Error != "" {
		md.WriteString(fmt.Sprintf("❌ **Error:** %s\n\n", summary.Error))
	} else {
		md.WriteString("✅ **Success**\n\n")
	}

	if len(summary.Windows) > 0 {
		md.WriteString("## Windows\n\n")
		md.WriteString("| # | Title | Tabs | Groups |\n")
		md.WriteString("|---|---|---|---|\n")
		for i, win := range summary.Windows {
			md.WriteString(fmt.Sprintf("| %d | %s | %d | %d |\n", i+1, win.Title, win.Tabs, win.Groups))
		}
		md.WriteString("\n")
	}

	md.WriteString("## Metrics\n\n")
	md.WriteString(fmt.Sprintf("- **Windows:** %d of %d planned\n", summary.Metrics.Windows, summary.Metrics.PlannedWindows))
	md.WriteString(fmt.Sprintf("- **Tabs Created:** %d\n", summary.Metrics.Tabs))
	md.WriteString(fmt.Sprintf("- **Groups:** %d\n", summary.Metrics.Groups))
	md.WriteString(fmt.Sprintf("- **Anchor Reuses:** %d\n", summary.Metrics.AnchorReuses))

	if writeErr := os.WriteFile(path, []byte(md.String()), 0600); writeErr != nil {
		return fmt.Errorf("failed to write summary markdown: %w", writeErr)
	}

	return nil
}
