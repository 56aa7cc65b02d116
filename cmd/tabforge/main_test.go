package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/entrhq/tabforge/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3>Bookmarks</H3>
    <DL><p>
        <DT><A HREF="https://home.example">Home</A>
        <DT><H3>Tools[red][collapsed]</H3>
        <DL><p>
            <DT><A HREF="https://x.example">X</A>
            <DT><A HREF="https://y.example">Y</A>
        </DL><p>
        <DT><H3>Work</H3>
        <DL><p>
            <DT><H3>Docs</H3>
            <DL><p>
                <DT><A HREF="https://docs.example">Docs</A>
            </DL><p>
            <DT><A HREF="http://localhost:8080/board">Board</A>
        </DL><p>
    </DL><p>
</DL><p>
`

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.html")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0600))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPreviewCommand(t *testing.T) {
	path := writeExport(t)

	out, err := runCmd(t, "preview", path)
	require.NoError(t, err)

	want := `[window:Bookmarks]
     [tab "Home"]
     [group:Tools] (Color: red) (collapsed)
          [ 2 tabs ("X", "Y") ]
[window:Work]
     [group:Docs]
          [ 1 tabs ("Docs") ]
     [tab "Board"]
`
	assert.Equal(t, want, out)
}

func TestPreviewCommand_FlagsAndFilters(t *testing.T) {
	path := writeExport(t)

	out, err := runCmd(t, "preview", path, "--title-tab", "--exclude", "*://localhost*")
	require.NoError(t, err)

	assert.Contains(t, out, `[TITLE TAB: "Bookmarks"]`)
	assert.Contains(t, out, `[TITLE TAB: "Work"]`)
	assert.NotContains(t, out, "Board")
}

func TestPreviewCommand_ConfigFile(t *testing.T) {
	path := writeExport(t)
	cfgPath := filepath.Join(t.TempDir(), "tabforge.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("options:\n  add_title_tab: true\n"), 0600))

	out, err := runCmd(t, "preview", path, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `[TITLE TAB: "Bookmarks"]`)

	// flags override the file
	out, err = runCmd(t, "preview", path, "--config", cfgPath, "--title-tab=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "TITLE TAB")
}

func TestPreviewCommand_JSON(t *testing.T) {
	out, err := runCmd(t, "preview", writeExport(t), "--json")
	require.NoError(t, err)

	var plans []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 2)
	assert.Equal(t, "Work", plans[1]["title"])
}

func TestPreviewCommand_Errors(t *testing.T) {
	_, err := runCmd(t, "preview")
	assert.Error(t, err)

	_, err = runCmd(t, "preview", filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorContains(t, err, "failed to read bookmarks")

	_, err = runCmd(t, "preview", writeExport(t), "--include", "[unterminated")
	assert.ErrorContains(t, err, "invalid include pattern")
}

func TestProcessCommand_DryRun(t *testing.T) {
	t.Setenv("TABFORGE_LOG_DIR", t.TempDir())
	artifacts := filepath.Join(t.TempDir(), "artifacts")

	out, err := runCmd(t, "process", writeExport(t), "--dry-run", "--artifacts", artifacts)
	require.NoError(t, err)
	assert.Contains(t, out, "▶ Plan")
	assert.Contains(t, out, "▶ Replay")
	assert.Contains(t, out, "✓ opened 2 windows with 3 tabs")
	assert.Contains(t, out, "RUN SUMMARY")
	assert.Contains(t, out, "SUCCESS")
	assert.NotContains(t, out, "debug log written to")

	data, err := os.ReadFile(filepath.Join(artifacts, "run.json"))
	require.NoError(t, err)

	var summary report.RunSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, report.StatusSuccess, summary.Status)
	assert.Equal(t, "memory", summary.Host)
	assert.Equal(t, 2, summary.Metrics.Windows)
	assert.Equal(t, 2, summary.Metrics.Groups)
	// Home and Docs reuse their window's first tab
	assert.Equal(t, 2, summary.Metrics.AnchorReuses)
	assert.Equal(t, 3, summary.Metrics.Tabs)
}

func TestProcessCommand_VerboseShowsLogPath(t *testing.T) {
	logDir := t.TempDir()
	t.Setenv("TABFORGE_LOG_DIR", logDir)

	out, err := runCmd(t, "process", writeExport(t), "--dry-run", "--verbosity", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "debug log written to "+logDir)
	assert.Contains(t, out, "[DEBUG] CreateWindow")
}

func TestProcessCommand_InvalidVerbosity(t *testing.T) {
	_, err := runCmd(t, "process", writeExport(t), "--dry-run", "--verbosity", "loud")
	assert.ErrorContains(t, err, "invalid logging verbosity")
}
