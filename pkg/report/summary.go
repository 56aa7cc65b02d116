package report

import (
	"time"

	"github.com/entrhq/tabforge/pkg/executor"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// RunSummary is the outcome of one process run.
type RunSummary struct {
	Source    string          `json:"source"`
	Host      string          `json:"host"`
	Status    string          `json:"status"`
	Error     string          `json:"error,omitempty"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	Duration  time.Duration   `json:"duration"`
	Metrics   RunMetrics      `json:"metrics"`
	Windows   []WindowSummary `json:"windows"`
}

// RunMetrics counts what the run created.
type RunMetrics struct {
	PlannedWindows int `json:"planned_windows"`
	Windows        int `json:"windows"`
	Tabs           int `json:"tabs"`
	Groups         int `json:"groups"`
	AnchorReuses   int `json:"anchor_reuses"`
}

// WindowSummary describes one materialized window.
type WindowSummary struct {
	Title        string `json:"title"`
	Window       string `json:"window"`
	Tabs         int    `json:"tabs"`
	Groups       int    `json:"groups"`
	AnchorReused bool   `json:"anchor_reused"`
}

// NewRunSummary starts a summary for a run of planned windows from source.
func NewRunSummary(source, host string, planned int) *RunSummary {
	return &RunSummary{
		Source:    source,
		Host:      host,
		Status:    "running",
		StartTime: time.Now(),
		Metrics:   RunMetrics{PlannedWindows: planned},
		Windows:   []WindowSummary{},
	}
}

// Finish records the executor's statistics and the run's error, if any.
func (s *RunSummary) Finish(stats executor.Stats, err error) {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)

	s.Metrics.Windows = stats.Windows
	s.Metrics.Tabs = stats.Tabs
	s.Metrics.Groups = stats.Groups
	s.Metrics.AnchorReuses = stats.AnchorReuses

	s.Windows = s.Windows[:0]
	for _, r := range stats.Results {
		s.Windows = append(s.Windows, WindowSummary{
			Title:        r.Title,
			Window:       string(r.Window),
			Tabs:         r.Tabs,
			Groups:       r.Groups,
			AnchorReused: r.AnchorReused,
		})
	}

	if err != nil {
		s.Status = StatusFailed
		s.Error = err.Error()
		return
	}
	s.Status = StatusSuccess
}
