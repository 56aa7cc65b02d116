// Package report prints run progress to the console and writes run
// artifacts.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/entrhq/tabforge/pkg/executor"
)

// LogLevel represents the logging verbosity level
type LogLevel int

const (
	// LogLevelQuiet shows only critical information (errors, warnings, final summary)
	LogLevelQuiet LogLevel = iota
	// LogLevelNormal shows standard run progress (default)
	LogLevelNormal
	// LogLevelVerbose shows every window as it is created
	LogLevelVerbose
	// LogLevelDebug shows all internal details for debugging
	LogLevelDebug
)

var (
	salmonPink  = lipgloss.Color("#FFB3BA")
	mintGreen   = lipgloss.Color("#A8E6CF")
	mutedGray   = lipgloss.Color("#6B7280")
	brightWhite = lipgloss.Color("#F9FAFB")
	warnYellow  = lipgloss.Color("#FDE68A")
	errorRed    = lipgloss.Color("#F87171")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(brightWhite)
	sectionStyle = lipgloss.NewStyle().Foreground(salmonPink)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(mintGreen)
	infoStyle    = lipgloss.NewStyle().Foreground(salmonPink)
	warnStyle    = lipgloss.NewStyle().Foreground(warnYellow)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(errorRed)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedGray)
)

// Logger prints run progress at a chosen verbosity
type Logger struct {
	level     LogLevel
	writer    io.Writer
	stepCount int
}

// NewLogger creates a logger writing to w
func NewLogger(w io.Writer, level LogLevel) *Logger {
	return &Logger{level: level, writer: w}
}

// Level returns the logger's verbosity
func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) println(style lipgloss.Style, msg string) {
	fmt.Fprintln(l.writer, style.Render(msg))
}

// Header prints a prominent header message
func (l *Logger) Header(message string) {
	if l.level >= LogLevelNormal {
		rule := strings.Repeat("=", 70)
		fmt.Fprintln(l.writer)
		l.println(headerStyle, rule)
		l.println(headerStyle, "  "+message)
		l.println(headerStyle, rule)
	}
}

// Section prints a section divider
func (l *Logger) Section(title string) {
	if l.level >= LogLevelNormal {
		fmt.Fprintln(l.writer)
		l.println(sectionStyle, "▶ "+title)
		l.println(mutedStyle, strings.Repeat("─", 50))
	}
}

// Step prints a numbered step
func (l *Logger) Step(message string) {
	if l.level >= LogLevelNormal {
		l.stepCount++
		l.println(sectionStyle, fmt.Sprintf("[%d] %s", l.stepCount, message))
	}
}

// Successf prints a success message with checkmark
func (l *Logger) Successf(format string, args ...interface{}) {
	if l.level >= LogLevelNormal {
		l.println(successStyle, "✓ "+fmt.Sprintf(format, args...))
	}
}

// Infof prints an informational message
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level >= LogLevelNormal {
		l.println(infoStyle, fmt.Sprintf(format, args...))
	}
}

// Warningf prints a warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.println(warnStyle, "⚠ Warning: "+fmt.Sprintf(format, args...))
}

// Errorf prints an error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.println(errorStyle, "✗ Error: "+fmt.Sprintf(format, args...))
}

// Verbosef prints detailed information (only in verbose mode)
func (l *Logger) Verbosef(format string, args ...interface{}) {
	if l.level >= LogLevelVerbose {
		l.println(mutedStyle, "→ "+fmt.Sprintf(format, args...))
	}
}

// Debugf prints debug information (only in debug mode)
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		l.println(mutedStyle, "[DEBUG] "+fmt.Sprintf(format, args...))
	}
}

// Window logs a finished window with formatting based on verbosity
func (l *Logger) Window(r executor.WindowResult) {
	switch l.level {
	case LogLevelQuiet:
		// Don't log individual windows in quiet mode
	case LogLevelNormal:
		l.println(mutedStyle, fmt.Sprintf("  • %s", r.Title))
	case LogLevelVerbose, LogLevelDebug:
		l.println(sectionStyle, fmt.Sprintf("  🪟 %s [%s]: %d tabs, %d groups", r.Title, r.Window, r.Tabs, r.Groups))
	}
}

// Summary prints a final run summary
func (l *Logger) Summary(summary *RunSummary) {
	rule := strings.Repeat("=", 70)

	fmt.Fprintln(l.writer)
	l.println(headerStyle, rule)
	l.println(headerStyle, "  RUN SUMMARY")
	l.println(headerStyle, rule)

	fmt.Fprint(l.writer, "  Status: ")
	switch summary.Status {
	case StatusSuccess:
		l.println(successStyle, "✓ SUCCESS")
	case StatusFailed:
		l.println(errorStyle, "✗ FAILED")
	default:
		fmt.Fprintln(l.writer, summary.Status)
	}

	fmt.Fprintf(l.writer, "  Source: %s\n", summary.Source)
	fmt.Fprintf(l.writer, "  Host: %s\n", summary.Host)
	fmt.Fprintf(l.writer, "  Duration: %s\n", summary.Duration.Round(time.Millisecond))

	fmt.Fprintf(l.writer, "\n  📊 Metrics:\n")
	fmt.Fprintf(l.writer, "    Windows: %d/%d\n", summary.Metrics.Windows, summary.Metrics.PlannedWindows)
	fmt.Fprintf(l.writer, "    Tabs created: %d\n", summary.Metrics.Tabs)
	fmt.Fprintf(l.writer, "    Groups: %d\n", summary.Metrics.Groups)
	if l.level >= LogLevelVerbose {
		fmt.Fprintf(l.writer, "    Anchor reuses: %d\n", summary.Metrics.AnchorReuses)
	}

	if summary.Error != "" {
		fmt.Fprintln(l.writer)
		l.println(errorStyle, "  Error Details:")
		l.println(errorStyle, "    "+summary.Error)
	}

	l.println(headerStyle, rule)
	fmt.Fprintln(l.writer)
}

// Newline adds a blank line (respects log level)
func (l *Logger) Newline() {
	if l.level >= LogLevelNormal {
		fmt.Fprintln(l.writer)
	}
}

// ParseLogLevel converts a string log level to LogLevel type
func ParseLogLevel(level string) LogLevel {
	switch level {
	case "quiet":
		return LogLevelQuiet
	case "normal":
		return LogLevelNormal
	case "verbose":
		return LogLevelVerbose
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelNormal
	}
}
