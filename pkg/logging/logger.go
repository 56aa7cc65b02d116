// Package logging writes the per-run debug log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LogDirEnv overrides the directory session logs are written to.
const LogDirEnv = "TABFORGE_LOG_DIR"

// session is shared by every logger created during one run.
type session struct {
	once sync.Once
	id   string
}

var current = &session{}

func (s *session) ID() string {
	s.once.Do(func() {
		s.id = uuid.NewString()
	})
	return s.id
}

func resolveLogDir() (string, error) {
	dir := os.Getenv(LogDirEnv)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".tabforge", "logs")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return dir, nil
}

// Logger writes component-tagged lines to the run's log file at
// <log dir>/<session-id>-tabforge.log, where the log dir is
// ~/.tabforge/logs unless $TABFORGE_LOG_DIR is set.
//
// Every level is written; the console reporter does the filtering.
type Logger struct {
	component string
	sessionID string
	path      string
	out       io.Writer
	file      *os.File

	mu        sync.Mutex
	closeOnce sync.Once
}

// NewLogger opens the run's log file for component. Components of the same
// run append to the same file.
//
// If the file cannot be opened the returned logger writes to stderr and the
// error is returned alongside it.
func NewLogger(component string) (*Logger, error) {
	dir, err := resolveLogDir()
	if err != nil {
		return stderrLogger(component, err), err
	}

	path := filepath.Join(dir, current.ID()+"-tabforge.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return stderrLogger(component, err), err
	}

	return &Logger{
		component: component,
		sessionID: current.ID(),
		path:      path,
		out:       file,
		file:      file,
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{component: "nop", out: io.Discard}
}

func stderrLogger(component string, cause error) *Logger {
	l := &Logger{component: component, sessionID: current.ID(), out: os.Stderr}
	l.Warnf("file logging unavailable, using stderr: %v", cause)
	return l
}

func (l *Logger) write(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "[%s] [%s] [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"), l.component, level, fmt.Sprintf(format, v...))
}

// Debugf logs a debug-level message
func (l *Logger) Debugf(format string, v ...interface{}) { l.write("DEBUG", format, v...) }

// Infof logs an info-level message
func (l *Logger) Infof(format string, v ...interface{}) { l.write("INFO", format, v...) }

// Warnf logs a warning-level message
func (l *Logger) Warnf(format string, v ...interface{}) { l.write("WARN", format, v...) }

// Errorf logs an error-level message
func (l *Logger) Errorf(format string, v ...interface{}) { l.write("ERROR", format, v...) }

// Writer returns the raw destination of the log, for subprocess output.
func (l *Logger) Writer() io.Writer {
	return l.out
}

// SessionID returns the run's session ID.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// LogPath returns the log file path, or "" when not writing to a file.
func (l *Logger) LogPath() string {
	return l.path
}

// Close closes the log file. It is safe to call more than once.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}
