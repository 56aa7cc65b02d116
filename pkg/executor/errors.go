package executor

import (
	"errors"
	"fmt"
)

// ErrNoTabs is returned when the anchor tab of a window cannot be found
// because the host reports no tabs for it.
var ErrNoTabs = errors.New("window has no tabs")

// WindowError reports the window a host failure happened in. It unwraps to
// the host's error.
type WindowError struct {
	Index int
	Title string
	Err   error
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("window %d (%q): %v", e.Index+1, e.Title, e.Err)
}

func (e *WindowError) Unwrap() error {
	return e.Err
}
