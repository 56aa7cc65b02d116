package executor

import (
	"context"

	"github.com/entrhq/tabforge/pkg/planner"
)

// WindowID identifies a window created by a host.
type WindowID string

// TabID identifies a tab created by a host.
type TabID string

// GroupID identifies a tab group created by a host.
type GroupID string

// GroupUpdate carries the display properties applied to a new group.
// Nil fields are left at the host's defaults.
type GroupUpdate struct {
	Title     string
	Color     *planner.Color
	Collapsed *bool
}

// WindowingCapability is what the executor needs from the environment that
// actually owns windows and tabs. Every call blocks until the host has
// finished it.
type WindowingCapability interface {
	// CreateWindow opens a window showing url, or a blank page when url is
	// empty.
	CreateWindow(ctx context.Context, url string, focused bool) (WindowID, error)

	// CreateTab opens url in a new tab of the window.
	CreateTab(ctx context.Context, window WindowID, url string, active bool) (TabID, error)

	// QueryTabs lists the window's tabs in display order.
	QueryTabs(ctx context.Context, window WindowID) ([]TabID, error)

	// GroupTabs puts the tabs in a new group.
	GroupTabs(ctx context.Context, tabs []TabID) (GroupID, error)

	// UpdateGroup sets the group's title and, when present, color and
	// collapsed state.
	UpdateGroup(ctx context.Context, group GroupID, update GroupUpdate) error
}
