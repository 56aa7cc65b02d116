// Package memory provides a WindowingCapability that keeps windows, tabs and
// groups in memory and records every call made to it. It backs dry runs and
// tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/entrhq/tabforge/pkg/executor"
	"github.com/entrhq/tabforge/pkg/planner"
)

var (
	// ErrUnknownWindow is returned for a window ID the host never issued.
	ErrUnknownWindow = errors.New("unknown window")
	// ErrUnknownTab is returned for a tab ID the host never issued.
	ErrUnknownTab = errors.New("unknown tab")
	// ErrUnknownGroup is returned for a group ID the host never issued.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrInjected is the error returned by calls selected with FailOn.
	ErrInjected = errors.New("injected failure")
)

// Operation names a capability call.
type Operation string

const (
	OpCreateWindow Operation = "CreateWindow"
	OpCreateTab    Operation = "CreateTab"
	OpQueryTabs    Operation = "QueryTabs"
	OpGroupTabs    Operation = "GroupTabs"
	OpUpdateGroup  Operation = "UpdateGroup"
)

// Call is one recorded capability call.
type Call struct {
	Op      Operation
	Window  executor.WindowID
	URL     string
	Focused bool
	Active  bool
	Tabs    []executor.TabID
	Group   executor.GroupID
	Update  executor.GroupUpdate
}

// Tab is a tab held by the host.
type Tab struct {
	ID     executor.TabID
	URL    string
	Active bool
}

// Window is a window held by the host.
type Window struct {
	ID      executor.WindowID
	Focused bool
	Tabs    []Tab
}

// Group is a tab group held by the host.
type Group struct {
	ID        executor.GroupID
	Title     string
	Color     planner.Color
	Collapsed bool
	Members   []executor.TabID
}

// Host is an in-memory WindowingCapability. IDs are deterministic:
// window-1, tab-1, group-1 and so on, in creation order.
type Host struct {
	mu       sync.Mutex
	calls    []Call
	windows  []*Window
	groups   []*Group
	tabOwner map[executor.TabID]*Window
	nextTab  int
	failures map[Operation]int
	counts   map[Operation]int
}

var _ executor.WindowingCapability = (*Host)(nil)

// New creates an empty host.
func New() *Host {
	return &Host{
		tabOwner: make(map[executor.TabID]*Window),
		failures: make(map[Operation]int),
		counts:   make(map[Operation]int),
	}
}

// FailOn makes the nth call (1-based) of op fail with ErrInjected.
func (h *Host) FailOn(op Operation, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures[op] = n
}

func (h *Host) record(call Call) error {
	h.calls = append(h.calls, call)
	h.counts[call.Op]++
	if n, ok := h.failures[call.Op]; ok && n == h.counts[call.Op] {
		return fmt.Errorf("%s #%d: %w", call.Op, n, ErrInjected)
	}
	return nil
}

func (h *Host) newTab(w *Window, url string, active bool) Tab {
	h.nextTab++
	tab := Tab{ID: executor.TabID(fmt.Sprintf("tab-%d", h.nextTab)), URL: url, Active: active}
	if active {
		for i := range w.Tabs {
			w.Tabs[i].Active = false
		}
	}
	w.Tabs = append(w.Tabs, tab)
	h.tabOwner[tab.ID] = w
	return tab
}

func (h *Host) window(id executor.WindowID) (*Window, error) {
	for _, w := range h.windows {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownWindow, id)
}

// CreateWindow opens a window with a single tab showing url.
func (h *Host) CreateWindow(_ context.Context, url string, focused bool) (executor.WindowID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.record(Call{Op: OpCreateWindow, URL: url, Focused: focused}); err != nil {
		return "", err
	}

	w := &Window{ID: executor.WindowID(fmt.Sprintf("window-%d", len(h.windows)+1)), Focused: focused}
	if focused {
		for _, other := range h.windows {
			other.Focused = false
		}
	}
	h.windows = append(h.windows, w)
	h.newTab(w, url, true)
	return w.ID, nil
}

// CreateTab appends a tab to the window.
func (h *Host) CreateTab(_ context.Context, window executor.WindowID, url string, active bool) (executor.TabID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.record(Call{Op: OpCreateTab, Window: window, URL: url, Active: active}); err != nil {
		return "", err
	}
	w, err := h.window(window)
	if err != nil {
		return "", err
	}
	return h.newTab(w, url, active).ID, nil
}

// QueryTabs lists the window's tabs in order.
func (h *Host) QueryTabs(_ context.Context, window executor.WindowID) ([]executor.TabID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.record(Call{Op: OpQueryTabs, Window: window}); err != nil {
		return nil, err
	}
	w, err := h.window(window)
	if err != nil {
		return nil, err
	}
	ids := make([]executor.TabID, len(w.Tabs))
	for i, t := range w.Tabs {
		ids[i] = t.ID
	}
	return ids, nil
}

// GroupTabs creates a group from existing tabs.
func (h *Host) GroupTabs(_ context.Context, tabs []executor.TabID) (executor.GroupID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members := append([]executor.TabID(nil), tabs...)
	if err := h.record(Call{Op: OpGroupTabs, Tabs: members}); err != nil {
		return "", err
	}
	for _, id := range members {
		if _, ok := h.tabOwner[id]; !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownTab, id)
		}
	}

	g := &Group{ID: executor.GroupID(fmt.Sprintf("group-%d", len(h.groups)+1)), Members: members}
	h.groups = append(h.groups, g)
	return g.ID, nil
}

// UpdateGroup applies display properties to a group.
func (h *Host) UpdateGroup(_ context.Context, group executor.GroupID, update executor.GroupUpdate) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.record(Call{Op: OpUpdateGroup, Group: group, Update: update}); err != nil {
		return err
	}
	for _, g := range h.groups {
		if g.ID != group {
			continue
		}
		g.Title = update.Title
		if update.Color != nil {
			g.Color = *update.Color
		}
		if update.Collapsed != nil {
			g.Collapsed = *update.Collapsed
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownGroup, group)
}

// Calls returns the recorded calls in order.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// CallsOf returns the recorded calls of one operation.
func (h *Host) CallsOf(op Operation) []Call {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []Call
	for _, c := range h.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Windows returns a snapshot of the windows in creation order.
func (h *Host) Windows() []Window {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Window, len(h.windows))
	for i, w := range h.windows {
		out[i] = Window{ID: w.ID, Focused: w.Focused, Tabs: append([]Tab(nil), w.Tabs...)}
	}
	return out
}

// Groups returns a snapshot of the groups in creation order.
func (h *Host) Groups() []Group {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Group, len(h.groups))
	for i, g := range h.groups {
		out[i] = *g
		out[i].Members = append([]executor.TabID(nil), g.Members...)
	}
	return out
}
