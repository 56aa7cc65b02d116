package browser

import (
	"fmt"

	"github.com/entrhq/tabforge/pkg/executor"
	"github.com/entrhq/tabforge/pkg/planner"
	"github.com/google/uuid"
)

// Group is a tab group tracked by the host. Chromium automation has no
// tab-group API, so groups exist only in this registry.
type Group struct {
	ID        executor.GroupID
	Window    executor.WindowID
	Title     string
	Color     planner.Color
	Collapsed bool
	Members   []executor.TabID
}

// groupRegistry owns every group created through a Host.
type groupRegistry struct {
	groups []*Group
}

// add registers a group over tabs. windowOf resolves the window a tab lives
// in; all members must share one window.
func (r *groupRegistry) add(tabs []executor.TabID, windowOf func(executor.TabID) (executor.WindowID, bool)) (executor.GroupID, error) {
	if len(tabs) == 0 {
		return "", fmt.Errorf("cannot group zero tabs")
	}

	var window executor.WindowID
	for i, id := range tabs {
		w, ok := windowOf(id)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownTab, id)
		}
		if i == 0 {
			window = w
			continue
		}
		if w != window {
			return "", fmt.Errorf("%w: %s is in %s, expected %s", ErrMixedWindows, id, w, window)
		}
	}

	g := &Group{
		ID:      executor.GroupID("group-" + uuid.NewString()),
		Window:  window,
		Members: append([]executor.TabID(nil), tabs...),
	}
	r.groups = append(r.groups, g)
	return g.ID, nil
}

func (r *groupRegistry) update(id executor.GroupID, update executor.GroupUpdate) error {
	for _, g := range r.groups {
		if g.ID != id {
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
	return fmt.Errorf("%w: %s", ErrUnknownGroup, id)
}

func (r *groupRegistry) snapshot() []Group {
	out := make([]Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = *g
		out[i].Members = append([]executor.TabID(nil), g.Members...)
	}
	return out
}
