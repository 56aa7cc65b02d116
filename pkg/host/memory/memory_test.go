package memory

import (
	"context"
	"testing"

	"github.com/entrhq/tabforge/pkg/executor"
	"github.com/entrhq/tabforge/pkg/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHost_IDsAreDeterministic(t *testing.T) {
	ctx := context.Background()
	h := New()

	w1, err := h.CreateWindow(ctx, "https://a", true)
	require.NoError(t, err)
	w2, err := h.CreateWindow(ctx, "", true)
	require.NoError(t, err)
	tab, err := h.CreateTab(ctx, w1, "https://b", false)
	require.NoError(t, err)

	assert.Equal(t, executor.WindowID("window-1"), w1)
	assert.Equal(t, executor.WindowID("window-2"), w2)
	// window-1 and window-2 each got an initial tab
	assert.Equal(t, executor.TabID("tab-3"), tab)
}

func TestHost_TabsAndFocus(t *testing.T) {
	ctx := context.Background()
	h := New()

	w1, _ := h.CreateWindow(ctx, "https://a", true)
	_, _ = h.CreateTab(ctx, w1, "https://b", false)
	_, _ = h.CreateWindow(ctx, "https://c", true)

	windows := h.Windows()
	require.Len(t, windows, 2)
	assert.False(t, windows[0].Focused)
	assert.True(t, windows[1].Focused)

	require.Len(t, windows[0].Tabs, 2)
	assert.True(t, windows[0].Tabs[0].Active)
	assert.False(t, windows[0].Tabs[1].Active)

	ids, err := h.QueryTabs(ctx, w1)
	require.NoError(t, err)
	assert.Equal(t, []executor.TabID{"tab-1", "tab-2"}, ids)
}

func TestHost_Groups(t *testing.T) {
	ctx := context.Background()
	h := New()

	w, _ := h.CreateWindow(ctx, "https://a", true)
	t2, _ := h.CreateTab(ctx, w, "https://b", false)

	gid, err := h.GroupTabs(ctx, []executor.TabID{"tab-1", t2})
	require.NoError(t, err)
	assert.Equal(t, executor.GroupID("group-1"), gid)

	color := planner.ColorPurple
	require.NoError(t, h.UpdateGroup(ctx, gid, executor.GroupUpdate{Title: "Docs", Color: &color}))

	groups := h.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "Docs", groups[0].Title)
	assert.Equal(t, planner.ColorPurple, groups[0].Color)
	assert.False(t, groups[0].Collapsed)
	assert.Equal(t, []executor.TabID{"tab-1", "tab-2"}, groups[0].Members)
}

func TestHost_UnknownIDs(t *testing.T) {
	ctx := context.Background()
	h := New()

	_, err := h.CreateTab(ctx, "window-9", "https://a", false)
	assert.ErrorIs(t, err, ErrUnknownWindow)

	_, err = h.QueryTabs(ctx, "window-9")
	assert.ErrorIs(t, err, ErrUnknownWindow)

	_, err = h.GroupTabs(ctx, []executor.TabID{"tab-9"})
	assert.ErrorIs(t, err, ErrUnknownTab)

	err = h.UpdateGroup(ctx, "group-9", executor.GroupUpdate{Title: "x"})
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestHost_FailOn(t *testing.T) {
	ctx := context.Background()
	h := New()
	h.FailOn(OpCreateTab, 2)

	w, err := h.CreateWindow(ctx, "", true)
	require.NoError(t, err)

	_, err = h.CreateTab(ctx, w, "https://1", false)
	require.NoError(t, err)
	_, err = h.CreateTab(ctx, w, "https://2", false)
	assert.ErrorIs(t, err, ErrInjected)
	_, err = h.CreateTab(ctx, w, "https://3", false)
	require.NoError(t, err)

	// the failed call is recorded but leaves no tab behind
	assert.Len(t, h.CallsOf(OpCreateTab), 3)
	assert.Len(t, h.Windows()[0].Tabs, 3)
}
