package preview

import (
	"bytes"
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/tabforge/pkg/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	plans := []planner.WindowPlan{
		{
			Title: "Work",
			Tabs: []planner.TabItem{
				planner.TitleTab{Title: "Work"},
				planner.Group{
					Title:     "Tools",
					Color:     planner.ColorRed,
					Collapsed: true,
					Items: []planner.Link{
						{Title: "X"},
						{Title: "A rather long bookmark title"},
						{Title: "Exactly twenty chars"},
					},
				},
				planner.Link{Title: "Board"},
			},
		},
		{Title: "", Tabs: []planner.TabItem{planner.Group{Title: "Plain", Items: []planner.Link{{Title: "P"}}}}},
	}

	want := `[window:Work]
     [TITLE TAB: "Work"]
     [group:Tools] (Color: red) (collapsed)
          [ 3 tabs ("X", "A rather long boo...", "Exactly twenty chars") ]
     [tab "Board"]
[window: #2]
     [group:Plain]
          [ 1 tabs ("P") ]
`
	assert.Equal(t, want, Render(plans))
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render(nil))
	assert.Equal(t, "[window:Bookmarks]\n", Render([]planner.WindowPlan{{Title: "Bookmarks"}}))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"short", "short"},
		{"12345678901234567890", "12345678901234567890"},
		{"123456789012345678901", "12345678901234567..."},
		{"ääääääääääääääääääääää", "äääääääääääääääää..."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in))
		})
	}
}

func TestRenderJSON(t *testing.T) {
	plans := []planner.WindowPlan{{
		Title: "W",
		Tabs: []planner.TabItem{
			planner.TitleTab{Title: "W"},
			planner.Link{Title: "L", URL: "https://l"},
			planner.Group{Title: "G", Items: []planner.Link{{Title: "g", URL: "https://g"}}},
			planner.Group{Title: "B", Color: planner.ColorBlue, Collapsed: true, Items: []planner.Link{{Title: "b", URL: "https://b"}}},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, plans))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "W", got[0]["title"])

	tabs := got[0]["tabs"].([]any)
	require.Len(t, tabs, 4)
	assert.Equal(t, map[string]any{"type": "title_tab", "title": "W"}, tabs[0])
	assert.Equal(t, map[string]any{"type": "link", "title": "L", "url": "https://l"}, tabs[1])

	plain := tabs[2].(map[string]any)
	assert.Equal(t, "group", plain["type"])
	assert.Contains(t, plain, "color")
	assert.Nil(t, plain["color"])
	assert.Equal(t, false, plain["collapsed"])

	styled := tabs[3].(map[string]any)
	assert.Equal(t, "blue", styled["color"])
	assert.Equal(t, true, styled["collapsed"])
	assert.Len(t, styled["items"], 1)
}

func TestModel(t *testing.T) {
	m := NewModel("Preview", Render([]planner.WindowPlan{{Title: "W"}}))
	assert.Equal(t, "Loading...", m.View())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = updated.(Model)
	assert.Contains(t, m.View(), "Preview")
	assert.Contains(t, m.View(), "[window:W]")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
