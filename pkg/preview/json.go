package preview

import (
	"encoding/json"
	"io"

	"github.com/entrhq/tabforge/pkg/planner"
)

type jsonWindow struct {
	Title string `json:"title"`
	Tabs  []any  `json:"tabs"`
}

type jsonTitleTab struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

type jsonLink struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type jsonGroup struct {
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Color     *string    `json:"color"`
	Collapsed bool       `json:"collapsed"`
	Items     []jsonLink `json:"items"`
}

// RenderJSON writes plans as indented JSON. Tab entries carry a "type" of
// title_tab, link or group; a group's color is null when unset.
func RenderJSON(w io.Writer, plans []planner.WindowPlan) error {
	out := make([]jsonWindow, len(plans))
	for i, p := range plans {
		out[i] = jsonWindow{Title: p.Title, Tabs: make([]any, 0, len(p.Tabs))}
		for _, item := range p.Tabs {
			out[i].Tabs = append(out[i].Tabs, toJSONTab(item))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONTab(item planner.TabItem) any {
	switch it := item.(type) {
	case planner.TitleTab:
		return jsonTitleTab{Type: "title_tab", Title: it.Title}
	case planner.Link:
		return jsonLink{Type: "link", Title: it.Title, URL: it.URL}
	case planner.Group:
		g := jsonGroup{Type: "group", Title: it.Title, Collapsed: it.Collapsed, Items: make([]jsonLink, len(it.Items))}
		if it.Color != "" {
			color := string(it.Color)
			g.Color = &color
		}
		for i, l := range it.Items {
			g.Items[i] = jsonLink{Type: "link", Title: l.Title, URL: l.URL}
		}
		return g
	}
	return nil
}
