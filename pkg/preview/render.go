// Package preview renders window plans for inspection without touching a
// browser: as indented text, as JSON, or in a scrollable terminal viewer.
package preview

import (
	"fmt"
	"strings"

	"github.com/entrhq/tabforge/pkg/planner"
)

const (
	maxTitleLen   = 20
	truncatedLen  = 17
	itemIndent    = "     "
	detailsIndent = "          "
)

// Render returns the text preview of plans. Each window is a line followed by
// one indented line per tab item; group members are summarized on a second,
// deeper line.
func Render(plans []planner.WindowPlan) string {
	var b strings.Builder

	for i, w := range plans {
		if w.Title != "" {
			fmt.Fprintf(&b, "[window:%s]\n", w.Title)
		} else {
			fmt.Fprintf(&b, "[window: #%d]\n", i+1)
		}

		for _, item := range w.Tabs {
			switch it := item.(type) {
			case planner.TitleTab:
				fmt.Fprintf(&b, "%s[TITLE TAB: \"%s\"]\n", itemIndent, it.Title)
			case planner.Group:
				writeGroup(&b, it)
			case planner.Link:
				fmt.Fprintf(&b, "%s[tab \"%s\"]\n", itemIndent, Truncate(it.Title))
			}
		}
	}

	return b.String()
}

func writeGroup(b *strings.Builder, g planner.Group) {
	b.WriteString(itemIndent + "[group:" + g.Title + "]")
	if g.Color != "" {
		fmt.Fprintf(b, " (Color: %s)", g.Color)
	}
	if g.Collapsed {
		b.WriteString(" (collapsed)")
	}
	b.WriteString("\n")

	titles := make([]string, len(g.Items))
	for i, item := range g.Items {
		titles[i] = `"` + Truncate(item.Title) + `"`
	}
	fmt.Fprintf(b, "%s[ %d tabs (%s) ]\n", detailsIndent, len(g.Items), strings.Join(titles, ", "))
}

// Truncate shortens titles longer than 20 characters to their first 17
// followed by "...".
func Truncate(s string) string {
	r := []rune(s)
	if len(r) > maxTitleLen {
		return string(r[:truncatedLen]) + "..."
	}
	return s
}
