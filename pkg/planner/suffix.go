package planner

import (
	"regexp"
	"strings"
)

var (
	colorSuffix     = regexp.MustCompile(`(?i)^(.*)\[(grey|blue|red|yellow|green|pink|purple|cyan)\][\s\p{Zs}]*$`)
	collapsedSuffix = regexp.MustCompile(`(?i)^(.*)\[collapsed\][\s\p{Zs}]*$`)
)

// ParseGroupTitle strips trailing "[color]" and "[collapsed]" markers from a
// folder title. Markers may appear in any order and repeat; each pass checks
// the color marker before the collapsed marker, and a repeated color marker
// is overwritten by the one closer to the start of the title.
func ParseGroupTitle(raw string) (title string, color Color, collapsed bool) {
	title = raw
	for {
		if m := colorSuffix.FindStringSubmatch(title); m != nil {
			title = strings.TrimSpace(m[1])
			color = Color(strings.ToLower(m[2]))
			continue
		}
		if m := collapsedSuffix.FindStringSubmatch(title); m != nil {
			title = strings.TrimSpace(m[1])
			collapsed = true
			continue
		}
		return title, color, collapsed
	}
}
