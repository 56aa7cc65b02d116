package planner

import (
	"github.com/entrhq/tabforge/pkg/bookmarks"
)

const (
	defaultRootTitle   = "Bookmarks"
	defaultWindowTitle = "New Window"
)

// Plan compiles a bookmark tree into an ordered list of windows.
//
// The root becomes the first window. Links land in the window of the folder
// that holds them, leaf folders become groups in the current window and
// mixed folders open a window of their own. With OmitRoot every direct child
// folder of the root opens a window. Plan never fails and returns the same
// result for the same input.
func Plan(root bookmarks.Folder, opts Options) []WindowPlan {
	rootTitle := root.Title
	if rootTitle == "" {
		rootTitle = defaultRootTitle
	}

	rootWindow := newWindow(rootTitle, opts)
	windows := []*WindowPlan{rootWindow}
	windows = append(windows, walk(root.Children, rootWindow, opts.OmitRoot, opts)...)

	threshold := opts.EmptyThreshold()
	if len(windows) > 1 && isVestigial(rootWindow, opts) {
		windows = windows[1:]
	}

	plans := make([]WindowPlan, 0, len(windows))
	for _, w := range windows {
		if opts.OmitEmptyWindows && len(w.Tabs) <= threshold {
			continue
		}
		plans = append(plans, *w)
	}
	return plans
}

// walk places children into current and returns the windows opened below it,
// in the order they were opened. forceWindow applies to this level only.
func walk(children []bookmarks.Node, current *WindowPlan, forceWindow bool, opts Options) []*WindowPlan {
	var opened []*WindowPlan

	for _, child := range children {
		switch node := child.(type) {
		case bookmarks.Link:
			current.Tabs = append(current.Tabs, Link{Title: node.Title, URL: node.URL})

		case bookmarks.Folder:
			if forceWindow || node.IsMixed() {
				w := newWindow(node.Title, opts)
				opened = append(opened, w)
				opened = append(opened, walk(node.Children, w, false, opts)...)
				continue
			}

			if group, ok := groupFromFolder(node); ok {
				current.Tabs = append(current.Tabs, group)
			}
		}
	}

	return opened
}

// groupFromFolder builds a Group from a leaf folder's links. A folder with
// no links yields no group.
func groupFromFolder(folder bookmarks.Folder) (Group, bool) {
	links := folder.Links()
	if len(links) == 0 {
		return Group{}, false
	}

	title, color, collapsed := ParseGroupTitle(folder.Title)
	items := make([]Link, len(links))
	for i, l := range links {
		items[i] = Link{Title: l.Title, URL: l.URL}
	}

	return Group{
		Title:     title,
		Color:     color,
		Collapsed: collapsed,
		Items:     items,
	}, true
}

func newWindow(title string, opts Options) *WindowPlan {
	if title == "" {
		title = defaultWindowTitle
	}
	w := &WindowPlan{Title: title, Tabs: []TabItem{}}
	if opts.AddTitleTab {
		w.Tabs = append(w.Tabs, TitleTab{Title: title})
	}
	return w
}

// isVestigial reports whether the root window received no real content: it
// is empty, or holds nothing but its TitleTab.
func isVestigial(w *WindowPlan, opts Options) bool {
	if len(w.Tabs) > opts.EmptyThreshold() {
		return false
	}
	if opts.AddTitleTab {
		return len(w.Tabs) == 1 && w.HasTitleTab()
	}
	return len(w.Tabs) == 0
}
