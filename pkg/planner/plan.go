package planner

// Options selects the planning policies.
type Options struct {
	// OmitRoot turns every direct child folder of the root into its own
	// window, regardless of whether it holds sub-folders.
	OmitRoot bool `yaml:"omit_root" json:"omit_root"`

	// AddTitleTab prepends a TitleTab to every window.
	AddTitleTab bool `yaml:"add_title_tab" json:"add_title_tab"`

	// OmitEmptyWindows drops windows with no content after planning.
	OmitEmptyWindows bool `yaml:"omit_empty_windows" json:"omit_empty_windows"`
}

// EmptyThreshold is the tab count at or below which a window is considered
// empty: 1 when every window carries a TitleTab, otherwise 0.
func (o Options) EmptyThreshold() int {
	if o.AddTitleTab {
		return 1
	}
	return 0
}

// Color is a tab group color. The zero value means no color was requested.
type Color string

// Group colors understood by browsers.
const (
	ColorGrey   Color = "grey"
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorPink   Color = "pink"
	ColorPurple Color = "purple"
	ColorCyan   Color = "cyan"
)

// TabItem is an entry of a WindowPlan: a TitleTab, a Link or a Group.
type TabItem interface {
	tabItem()
}

// TitleTab is a synthetic marker naming the window. It is never opened as a
// real tab; the executor turns it into the window's first page.
type TitleTab struct {
	Title string
}

// Link is a single tab.
type Link struct {
	Title string
	URL   string
}

// Group is a cluster of tabs shown as one tab group.
type Group struct {
	Title     string
	Color     Color
	Collapsed bool
	Items     []Link
}

func (TitleTab) tabItem() {}
func (Link) tabItem()     {}
func (Group) tabItem()    {}

// WindowPlan is one browser window and its ordered content.
type WindowPlan struct {
	Title string
	Tabs  []TabItem
}

// HasTitleTab reports whether the window starts with a TitleTab.
func (w WindowPlan) HasTitleTab() bool {
	if len(w.Tabs) == 0 {
		return false
	}
	_, ok := w.Tabs[0].(TitleTab)
	return ok
}

// AnchorURL returns the first URL the window would show: the first Link, or
// the first item of the first non-empty Group, whichever comes first.
func (w WindowPlan) AnchorURL() (string, bool) {
	for _, item := range w.Tabs {
		switch it := item.(type) {
		case Link:
			return it.URL, true
		case Group:
			if len(it.Items) > 0 {
				return it.Items[0].URL, true
			}
		}
	}
	return "", false
}

// TabCount returns the number of tabs the window opens, counting each group
// member separately and ignoring the TitleTab.
func (w WindowPlan) TabCount() int {
	count := 0
	for _, item := range w.Tabs {
		switch it := item.(type) {
		case Link:
			count++
		case Group:
			count += len(it.Items)
		}
	}
	return count
}

// GroupCount returns the number of groups in the window.
func (w WindowPlan) GroupCount() int {
	count := 0
	for _, item := range w.Tabs {
		if _, ok := item.(Group); ok {
			count++
		}
	}
	return count
}
