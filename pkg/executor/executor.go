package executor

import (
	"context"
	"fmt"

	"github.com/entrhq/tabforge/pkg/logging"
	"github.com/entrhq/tabforge/pkg/planner"
)

// WindowResult describes one window after it was materialized.
type WindowResult struct {
	Index        int
	Title        string
	Window       WindowID
	Tabs         int
	Groups       int
	AnchorReused bool
}

// Stats counts what a run created.
type Stats struct {
	Windows      int
	Tabs         int
	Groups       int
	AnchorReuses int
	Results      []WindowResult
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the debug logger capability calls are written to.
func WithLogger(logger *logging.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithWindowHook registers a callback invoked after each window is done.
func WithWindowHook(hook func(WindowResult)) Option {
	return func(e *Executor) {
		e.hook = hook
	}
}

// Executor replays window plans against a WindowingCapability.
type Executor struct {
	host   WindowingCapability
	logger *logging.Logger
	hook   func(WindowResult)
	stats  Stats
}

// NewExecutor creates an executor bound to host.
func NewExecutor(host WindowingCapability, opts ...Option) *Executor {
	e := &Executor{
		host:   host,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute materializes plans one window at a time, in order. The first host
// failure stops the run and is returned as a *WindowError; whatever was
// created before it is left in place.
func (e *Executor) Execute(ctx context.Context, plans []planner.WindowPlan) error {
	for i, plan := range plans {
		result, err := e.executeWindow(ctx, i, plan)
		if err != nil {
			e.logger.Errorf("window %d (%q) failed: %v", i+1, plan.Title, err)
			return &WindowError{Index: i, Title: plan.Title, Err: err}
		}

		e.stats.Windows++
		e.stats.Tabs += result.Tabs
		e.stats.Groups += result.Groups
		if result.AnchorReused {
			e.stats.AnchorReuses++
		}
		e.stats.Results = append(e.stats.Results, result)

		if e.hook != nil {
			e.hook(result)
		}
	}
	return nil
}

// Stats returns the counts accumulated by Execute so far.
func (e *Executor) Stats() Stats {
	return e.stats
}

// windowRun is the state of a single window while it is populated.
type windowRun struct {
	window         WindowID
	anchor         string
	anchorConsumed bool
	result         WindowResult
}

func (e *Executor) executeWindow(ctx context.Context, index int, plan planner.WindowPlan) (WindowResult, error) {
	run := &windowRun{
		result: WindowResult{Index: index, Title: plan.Title},
	}

	var firstURL string
	if plan.HasTitleTab() {
		firstURL = TitlePageURL(plan.Tabs[0].(planner.TitleTab).Title)
		run.anchorConsumed = true
	} else {
		// an empty first URL is no anchor: the window opens blank and the
		// link still gets its own tab
		anchor, ok := plan.AnchorURL()
		run.anchor = anchor
		run.anchorConsumed = !ok || anchor == ""
		firstURL = anchor
	}

	e.logger.Debugf("CreateWindow(%q, focused=true) for %q", firstURL, plan.Title)
	window, err := e.host.CreateWindow(ctx, firstURL, true)
	if err != nil {
		return run.result, fmt.Errorf("failed to create window: %w", err)
	}
	run.window = window
	run.result.Window = window

	for _, item := range plan.Tabs {
		switch it := item.(type) {
		case planner.TitleTab:
			// already shown as the window's first page
		case planner.Link:
			if run.takeAnchor(it.URL) {
				continue
			}
			if _, err := e.createTab(ctx, run, it.URL); err != nil {
				return run.result, err
			}
		case planner.Group:
			if err := e.createGroup(ctx, run, it); err != nil {
				return run.result, err
			}
		}
	}

	return run.result, nil
}

// takeAnchor reports whether url is the not yet consumed anchor, consuming it.
func (r *windowRun) takeAnchor(url string) bool {
	if r.anchorConsumed || url != r.anchor {
		return false
	}
	r.anchorConsumed = true
	r.result.AnchorReused = true
	return true
}

func (e *Executor) createTab(ctx context.Context, run *windowRun, url string) (TabID, error) {
	e.logger.Debugf("CreateTab(%s, %q, active=false)", run.window, url)
	tab, err := e.host.CreateTab(ctx, run.window, url, false)
	if err != nil {
		return "", fmt.Errorf("failed to create tab %q: %w", url, err)
	}
	run.result.Tabs++
	return tab, nil
}

func (e *Executor) createGroup(ctx context.Context, run *windowRun, group planner.Group) error {
	members := make([]TabID, 0, len(group.Items))
	for _, item := range group.Items {
		if run.takeAnchor(item.URL) {
			tab, err := e.anchorTab(ctx, run)
			if err != nil {
				return err
			}
			members = append(members, tab)
			continue
		}
		tab, err := e.createTab(ctx, run, item.URL)
		if err != nil {
			return err
		}
		members = append(members, tab)
	}

	if len(members) == 0 {
		e.logger.Debugf("skipping empty group %q", group.Title)
		return nil
	}

	e.logger.Debugf("GroupTabs(%v) for %q", members, group.Title)
	gid, err := e.host.GroupTabs(ctx, members)
	if err != nil {
		return fmt.Errorf("failed to group tabs for %q: %w", group.Title, err)
	}

	update := GroupUpdate{Title: group.Title}
	if group.Color != "" {
		color := group.Color
		update.Color = &color
	}
	if group.Collapsed {
		collapsed := true
		update.Collapsed = &collapsed
	}
	e.logger.Debugf("UpdateGroup(%s, title=%q color=%q collapsed=%t)", gid, group.Title, group.Color, group.Collapsed)
	if err := e.host.UpdateGroup(ctx, gid, update); err != nil {
		return fmt.Errorf("failed to update group %q: %w", group.Title, err)
	}
	run.result.Groups++
	return nil
}

// anchorTab resolves the tab the window was created with.
func (e *Executor) anchorTab(ctx context.Context, run *windowRun) (TabID, error) {
	e.logger.Debugf("QueryTabs(%s)", run.window)
	tabs, err := e.host.QueryTabs(ctx, run.window)
	if err != nil {
		return "", fmt.Errorf("failed to query tabs: %w", err)
	}
	if len(tabs) == 0 {
		return "", ErrNoTabs
	}
	return tabs[0], nil
}
