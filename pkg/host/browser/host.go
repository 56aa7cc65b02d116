// Package browser implements WindowingCapability on a real Chromium driven
// by playwright. Each window is a browser context, which Chromium shows as
// its own window when not headless, and each tab is a page of that context.
package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/entrhq/tabforge/pkg/config"
	"github.com/entrhq/tabforge/pkg/executor"
	"github.com/entrhq/tabforge/pkg/logging"
	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

var (
	// ErrNotStarted is returned by capability calls made before Start.
	ErrNotStarted = errors.New("browser host not started")
	// ErrUnknownWindow is returned for a window ID the host never issued.
	ErrUnknownWindow = errors.New("unknown window")
	// ErrUnknownTab is returned for a tab ID the host never issued.
	ErrUnknownTab = errors.New("unknown tab")
	// ErrUnknownGroup is returned for a group ID the host never issued.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrMixedWindows is returned when grouping tabs of different windows.
	ErrMixedWindows = errors.New("tabs belong to different windows")
)

type window struct {
	id      executor.WindowID
	context playwright.BrowserContext
	tabs    []*tab
}

type tab struct {
	id     executor.TabID
	page   playwright.Page
	window *window
}

// Host is a playwright-backed WindowingCapability.
type Host struct {
	mu      sync.Mutex
	cfg     config.BrowserConfig
	logger  *logging.Logger
	pw      *playwright.Playwright
	browser playwright.Browser
	windows []*window
	tabs    map[executor.TabID]*tab
	groups  groupRegistry
}

var _ executor.WindowingCapability = (*Host)(nil)

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the debug logger.
func WithLogger(logger *logging.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// New creates a host. Call Start before using it.
func New(cfg config.BrowserConfig, opts ...Option) *Host {
	h := &Host{
		cfg:    cfg,
		logger: logging.Nop(),
		tabs:   make(map[executor.TabID]*tab),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Start installs the playwright driver if configured and launches Chromium.
func (h *Host) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pw != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// driver output goes to the debug log, not the console
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  h.logger.Writer(),
		Stderr:  h.logger.Writer(),
	}

	if h.cfg.Install {
		h.logger.Infof("installing playwright driver")
		if err := playwright.Install(runOpts); err != nil {
			return fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(h.cfg.Headless),
	}
	if h.cfg.Channel != "" {
		launchOpts.Channel = playwright.String(h.cfg.Channel)
	}
	browser, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		_ = pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	h.pw = pw
	h.browser = browser
	h.logger.Infof("browser launched (headless=%t channel=%q)", h.cfg.Headless, h.cfg.Channel)
	return nil
}

// Close closes every window, the browser and the playwright driver.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pw == nil {
		return nil
	}

	var errs []error
	for _, w := range h.windows {
		if err := w.context.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := h.browser.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := h.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
	}

	h.pw = nil
	h.browser = nil
	h.windows = nil
	h.tabs = make(map[executor.TabID]*tab)

	return errors.Join(errs...)
}

// Groups returns the groups created so far.
func (h *Host) Groups() []Group {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.groups.snapshot()
}

func (h *Host) ready(ctx context.Context) error {
	if h.pw == nil {
		return ErrNotStarted
	}
	return ctx.Err()
}

func (h *Host) window(id executor.WindowID) (*window, error) {
	for _, w := range h.windows {
		if w.id == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownWindow, id)
}

// openPage adds a page to w and navigates it to url when url is not empty.
func (h *Host) openPage(w *window, url string, front bool) (*tab, error) {
	page, err := w.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	if h.cfg.Timeout > 0 {
		page.SetDefaultNavigationTimeout(float64(h.cfg.Timeout.Milliseconds()))
	}

	if url != "" {
		gotoOpts := playwright.PageGotoOptions{}
		if h.cfg.WaitUntil != "" {
			waitUntil := playwright.WaitUntilState(h.cfg.WaitUntil)
			gotoOpts.WaitUntil = &waitUntil
		}
		if _, err := page.Goto(url, gotoOpts); err != nil {
			_ = page.Close()
			return nil, fmt.Errorf("navigation to %q failed: %w", url, err)
		}
	}

	if front {
		if err := focusPage(page); err != nil {
			return nil, err
		}
	}

	t := &tab{id: executor.TabID("tab-" + uuid.NewString()), page: page, window: w}
	w.tabs = append(w.tabs, t)
	h.tabs[t.id] = t
	return t, nil
}

// focusablePage is the part of playwright.Page that focusPage needs.
type focusablePage interface {
	BringToFront() error
	Close(options ...playwright.PageCloseOptions) error
}

// focusPage brings page to the front. A page that cannot be focused is
// closed, since it was never registered with its window.
func focusPage(page focusablePage) error {
	if err := page.BringToFront(); err != nil {
		_ = page.Close()
		return fmt.Errorf("failed to focus page: %w", err)
	}
	return nil
}

// CreateWindow opens a new browser context with one page showing url.
func (h *Host) CreateWindow(ctx context.Context, url string, focused bool) (executor.WindowID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ready(ctx); err != nil {
		return "", err
	}

	bctx, err := h.browser.NewContext()
	if err != nil {
		return "", fmt.Errorf("failed to create context: %w", err)
	}

	w := &window{id: executor.WindowID("window-" + uuid.NewString()), context: bctx}
	if _, err := h.openPage(w, url, focused); err != nil {
		_ = bctx.Close()
		return "", err
	}
	h.windows = append(h.windows, w)

	h.logger.Debugf("created %s on %q", w.id, url)
	return w.id, nil
}

// CreateTab opens url in a new page of the window.
func (h *Host) CreateTab(ctx context.Context, windowID executor.WindowID, url string, active bool) (executor.TabID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ready(ctx); err != nil {
		return "", err
	}
	w, err := h.window(windowID)
	if err != nil {
		return "", err
	}

	t, err := h.openPage(w, url, active)
	if err != nil {
		return "", err
	}
	h.logger.Debugf("created %s in %s on %q", t.id, w.id, url)
	return t.id, nil
}

// QueryTabs lists the window's open pages in creation order.
func (h *Host) QueryTabs(ctx context.Context, windowID executor.WindowID) ([]executor.TabID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ready(ctx); err != nil {
		return nil, err
	}
	w, err := h.window(windowID)
	if err != nil {
		return nil, err
	}

	ids := make([]executor.TabID, 0, len(w.tabs))
	for _, t := range w.tabs {
		if t.page.IsClosed() {
			continue
		}
		ids = append(ids, t.id)
	}
	return ids, nil
}

// GroupTabs registers a group over tabs of one window.
func (h *Host) GroupTabs(ctx context.Context, tabs []executor.TabID) (executor.GroupID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ready(ctx); err != nil {
		return "", err
	}
	gid, err := h.groups.add(tabs, h.windowOf)
	if err != nil {
		return "", err
	}
	h.logger.Debugf("created %s over %d tabs", gid, len(tabs))
	return gid, nil
}

// UpdateGroup records the group's display properties.
func (h *Host) UpdateGroup(ctx context.Context, group executor.GroupID, update executor.GroupUpdate) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ready(ctx); err != nil {
		return err
	}
	return h.groups.update(group, update)
}

func (h *Host) windowOf(id executor.TabID) (executor.WindowID, bool) {
	t, ok := h.tabs[id]
	if !ok {
		return "", false
	}
	return t.window.id, true
}
