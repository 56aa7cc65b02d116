package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	salmonPink = lipgloss.Color("#FFB3BA")
	mintGreen  = lipgloss.Color("#A8E6CF")
	mutedGray  = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(salmonPink)

	windowStyle = lipgloss.NewStyle().
			Foreground(salmonPink)

	groupStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)
)

const (
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
	keyQuit  = "q"

	// header and footer lines around the viewport
	chromeHeight = 2
)

// Model is the bubbletea model of the interactive preview.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewModel creates a viewer for rendered preview text.
func NewModel(title, content string) Model {
	return Model{title: title, content: Highlight(content)}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit, keyEsc, keyCtrlC:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := msg.Height - chromeHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.Style = lipgloss.NewStyle()
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render(m.title)
	footer := helpStyle.Render("↑/↓ scroll • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

// View shows content in a full-screen scrollable viewer until the user quits.
func View(title, content string) error {
	p := tea.NewProgram(NewModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Highlight colors window and group lines of a text preview.
func Highlight(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(trimmed, "[window"):
			lines[i] = windowStyle.Render(line)
		case strings.HasPrefix(trimmed, "[group:"):
			lines[i] = groupStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
