package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextModel shows a block of text until the user goes back or quits.
type TextModel struct {
	title     string
	body      string
	width     int
	keys      RunsKeyMap
	goingBack bool
	quitting  bool
}

// NewTextModel creates a text screen.
func NewTextModel(title, body string, width int) TextModel {
	return TextModel{
		title: title,
		body:  body,
		width: width,
		keys:  DefaultRunsKeyMap(),
	}
}

// Init initializes the text screen.
func (m TextModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the text screen.
func (m TextModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back), msg.String() == "enter":
			m.goingBack = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the text screen.
func (m TextModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4eff7a"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(strings.TrimRight(m.body, "\n")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc/b/enter: back  q: quit"))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m TextModel) IsGoingBack() bool {
	return m.goingBack
}

// RunTextView shows body full-screen.
// Returns true if user wants to go back to the menu, false if quitting.
func RunTextView(title, body string, width int) (goBack bool, err error) {
	p := tea.NewProgram(NewTextModel(title, body, width), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(TextModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
