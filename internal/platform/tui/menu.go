package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is what the launcher menu returns.
type MenuChoice int

const (
	MenuQuit MenuChoice = iota
	MenuPlay
	MenuRuns
	MenuUnlocks
)

// MenuItem is one launcher entry.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{Choice: MenuPlay, Title: "Play"},
	{Choice: MenuRuns, Title: "Run history"},
	{Choice: MenuUnlocks, Title: "Gimmick list"},
	{Choice: MenuQuit, Title: "Quit"},
}

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	best      int // best stage from history, 0 if unknown
	keyMapper *KeyMapper
	choice    MenuChoice
	done      bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height, best int) MenuModel {
	return MenuModel{
		items:     menuItems,
		width:     width,
		height:    height,
		best:      best,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuQuit
		m.done = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4eff7a"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd644"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T I N Y   H E R O"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Shape is destiny."), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.best > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Best stage cleared: %d", m.best)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry; MenuQuit if nothing was selected.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// RunMenu runs the launcher and returns the selection.
func RunMenu(width, height, best int) (MenuChoice, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height, best),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuQuit, nil
	}
	return m.Choice(), nil
}
