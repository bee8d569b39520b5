package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tinyhero/internal/grid"
	"github.com/vovakirdan/tinyhero/internal/storage"
)

// Run history layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 22  // Width of stats sidebar
	maxRuns            = 100 // Max runs to load
)

// RunSource reads the run history. *storage.Store satisfies it.
type RunSource interface {
	TopRuns(limit int) ([]storage.RunRecord, error)
	RecentRuns(limit int) ([]storage.RunRecord, error)
	Stats() (*storage.Stats, error)
}

// RunsView selects which ordering the table shows.
type RunsView int

const (
	RunsViewTop RunsView = iota
	RunsViewRecent
)

func (v RunsView) String() string {
	if v == RunsViewRecent {
		return "Recent"
	}
	return "Best"
}

// RunsKeyMap defines the key bindings for the run history.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history screen.
type RunsModel struct {
	source      RunSource
	view        RunsView
	runs        []storage.RunRecord
	stats       *storage.Stats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewRunsModel creates a new run history model. source may be nil.
func NewRunsModel(source RunSource, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		source:      source,
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with columns sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Stage", Width: 6},
		{Title: "Result", Width: 7},
		{Title: "Pixels", Width: 7},
		{Title: "Shape", Width: 12},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#0b0b12")).
		Background(lipgloss.Color("#4eff7a")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the current view and the stats from the source.
func (m *RunsModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	var err error
	if m.view == RunsViewRecent {
		m.runs, err = m.source.RecentRuns(maxRuns)
	} else {
		m.runs, err = m.source.TopRuns(maxRuns)
	}
	if err != nil {
		m.loadErr = err
	}

	if stats, err := m.source.Stats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "lost"
		if r.Cleared {
			result = "clear"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Stage),
			result,
			fmt.Sprintf("%d/%d", r.RemainingPixels, r.TotalPixels),
			shapeString(r.Pattern),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shapeString renders a pattern on one line, rows separated by '/'.
func shapeString(g grid.Grid) string {
	return strings.ReplaceAll(g.String(), "\n", "/")
}

// Init initializes the run history model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == RunsViewTop {
				m.view = RunsViewRecent
			} else {
				m.view = RunsViewTop
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#4eff7a")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("RUN HISTORY - "+strings.ToUpper(m.view.String()), m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := boxStyle.Render(m.renderTableContent())

	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", tableRendered))
	} else {
		b.WriteString(centerText(m.statsLine(), m.width))
		b.WriteString("\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the sidebar contents.
func (m RunsModel) renderStats() string {
	if m.stats == nil {
		return "Stats\n\nunavailable"
	}

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Attempts  %d\n", m.stats.Runs)
	fmt.Fprintf(&sb, "Clears    %d\n", m.stats.Clears)
	fmt.Fprintf(&sb, "Best      %d\n", m.stats.BestStage)
	fmt.Fprintf(&sb, "Avg stage %.1f\n", m.stats.AvgStage)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&sb, "\nLast played\n%s", m.stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return sb.String()
}

// statsLine is the one-line stats summary for narrow windows.
func (m RunsModel) statsLine() string {
	if m.stats == nil {
		return ""
	}
	return fmt.Sprintf("Attempts %d | Clears %d | Best stage %d", m.stats.Runs, m.stats.Clears, m.stats.BestStage)
}

// renderTableContent renders the table or an empty message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nBuild a hero and head out!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// Runs returns the rows currently loaded.
func (m RunsModel) Runs() []storage.RunRecord {
	return m.runs
}

// RunRunsView runs the run history screen.
// Returns true if user wants to go back to the menu, false if quitting.
func RunRunsView(source RunSource, width, height int) (goBack bool, err error) {
	model := NewRunsModel(source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
