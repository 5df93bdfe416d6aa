package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-centipede/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the map list sidebar
	sidebarWidth       = 20  // Width of map list sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextMap key.Binding
	PrevMap key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMap, k.PrevMap, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMap, k.PrevMap},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMap: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next map"),
		),
		PrevMap: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev map"),
		),
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows recorded runs, one tab per map.
// The first tab lists runs across all maps.
type ScoreboardModel struct {
	maps        []string // "" means all maps
	cursor      int
	store       *storage.Store
	runs        []storage.Run
	best        storage.MapStats
	err         error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	closed      bool
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the tab for current.
func NewScoreboardModel(store *storage.Store, current string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		maps:        []string{""},
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		names, err := store.Maps()
		if err != nil {
			m.err = err
		}
		m.maps = append(m.maps, names...)
	}
	if current != "" && !containsString(m.maps, current) {
		m.maps = append(m.maps, current)
	}
	for i, name := range m.maps {
		if name == current {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Map", Width: 12},
		{Title: "Waves", Width: 6},
		{Title: "Deaths", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Drop the player and map columns on narrow terminals.
	if tableWidth < 85 {
		columns = append(columns[:6], columns[7])
	}
	if tableWidth < 70 {
		columns = append(columns[:2], columns[3:]...)
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the runs for the selected tab.
func (m *ScoreboardModel) loadRuns() {
	m.runs = nil
	m.best = storage.MapStats{}
	if m.store != nil {
		name := m.maps[m.cursor]
		runs, err := m.store.TopRuns(name, maxRuns)
		if err != nil {
			m.err = err
		} else {
			m.runs = runs
		}
		if st, err := m.store.Stats(name); err == nil {
			m.best = st
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	cols := m.table.Columns()
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := make(table.Row, 0, len(cols))
		for _, c := range cols {
			row = append(row, runCell(c.Title, i, r))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func runCell(column string, rank int, r storage.Run) string {
	switch column {
	case "Rank":
		return fmt.Sprintf("#%d", rank+1)
	case "Score":
		return fmt.Sprintf("%d", r.Score)
	case "Map":
		return r.Map
	case "Waves":
		return fmt.Sprintf("%d", r.Waves)
	case "Deaths":
		return fmt.Sprintf("%d", r.Deaths)
	case "Time":
		return formatDuration(r.Duration)
	case "Player":
		if r.Player == "" {
			return "local"
		}
		return r.Player
	case "Date":
		return r.CreatedAt.Format("Jan 02 15:04")
	}
	return ""
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil

		case key.Matches(msg, m.keys.NextMap):
			m.cursor = (m.cursor + 1) % len(m.maps)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevMap):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.maps) - 1
			}
			m.loadRuns()
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

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("HIGH SCORES - %s", tabName(m.maps[m.cursor]))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	if m.best.Runs > 0 {
		summary := fmt.Sprintf("%d runs  best %d  avg %.0f  waves %d",
			m.best.Runs, m.best.Best, m.best.Average, m.best.TotalWaves)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(centerText(summary, m.width)))
	}
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar for map selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Maps\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, name := range m.maps {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(tabName(name), sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the scoreboard with map tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.maps))
	for i, name := range m.maps {
		short := truncate(tabName(name), 10)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(short)
		} else {
			tabs[i] = tabStyle.Render(" " + short + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", tabName(m.maps[m.cursor]))
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		msg := "No runs recorded yet.\nClear a wave to set a high score!"
		if m.store == nil {
			msg = "Score history is unavailable."
		}
		if m.err != nil {
			msg = fmt.Sprintf("Could not load scores: %v", m.err)
		}
		return emptyStyle.Render(msg)
	}
	return m.table.View()
}

// Closed returns true once the player leaves the scoreboard.
func (m ScoreboardModel) Closed() bool {
	return m.closed
}

// IsQuitting returns true if the player wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// Selected returns the map shown, empty for all maps.
func (m ScoreboardModel) Selected() string {
	return m.maps[m.cursor]
}

func tabName(mapName string) string {
	if mapName == "" {
		return "All maps"
	}
	return mapName
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

func containsString(list []string, s string) bool {
	for _, it := range list {
		if it == s {
			return true
		}
	}
	return false
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
