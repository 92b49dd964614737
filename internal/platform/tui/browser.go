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

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Browser layout constants
const (
	maxReplays     = 100 // Max replays to load
	browserChrome  = 8   // Title, status, help and borders
	minTableHeight = 3
)

// ReplayLibrary is the storage the replay browser reads from.
type ReplayLibrary interface {
	RecentReplays(limit int) ([]storage.ReplayEntry, error)
	Replay(id int64) (storage.ReplayEntry, error)
	DeleteReplay(id int64) error
	CountReplays() (int, error)
}

// BrowserKeyMap defines the key bindings for the replay browser.
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Verify  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Verify, k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "verify"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the replay browser.
type BrowserModel struct {
	store    ReplayLibrary
	config   config.FlappyConfig
	entries  []storage.ReplayEntry
	total    int // Stored replays, including those past maxReplays
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	status   string
	failed   bool // Whether status reports a problem
	width    int
	height   int
	quitting bool
}

// NewBrowserModel creates a replay browser over store. cfg re-simulates
// replays that were recorded without their configuration.
func NewBrowserModel(store ReplayLibrary, cfg config.FlappyConfig, width, height int) BrowserModel {
	m := BrowserModel{
		store:  store,
		config: cfg,
		keys:   DefaultBrowserKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a new table sized to the window.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Date", Width: 14},
		{Title: "Runs", Width: 5},
		{Title: "Best", Width: 6},
		{Title: "Duration", Width: 9},
		{Title: "Seed", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(minTableHeight, m.height-browserChrome)),
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

// loadReplays refreshes the table from storage.
func (m *BrowserModel) loadReplays() {
	if m.store == nil {
		m.entries, m.total = nil, 0
		m.updateTableRows()
		return
	}

	entries, err := m.store.RecentReplays(maxReplays)
	if err != nil {
		m.entries = nil
		m.setStatus(true, "could not load replays: %v", err)
	} else {
		m.entries = entries
	}
	m.total = len(m.entries)
	if n, err := m.store.CountReplays(); err == nil {
		m.total = max(n, len(m.entries))
	}
	m.updateTableRows()
}

// title reports how many replays are stored and how many are listed.
func (m BrowserModel) title() string {
	if m.total > len(m.entries) {
		return fmt.Sprintf("REPLAYS (latest %d of %d)", len(m.entries), m.total)
	}
	return fmt.Sprintf("REPLAYS (%d)", m.total)
}

func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", e.ID),
			e.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", e.Runs),
			fmt.Sprintf("%d", int(e.BestScore)),
			formatDuration(e.DurationMS),
			fmt.Sprintf("%d", e.Seed),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

func (m *BrowserModel) setStatus(failed bool, format string, args ...any) {
	m.failed = failed
	m.status = fmt.Sprintf(format, args...)
}

// selected returns the entry under the cursor.
func (m BrowserModel) selected() (storage.ReplayEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return storage.ReplayEntry{}, false
	}
	return m.entries[i], true
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Verify):
			m.verifySelected()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.loadReplays()
			m.setStatus(false, "loaded %d replays", len(m.entries))
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// verifySelected re-simulates the selected replay and reports the outcome.
func (m *BrowserModel) verifySelected() {
	sel, ok := m.selected()
	if !ok || m.store == nil {
		return
	}

	entry, err := m.store.Replay(sel.ID)
	if err != nil {
		m.setStatus(true, "replay #%d: %v", sel.ID, err)
		return
	}
	r, err := replay.FromEntry(entry)
	if err != nil {
		m.setStatus(true, "%v", err)
		return
	}

	res, err := replay.Verify(m.config, r)
	if err != nil {
		m.setStatus(true, "replay #%d: %v", sel.ID, err)
		return
	}
	m.setStatus(false, "replay #%d verified: %d runs, final score %d after %d ticks",
		sel.ID, len(res.Runs), res.Final.DisplayScore, res.Final.Tick)
}

func (m *BrowserModel) deleteSelected() {
	sel, ok := m.selected()
	if !ok || m.store == nil {
		return
	}
	if err := m.store.DeleteReplay(sel.ID); err != nil {
		m.setStatus(true, "could not delete replay #%d: %v", sel.ID, err)
		return
	}
	m.loadReplays()
	m.setStatus(false, "deleted replay #%d", sel.ID)
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(m.title(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
		if m.failed {
			statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
		}
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No replays recorded yet.\nPlay a game to record one!")
	}

	return m.table.View()
}

// Status returns the last status line.
func (m BrowserModel) Status() string {
	return m.status
}

// Len returns the number of listed replays.
func (m BrowserModel) Len() int {
	return len(m.entries)
}

// RunBrowser runs the replay browser until the user quits.
func RunBrowser(store ReplayLibrary, cfg config.FlappyConfig, width, height int) error {
	p := tea.NewProgram(
		NewBrowserModel(store, cfg, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// formatDuration renders milliseconds as m:ss.
func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
