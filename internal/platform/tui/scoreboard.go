package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sweeper-arcade/internal/core"
	"github.com/vovakirdan/sweeper-arcade/internal/registry"
	"github.com/vovakirdan/sweeper-arcade/internal/storage"
)

const (
	boardListMinWidth = 90  // below this the board list collapses to a selector
	boardListWidth    = 30
	scoreboardRows    = 100 // results loaded per board
)

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbPanelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	sbEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextBoard, k.PrevBoard}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextBoard: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next board")),
		PrevBoard: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev board")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the ranked results of one board at a time, with a
// list of every board and its best result.
type ScoreboardModel struct {
	games  []registry.GameInfo
	bests  map[string]string // formatted best per game id
	cursor int               // selected board
	store  *storage.Store

	scores []storage.ScoreEntry
	stats  *storage.GameStats

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		bests:  make(map[string]string),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}

	if store != nil {
		for _, g := range m.games {
			if best, ok, err := store.BestScore(g.ID, g.Order); err == nil && ok {
				m.bests[g.ID] = FormatScore(g.Order, best)
			}
		}
	}

	m.selectBoard(0)
	return m
}

// current returns the selected game, if any are registered.
func (m *ScoreboardModel) current() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.cursor], true
}

// wide reports whether the board list fits beside the table.
func (m *ScoreboardModel) wide() bool {
	return m.width >= boardListMinWidth
}

// scoreTitle names the score column after the current game's score order.
func (m *ScoreboardModel) scoreTitle() string {
	if g, ok := m.current(); ok && g.Order == core.ScoreLowerIsBetter {
		return "Time"
	}
	return "Score"
}

// selectBoard moves to board i (wrapping) and reloads its results.
func (m *ScoreboardModel) selectBoard(i int) {
	if n := len(m.games); n > 0 {
		m.cursor = ((i % n) + n) % n
	}

	m.scores, m.stats = nil, nil
	if g, ok := m.current(); ok && m.store != nil {
		if scores, err := m.store.TopScores(g.ID, scoreboardRows, g.Order); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(g.ID, g.Order); err == nil {
			m.stats = stats
		}
	}
	m.rebuildTable()
}

// rebuildTable sizes the table to the window and fills it with the
// current board's results.
func (m *ScoreboardModel) rebuildTable() {
	avail := m.width - 6
	if m.wide() {
		avail -= boardListWidth + 4
	}
	playerW := core.Clamp(avail-5-10-14-8, 8, 20)

	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: m.scoreTitle(), Width: 10},
		{Title: "Player", Width: playerW},
		{Title: "Played", Width: 14},
	}

	order := core.ScoreHigherIsBetter
	if g, ok := m.current(); ok {
		order = g.Order
	}
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			FormatScore(order, s.Score),
			player,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
		table.WithStyles(styles),
	)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard. Back and quit end the
// program when run on its own; SessionModel intercepts them.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextBoard):
			m.selectBoard(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.selectBoard(m.cursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	heading := "HIGH SCORES"
	if m.scoreTitle() == "Time" {
		heading = "BEST TIMES"
	}
	if g, ok := m.current(); ok {
		heading += " - " + g.Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(sbTitleStyle.Render(centerText(heading, m.width)))
	b.WriteString("\n")
	b.WriteString(sbHintStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	results := sbPanelStyle.Render(m.resultsView())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.boardList(), "  ", results))
	} else {
		b.WriteString(centerText(m.boardSelector(), m.width))
		b.WriteString("\n\n")
		b.WriteString(results)
	}

	b.WriteString("\n")
	b.WriteString(sbHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statsLine summarizes the current game's results.
func (m ScoreboardModel) statsLine() string {
	g, ok := m.current()
	if !ok || m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d recorded  |  Best %s  |  Avg %s  |  Last %s",
		m.stats.GamesCount,
		FormatScore(g.Order, m.stats.BestScore),
		FormatScore(g.Order, int(m.stats.AvgScore+0.5)),
		m.stats.LastPlayed.Format("Jan 02 15:04"),
	)
}

// boardList renders every board with its best result.
func (m ScoreboardModel) boardList() string {
	var b strings.Builder
	b.WriteString("Boards\n\n")

	inner := boardListWidth - 6 // border, padding and cursor
	for i, g := range m.games {
		best := m.bests[g.ID]
		if best == "" {
			best = "N/A"
		}
		titleW := max(inner-len(best)-1, 1)
		title := g.Title
		if len(title) > titleW {
			title = title[:max(titleW-1, 0)] + "."
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-*s %s", cursor, titleW, title, best)
		if i == m.cursor {
			line = sbActiveStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return sbPanelStyle.Width(boardListWidth).Render(b.String())
}

// boardSelector is the narrow-window stand-in for the board list.
func (m ScoreboardModel) boardSelector() string {
	g, ok := m.current()
	if !ok {
		return ""
	}
	return sbActiveStyle.Render(fmt.Sprintf("< %s  (%d/%d) >", g.Title, m.cursor+1, len(m.games)))
}

// resultsView renders the table or an empty message.
func (m ScoreboardModel) resultsView() string {
	if len(m.scores) == 0 {
		return sbEmptyStyle.Render("No results recorded yet.\nClear a board to set a best time!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
