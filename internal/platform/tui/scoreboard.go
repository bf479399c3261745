package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	statsPanelMinWidth = 72 // below this the stats collapse into one line
	statsPanelWidth    = 24
	scoreboardLimit    = 100
	scoreboardChrome   = 9 // title, borders, stats line and help
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardValueStyle = lipgloss.NewStyle().Bold(true)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Help}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Refresh, k.Back, k.Quit, k.Help},
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
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "best"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
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

// ScoreboardModel shows the recorded rounds of one game.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for gameID and loads its scores.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}

	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= statsPanelMinWidth
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := 12
	if m.width >= statsPanelMinWidth+20 {
		dateW = 17
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 9},
		{Title: "Lines", Width: 6},
		{Title: "Level", Width: 6},
		{Title: "Played", Width: dateW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
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

// reload fetches scores and stats from the store. A nil store shows an
// empty board.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.store.TopScores(m.gameID, scoreboardLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(m.gameID)
		}
	}

	layout := "Jan 02 15:04"
	if m.width >= statsPanelMinWidth+20 {
		layout = "2006-01-02 15:04"
	}
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Lines),
			strconv.Itoa(s.Level),
			s.CreatedAt.Local().Format(layout),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
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
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES - "+m.title), m.width))
	b.WriteString("\n\n")

	scores := boardFrameStyle.Render(m.scoresView())
	if m.wide() {
		panel := boardFrameStyle.Width(statsPanelWidth).Render(m.statsPanel())
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, scores, " ", panel)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, scores))
		if line := m.statsLine(); line != "" {
			b.WriteString("\n")
			b.WriteString(centerText(boardLabelStyle.Render(line), m.width))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) scoresView() string {
	switch {
	case m.loadErr != nil:
		return boardEmptyStyle.Render("Could not read scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return boardEmptyStyle.Render("No rounds recorded yet.\nFinish a game to get on the board.")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return boardLabelStyle.Render("No stats yet")
	}
	s := m.stats
	rows := [][2]string{
		{"Rounds", strconv.Itoa(s.GamesCount)},
		{"Best", strconv.Itoa(s.HighScore)},
		{"Average", fmt.Sprintf("%.0f", s.AvgScore)},
		{"Lines", strconv.Itoa(s.TotalLines)},
		{"Top level", strconv.Itoa(s.BestLevel)},
	}
	if !s.LastPlayed.IsZero() {
		rows = append(rows, [2]string{"Last", s.LastPlayed.Local().Format("Jan 02")})
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := boardLabelStyle.Render(fmt.Sprintf("%-10s", r[0]))
		lines = append(lines, label+boardValueStyle.Render(r[1]))
	}
	return strings.Join(lines, "\n")
}

// statsLine is the narrow-terminal form of statsPanel.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d rounds  |  avg %.0f  |  %d lines  |  top level %d",
		m.stats.GamesCount, m.stats.AvgScore, m.stats.TotalLines, m.stats.BestLevel)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard for gameID in its own program.
// It returns true when the user went back rather than quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
