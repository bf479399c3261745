package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// MenuEntry is the kind of a menu line.
type MenuEntry int

const (
	EntryPlay MenuEntry = iota
	EntryScores
	EntryQuit
)

// MenuItem is one selectable line of the title screen.
type MenuItem struct {
	Entry  MenuEntry
	GameID string
	Label  string
	Best   int // best recorded score for play entries
}

// logoColors paints the title letters in tetromino colors.
var logoColors = []core.Color{
	core.ColorBrightCyan,
	core.ColorBrightYellow,
	core.ColorPurple,
	core.ColorBrightGreen,
	core.ColorBrightRed,
	core.ColorOrange,
}

var (
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the title screen: play, high scores or quit.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
	scoresFor string // game whose scoreboard was requested
}

// NewMenuModel builds the title screen from the registered games. Best
// scores are read from store when it is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)
	for _, g := range games {
		item := MenuItem{Entry: EntryPlay, GameID: g.ID, Label: "Play " + g.Title}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	items = append(items,
		MenuItem{Entry: EntryScores, Label: "High Scores"},
		MenuItem{Entry: EntryQuit, Label: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionScoreboard:
		m.scoresFor = m.scoreboardGame()
		return m, tea.Quit

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch item.Entry {
		case EntryQuit:
			m.quitting = true
		case EntryScores:
			m.scoresFor = m.scoreboardGame()
		default:
			m.selected = &item
		}
		return m, tea.Quit
	}
	return m, nil
}

// scoreboardGame picks the game under the cursor, or the first game.
func (m MenuModel) scoreboardGame() string {
	if it := m.items[m.cursor]; it.Entry == EntryPlay {
		return it.GameID
	}
	for _, it := range m.items {
		if it.Entry == EntryPlay {
			return it.GameID
		}
	}
	return ""
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(renderLogo("TETRIS"), m.width))
	b.WriteString("\n\n\n")

	for i, item := range m.items {
		line := "  " + menuItemStyle.Render(item.Label)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Label)
		}
		if item.Best > 0 {
			line += menuBestStyle.Render(fmt.Sprintf("  best %d", item.Best))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuFooterStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// renderLogo spaces the letters out and colors each one.
func renderLogo(word string) string {
	parts := make([]string, 0, len(word))
	for i, r := range word {
		color := logoColors[i%len(logoColors)]
		parts = append(parts, styleFor(color).Bold(true).Render(string(r)))
	}
	return strings.Join(parts, " ")
}

// Selected returns the chosen play entry, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the scoreboard was requested.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoresFor != ""
}

// ScoresFor returns the game whose scoreboard was requested.
func (m MenuModel) ScoresFor() string {
	return m.scoresFor
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads a single line so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the title screen decided. For a scoreboard request
// GameID names the game to show.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the title screen in its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
		result.GameID = m.ScoresFor()
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
