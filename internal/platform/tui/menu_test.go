package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func pressMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		nm, ok := next.(MenuModel)
		if !ok {
			t.Fatalf("Update returned %T, want MenuModel", next)
		}
		m = nm
	}
	return m
}

func TestMenuPlaySelectsGame(t *testing.T) {
	m := pressMenu(t, NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil {
		t.Fatal("expected a selection")
	}
	if got := m.Selected().GameID; got != "tetris" {
		t.Errorf("selected %q, want tetris", got)
	}
	if m.WantsScoreboard() || m.IsQuitting() {
		t.Error("play entry should neither open scores nor quit")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	last := len(m.items) - 1

	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != last {
		t.Fatalf("cursor = %d after up from top, want %d", m.cursor, last)
	}
	if m.items[m.cursor].Entry != EntryQuit {
		t.Errorf("last entry = %v, want quit", m.items[m.cursor].Entry)
	}

	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after down from bottom, want 0", m.cursor)
	}
}

func TestMenuScoresEntry(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	for m.items[m.cursor].Entry != EntryScores {
		m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.WantsScoreboard() {
		t.Fatal("expected scoreboard request")
	}
	if m.ScoresFor() != "tetris" {
		t.Errorf("scores for %q, want tetris", m.ScoresFor())
	}
}

func TestMenuQuitEntry(t *testing.T) {
	m := pressMenu(t, NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsQuitting() {
		t.Error("selecting Quit should quit")
	}
	if m.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "tetris", Score: 880, Lines: 9}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	view := NewMenuModel(store, testConfig()).View()
	if !strings.Contains(view, "best 880") {
		t.Errorf("menu view missing best score:\n%s", view)
	}
}

func TestScoreboardListsRounds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	for _, e := range []storage.ScoreEntry{
		{GameID: "tetris", Score: 4321, Lines: 31, Level: 3},
		{GameID: "tetris", Score: 120, Lines: 3},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(store, "tetris", 100, 30)
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Tetris", "4321", "120", "Rounds"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back to the menu")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "tetris", 60, 20)
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Errorf("expected empty message, got:\n%s", m.View())
	}

	next, _ := m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
