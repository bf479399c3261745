// Package registry maps game IDs to factories. Game packages register
// themselves from init, so the CLI, menu and SSH server only need a blank
// import to offer a game.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic: the
// platform maps keys to actions, paces ticks and paints the screen.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// scores database.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new round for the given terminal and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick, applying the actions collected since
	// the previous tick in arrival order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score and lifecycle flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

// Register adds a game factory. It panics on an empty or duplicate ID,
// which can only come from a programming error in an init function.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(games))
	for id, e := range games {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Lookup returns the metadata for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	if !ok {
		return GameInfo{}, false
	}
	return GameInfo{ID: id, Title: e.title}, true
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
