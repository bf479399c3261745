package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the Engine to the platform's fixed-rate Step loop.
// Key presses and gravity ticks both go through Engine.Apply, in that order,
// within a single Step call.
type Game struct {
	engine  *Engine
	gravity Gravity

	runtime core.RuntimeConfig
	cfg     config.TetrisConfig
	frame   time.Duration // simulated time per Step

	tickCount uint64

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Tetris game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	g.frame = time.Second / time.Duration(tickRate)

	g.minScreenW = layoutWidth
	g.minScreenH = layoutHeight
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.engine = NewEngine(RulesFromConfig(cfg), NewUniformRandomizer(runtime.Seed))
	g.tickCount = 0
	g.gravity.Stop()
	g.engine.Restart()
	g.syncGravity()
}

// Resize adapts the layout to a new terminal size. The round continues.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// commandFor maps a platform action to an engine command.
func commandFor(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CmdMoveLeft
	case core.ActionRight:
		return CmdMoveRight
	case core.ActionDown:
		return CmdMoveDown
	case core.ActionUp, core.ActionRotate:
		return CmdRotate
	case core.ActionDrop:
		return CmdHardDrop
	case core.ActionPause:
		return CmdTogglePause
	case core.ActionRestart:
		return CmdRestart
	default:
		return CmdNone
	}
}

// Step advances the game by one frame: queued commands first, in arrival
// order, then any gravity ticks that fell due during the frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []string

	for _, a := range in.Actions {
		cmd := commandFor(a)
		if cmd == CmdNone {
			continue
		}
		if cmd == CmdRestart {
			// A new game counts its first drop from zero.
			g.gravity.Stop()
		}
		events = appendEvents(events, g.engine.Apply(cmd))
		g.syncGravity()
	}

	due := g.gravity.Advance(g.frame)
	for range due {
		level := g.engine.State().Level
		events = appendEvents(events, g.engine.Tick())
		if g.engine.Phase() != PhasePlaying || g.engine.State().Level != level {
			break
		}
	}
	g.syncGravity()

	return core.StepResult{State: g.State(), Events: events}
}

// syncGravity keeps the clock in line with the engine: stopped unless
// playing, and running at the current level's interval otherwise.
func (g *Game) syncGravity() {
	if g.engine.Phase() != PhasePlaying {
		g.gravity.Stop()
		return
	}
	interval := g.engine.DropInterval()
	if !g.gravity.Running() {
		g.gravity.Start(interval)
		return
	}
	g.gravity.Reschedule(interval)
}

func appendEvents(events []string, out Outcome) []string {
	if out.Locked {
		events = append(events, "lock")
	}
	if out.Cleared > 0 {
		events = append(events, fmt.Sprintf("clear %d", out.Cleared))
	}
	if out.LevelUp {
		events = append(events, "level up")
	}
	if out.ToppedOut {
		events = append(events, "game over")
	}
	return events
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.State()
	return core.GameState{
		Score:    s.Score,
		Lines:    s.Lines,
		Level:    s.Level,
		GameOver: s.GameOver,
		Paused:   s.Paused,
	}
}

// Register the game on package import
func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}
