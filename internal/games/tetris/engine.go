package tetris

import "time"

// Engine owns the authoritative State and exposes the command entry points.
// Every entry point is safe to call in any phase; inapplicable commands are
// no-ops. Engine is not safe for concurrent use: the host serializes commands
// and gravity ticks through a single event loop.
type Engine struct {
	rules Rules
	rnd   Randomizer
	state State
}

// NewEngine creates an uninitialized engine. Call Restart to begin play.
func NewEngine(rules Rules, rnd Randomizer) *Engine {
	return &Engine{rules: rules, rnd: rnd}
}

// Apply runs one command through Transition and stores the result.
func (e *Engine) Apply(cmd Command) Outcome {
	next, out := Transition(e.rules, e.state, cmd, e.rnd)
	e.state = next
	return out
}

// MoveLeft shifts the falling piece one column left if it fits.
func (e *Engine) MoveLeft() Outcome { return e.Apply(CmdMoveLeft) }

// MoveRight shifts the falling piece one column right if it fits.
func (e *Engine) MoveRight() Outcome { return e.Apply(CmdMoveRight) }

// MoveDown drops the falling piece one row, locking it when blocked.
func (e *Engine) MoveDown() Outcome { return e.Apply(CmdMoveDown) }

// Rotate turns the falling piece clockwise if the result fits in place.
func (e *Engine) Rotate() Outcome { return e.Apply(CmdRotate) }

// HardDrop moves the falling piece to its landing row and locks it.
func (e *Engine) HardDrop() Outcome { return e.Apply(CmdHardDrop) }

// TogglePause switches between playing and paused.
func (e *Engine) TogglePause() Outcome { return e.Apply(CmdTogglePause) }

// Restart discards the current game and starts a fresh one.
func (e *Engine) Restart() Outcome { return e.Apply(CmdRestart) }

// Tick applies one gravity step.
func (e *Engine) Tick() Outcome { return e.Apply(CmdGravity) }

// State returns a copy of the current state; callers cannot reach the
// engine's pieces through it.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase()
}

// DropInterval returns the gravity period for the current level.
func (e *Engine) DropInterval() time.Duration {
	return e.rules.DropInterval(e.state.Level)
}

// Ghost returns the landing position of the falling piece, if any.
func (e *Engine) Ghost() (Piece, bool) {
	if e.state.Current == nil {
		return Piece{}, false
	}
	cur := *e.state.Current
	return cur.At(DropPosition(e.state.Board, cur)), true
}
