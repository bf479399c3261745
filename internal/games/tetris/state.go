package tetris

import "fmt"

// Phase is the lifecycle state derived from a State.
type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhasePlaying       Phase = "playing"
	PhasePaused        Phase = "paused"
	PhaseGameOver      Phase = "game_over"
)

// State is the whole game aggregate. Transitions never modify a State in
// place; they build and return a replacement.
type State struct {
	Board   Board
	Current *Piece // nil before the first start and after game over
	Next    *Piece

	Score int
	Lines int
	Level int

	GameOver bool
	Paused   bool
}

// Phase reports where the state sits in the lifecycle.
func (s State) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.Current == nil:
		return PhaseUninitialized
	case s.Paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Clone returns a deep copy. The board is already a value; only the piece
// pointers need fresh storage.
func (s State) Clone() State {
	if s.Current != nil {
		p := *s.Current
		s.Current = &p
	}
	if s.Next != nil {
		p := *s.Next
		s.Next = &p
	}
	return s
}

// Command is an input to Transition.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveDown
	CmdRotate
	CmdHardDrop
	CmdTogglePause
	CmdRestart
	CmdGravity // timer-driven drop, identical in effect to CmdMoveDown
)

var commandNames = [...]string{
	CmdNone:        "none",
	CmdMoveLeft:    "move_left",
	CmdMoveRight:   "move_right",
	CmdMoveDown:    "move_down",
	CmdRotate:      "rotate",
	CmdHardDrop:    "hard_drop",
	CmdTogglePause: "toggle_pause",
	CmdRestart:     "restart",
	CmdGravity:     "gravity",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Outcome describes what a single transition did.
type Outcome struct {
	Changed    bool // the returned state differs from the input
	Locked     bool // the falling piece settled into the board
	Spawned    bool // a new falling piece entered the well
	Cleared    int  // rows removed by the lock
	ScoreDelta int
	LevelUp    bool
	ToppedOut  bool // the spawn was blocked and the game ended
}

// NewGame creates a fresh state: empty board, two drawn pieces, zero
// counters. The spawn check applies to the very first piece as well.
func NewGame(rnd Randomizer) (State, Outcome) {
	next := Spawn(rnd.Next())
	s := State{Next: &next}
	return spawn(s, rnd, Outcome{Changed: true})
}

// Transition applies one command and returns the replacement state.
// Commands that do not apply in the current phase, and moves that would
// collide, return the input state unchanged with a zero Outcome.
func Transition(r Rules, s State, cmd Command, rnd Randomizer) (State, Outcome) {
	s = s.Clone()

	switch cmd {
	case CmdRestart:
		return NewGame(rnd)
	case CmdTogglePause:
		switch s.Phase() {
		case PhasePlaying, PhasePaused:
			s.Paused = !s.Paused
			return s, Outcome{Changed: true}
		}
		return s, Outcome{}
	}

	if s.Phase() != PhasePlaying {
		return s, Outcome{}
	}
	cur := *s.Current

	switch cmd {
	case CmdMoveLeft:
		return shift(s, cur, -1)
	case CmdMoveRight:
		return shift(s, cur, 1)
	case CmdMoveDown, CmdGravity:
		below := cur.Moved(0, 1)
		if IsValid(s.Board, below, below.Pos) {
			s.Current = &below
			return s, Outcome{Changed: true}
		}
		return lock(r, s, cur, rnd)
	case CmdRotate:
		turned := cur.Rotated()
		if !IsValid(s.Board, turned, turned.Pos) {
			return s, Outcome{}
		}
		s.Current = &turned
		return s, Outcome{Changed: true}
	case CmdHardDrop:
		return lock(r, s, cur.At(DropPosition(s.Board, cur)), rnd)
	}
	return s, Outcome{}
}

func shift(s State, cur Piece, dx int) (State, Outcome) {
	moved := cur.Moved(dx, 0)
	if !IsValid(s.Board, moved, moved.Pos) {
		return s, Outcome{}
	}
	s.Current = &moved
	return s, Outcome{Changed: true}
}

// lock settles p, clears rows, applies scoring, then spawns the next piece.
func lock(r Rules, s State, p Piece, rnd Randomizer) (State, Outcome) {
	out := Outcome{Changed: true, Locked: true}

	board, cleared := ClearLines(Place(s.Board, p))
	s.Board = board
	s.Current = nil

	levelBefore := s.Level
	out.Cleared = cleared
	out.ScoreDelta = r.ScoreFor(cleared, levelBefore)
	s.Score += out.ScoreDelta
	s.Lines += cleared
	s.Level = r.LevelFor(s.Lines)
	out.LevelUp = s.Level != levelBefore

	return spawn(s, rnd, out)
}

// spawn promotes Next to Current and draws a replacement. A blocked spawn
// ends the game and keeps the board and counters for display.
func spawn(s State, rnd Randomizer, out Outcome) (State, Outcome) {
	cur := Spawn(s.Next.Kind)
	next := Spawn(rnd.Next())
	s.Next = &next

	if !IsValid(s.Board, cur, cur.Pos) {
		s.Current = nil
		s.GameOver = true
		out.ToppedOut = true
		return s, out
	}
	s.Current = &cur
	out.Spawned = true
	return s, out
}
