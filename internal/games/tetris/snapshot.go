package tetris

import "time"

// Snapshot is a read-only view of the game for renderers and tests.
type Snapshot struct {
	Tick         uint64
	Board        Board
	Current      *Piece
	Next         *Piece
	Ghost        *Piece
	Score        int
	Lines        int
	Level        int
	DropInterval time.Duration
	Phase        Phase
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := g.engine.State()
	snap := Snapshot{
		Tick:         g.tickCount,
		Board:        s.Board,
		Current:      s.Current,
		Next:         s.Next,
		Score:        s.Score,
		Lines:        s.Lines,
		Level:        s.Level,
		DropInterval: g.engine.DropInterval(),
		Phase:        s.Phase(),
	}
	if ghost, ok := g.engine.Ghost(); ok {
		snap.Ghost = &ghost
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	for r := range Height {
		for c := range Width {
			cell := snap.Board[r][c]
			if cell.Filled {
				h = h*31 + uint64(cell.Color) + 1
			} else {
				h *= 31
			}
		}
	}
	for _, p := range []*Piece{snap.Current, snap.Next} {
		if p == nil {
			h *= 31
			continue
		}
		h = h*31 + uint64(p.Kind)  //#nosec G115 -- hash computation
		h = h*31 + uint64(p.Pos.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(p.Pos.Y) //#nosec G115 -- hash computation
		for _, b := range p.Shape.Blocks() {
			h = h*31 + uint64(b.Y*MaxShapeSize+b.X) //#nosec G115 -- hash computation
		}
	}
	return h
}
