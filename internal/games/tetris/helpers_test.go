package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// sequenceRandomizer replays a fixed list of kinds, cycling when exhausted.
type sequenceRandomizer struct {
	kinds []Kind
	i     int
}

func newSequence(kinds ...Kind) *sequenceRandomizer {
	return &sequenceRandomizer{kinds: kinds}
}

func (s *sequenceRandomizer) Next() Kind {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return k
}

// fillRow occupies every cell of row except the listed columns.
func fillRow(b Board, row int, except ...int) Board {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for col := range Width {
		if !skip[col] {
			b[row][col] = Cell{Filled: true, Color: core.ColorGray}
		}
	}
	return b
}

func piecePtr(p Piece) *Piece {
	return &p
}
