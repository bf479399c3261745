package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic rules: 40/100/300/1200 line
// scores, a level every 10 lines, and a 1000ms gravity interval that
// shrinks by 50ms per level down to 50ms.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Scoring: TetrisScoring{
			LineScores:    []int{0, 40, 100, 300, 1200},
			LinesPerLevel: 10,
		},
		Timing: TetrisTiming{
			BaseIntervalMS: 1000,
			IntervalStepMS: 50,
			MinIntervalMS:  50,
		},
		Display: TetrisDisplay{
			ShowGhost: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
