// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Scoring TetrisScoring `yaml:"scoring"`
	Timing  TetrisTiming  `yaml:"timing"`
	Display TetrisDisplay `yaml:"display"`
}

// TetrisScoring defines the line-clear score table and level pacing.
type TetrisScoring struct {
	// LineScores is indexed by rows cleared in one lock (0..4) and is
	// multiplied by level+1.
	LineScores    []int `yaml:"line_scores"`
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// TetrisTiming defines the gravity drop interval curve:
// max(min, base - level*step).
type TetrisTiming struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	IntervalStepMS int `yaml:"interval_step_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
}

// TetrisDisplay holds renderer-only options.
type TetrisDisplay struct {
	ShowGhost bool `yaml:"show_ghost"` // Draw the landing preview of the falling piece
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if len(c.Scoring.LineScores) != 5 {
		return fmt.Errorf("%w: scoring.line_scores needs 5 entries (0..4 lines), got %d",
			ErrInvalidConfig, len(c.Scoring.LineScores))
	}
	for i, s := range c.Scoring.LineScores {
		if s < 0 {
			return fmt.Errorf("%w: scoring.line_scores[%d] is negative", ErrInvalidConfig, i)
		}
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("%w: scoring.lines_per_level must be positive", ErrInvalidConfig)
	}
	if c.Timing.MinIntervalMS <= 0 {
		return fmt.Errorf("%w: timing.min_interval_ms must be positive", ErrInvalidConfig)
	}
	if c.Timing.IntervalStepMS < 0 {
		return fmt.Errorf("%w: timing.interval_step_ms must not be negative", ErrInvalidConfig)
	}
	if c.Timing.BaseIntervalMS < c.Timing.MinIntervalMS {
		return fmt.Errorf("%w: timing.base_interval_ms (%d) is below min_interval_ms (%d)",
			ErrInvalidConfig, c.Timing.BaseIntervalMS, c.Timing.MinIntervalMS)
	}
	return nil
}
