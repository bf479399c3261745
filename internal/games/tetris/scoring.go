package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Rules holds the scoring table and gravity curve.
type Rules struct {
	// LineScores is indexed by rows cleared in one lock (0..4).
	LineScores    [5]int
	LinesPerLevel int

	BaseInterval time.Duration
	IntervalStep time.Duration
	MinInterval  time.Duration
}

// DefaultRules returns the classic NES-style rules: 40/100/300/1200 per
// level, a level every 10 lines, and gravity from 1s down to 50ms.
func DefaultRules() Rules {
	return Rules{
		LineScores:    [5]int{0, 40, 100, 300, 1200},
		LinesPerLevel: 10,
		BaseInterval:  1000 * time.Millisecond,
		IntervalStep:  50 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
	}
}

// RulesFromConfig converts a validated config into Rules.
// Anything that would make the game unplayable falls back to the default.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	if err := cfg.Validate(); err != nil {
		return DefaultRules()
	}
	r := Rules{
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
		BaseInterval:  time.Duration(cfg.Timing.BaseIntervalMS) * time.Millisecond,
		IntervalStep:  time.Duration(cfg.Timing.IntervalStepMS) * time.Millisecond,
		MinInterval:   time.Duration(cfg.Timing.MinIntervalMS) * time.Millisecond,
	}
	copy(r.LineScores[:], cfg.Scoring.LineScores)
	return r
}

// ScoreFor returns the points awarded for clearing lines rows in one lock,
// using the level in effect before the clear. Counts outside 0..4 score 0.
func (r Rules) ScoreFor(lines, levelBefore int) int {
	if lines < 0 || lines >= len(r.LineScores) {
		return 0
	}
	return r.LineScores[lines] * (levelBefore + 1)
}

// LevelFor returns the level reached after totalLines cleared rows.
func (r Rules) LevelFor(totalLines int) int {
	if r.LinesPerLevel <= 0 || totalLines <= 0 {
		return 0
	}
	return totalLines / r.LinesPerLevel
}

// DropInterval returns the gravity period at the given level.
func (r Rules) DropInterval(level int) time.Duration {
	return max(r.MinInterval, r.BaseInterval-time.Duration(level)*r.IntervalStep)
}
