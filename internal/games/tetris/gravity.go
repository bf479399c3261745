package tetris

import "time"

// Gravity is a pausable fixed-period clock advanced by the host's frame time.
// It never fires while stopped, so a paused game accumulates no pending
// drops, and Start always counts the first period from zero.
type Gravity struct {
	interval time.Duration
	elapsed  time.Duration
	running  bool
}

// Start runs the clock with the given period from zero.
func (g *Gravity) Start(interval time.Duration) {
	g.interval = interval
	g.elapsed = 0
	g.running = true
}

// Stop halts the clock and discards any partial period.
func (g *Gravity) Stop() {
	g.running = false
	g.elapsed = 0
}

// Running reports whether the clock is started.
func (g *Gravity) Running() bool {
	return g.running
}

// Interval returns the current period.
func (g *Gravity) Interval() time.Duration {
	return g.interval
}

// Reschedule changes the period. The partial period restarts only when the
// period actually changes.
func (g *Gravity) Reschedule(interval time.Duration) {
	if interval == g.interval {
		return
	}
	g.interval = interval
	g.elapsed = 0
}

// Advance moves the clock forward by dt and returns how many periods
// completed. A stopped clock, or one with no period, never fires.
func (g *Gravity) Advance(dt time.Duration) int {
	if !g.running || g.interval <= 0 || dt <= 0 {
		return 0
	}
	g.elapsed += dt
	n := int(g.elapsed / g.interval)
	g.elapsed %= g.interval
	return n
}
