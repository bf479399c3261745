package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGravityAdvance(t *testing.T) {
	var g Gravity
	assert.Zero(t, g.Advance(time.Second), "stopped clock must not fire")

	g.Start(100 * time.Millisecond)
	assert.Zero(t, g.Advance(50*time.Millisecond))
	assert.Equal(t, 1, g.Advance(50*time.Millisecond))
	assert.Equal(t, 2, g.Advance(250*time.Millisecond))
	assert.Equal(t, 1, g.Advance(50*time.Millisecond), "remainder carries over")
}

func TestGravityStopDiscardsProgress(t *testing.T) {
	var g Gravity
	g.Start(100 * time.Millisecond)
	g.Advance(90 * time.Millisecond)
	g.Stop()
	assert.False(t, g.Running())
	assert.Zero(t, g.Advance(time.Second))

	g.Start(100 * time.Millisecond)
	assert.Zero(t, g.Advance(20*time.Millisecond), "restart counts from zero")
}

func TestGravityReschedule(t *testing.T) {
	var g Gravity
	g.Start(100 * time.Millisecond)
	g.Advance(60 * time.Millisecond)

	g.Reschedule(100 * time.Millisecond)
	assert.Equal(t, 1, g.Advance(40*time.Millisecond), "same interval keeps progress")

	g.Advance(60 * time.Millisecond)
	g.Reschedule(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, g.Interval())
	assert.Zero(t, g.Advance(40*time.Millisecond), "new interval starts a fresh period")
	assert.Equal(t, 1, g.Advance(10*time.Millisecond))
}
