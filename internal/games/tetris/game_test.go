package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%40 == 0:
			inputs[i] = frame(core.ActionDrop)
		case i%7 == 0:
			inputs[i] = frame(core.ActionLeft)
		case i%11 == 0:
			inputs[i] = frame(core.ActionRotate, core.ActionRight)
		default:
			inputs[i] = frame()
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime())
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	assert.Equal(t, s1.Hash(), s2.Hash())
	assert.Equal(t, s1.Score, s2.Score)
	assert.Equal(t, s1.Board, s2.Board)
}

func TestGameGravityFollowsFrameTime(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	startY := g.Snapshot().Current.Pos.Y

	// 60 frames at 60 Hz fall just short of the 1s level-0 interval.
	for range 60 {
		g.Step(frame())
	}
	assert.Equal(t, startY, g.Snapshot().Current.Pos.Y)

	g.Step(frame())
	assert.Equal(t, startY+1, g.Snapshot().Current.Pos.Y)
}

func TestGamePauseSuspendsGravity(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	for range 30 {
		g.Step(frame())
	}

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)
	y := g.Snapshot().Current.Pos.Y

	for range 300 {
		g.Step(frame())
	}
	assert.Equal(t, y, g.Snapshot().Current.Pos.Y, "no drops while paused")

	// Resuming starts a full interval; the half period before the pause is gone.
	g.Step(frame(core.ActionPause))
	for range 59 {
		g.Step(frame())
	}
	assert.Equal(t, y, g.Snapshot().Current.Pos.Y)
	g.Step(frame())
	assert.Equal(t, y+1, g.Snapshot().Current.Pos.Y)
}

func TestGameActionsApplyInOrder(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	x := g.Snapshot().Current.Pos.X

	res := g.Step(frame(core.ActionLeft, core.ActionLeft, core.ActionRight))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, x-1, g.Snapshot().Current.Pos.X)
}

func TestGameHardDropEvents(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	res := g.Step(frame(core.ActionDrop))
	assert.Contains(t, res.Events, "lock")
	assert.Equal(t, 4, g.Snapshot().Board.FilledCount())
}

func TestGameRestart(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frame(core.ActionDrop))
	require.NotZero(t, g.Snapshot().Board.FilledCount())

	res := g.Step(frame(core.ActionRestart))
	assert.Equal(t, core.GameState{}, res.State)
	assert.Equal(t, Board{}, g.Snapshot().Board)
	assert.Equal(t, PhasePlaying, g.Snapshot().Phase)
}

func TestGamePlaysToGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	var over bool
	for range 200 {
		res := g.Step(frame(core.ActionDrop))
		if res.State.GameOver {
			over = true
			assert.Contains(t, res.Events, "game over")
			break
		}
	}
	require.True(t, over, "stacking pieces in the middle must top out")

	snap := g.Snapshot()
	assert.Nil(t, snap.Current)
	assert.Equal(t, PhaseGameOver, snap.Phase)

	// Frames after game over change nothing.
	before := snap.Hash()
	g.Step(frame(core.ActionLeft, core.ActionDrop))
	after := g.Snapshot()
	after.Tick = snap.Tick
	assert.Equal(t, before, after.Hash())
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "Lines")
	assert.True(t, strings.ContainsRune(out, BlockChar))

	g.Step(frame(core.ActionPause))
	g.Render(scr)
	assert.Contains(t, scr.String(), "PAUSED")
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 10
	g.Reset(rt)

	scr := core.NewScreen(20, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")

	res := g.Step(frame(core.ActionDrop))
	assert.False(t, res.State.GameOver)
	assert.Zero(t, g.Snapshot().Board.FilledCount())
}

func TestGameResizeKeepsRound(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frame(core.ActionDrop))
	before := g.Snapshot()
	require.Equal(t, 4, before.Board.FilledCount())

	g.Resize(20, 10)
	g.Step(frame(core.ActionDrop))
	assert.Equal(t, before.Board, g.Snapshot().Board)

	g.Resize(80, 24)
	assert.Equal(t, before.Board, g.Snapshot().Board)
	assert.Equal(t, before.Score, g.Snapshot().Score)
	g.Step(frame(core.ActionDrop))
	assert.Equal(t, 8, g.Snapshot().Board.FilledCount())
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("tetris"))
	g, err := registry.Create("tetris")
	require.NoError(t, err)
	assert.Equal(t, "Tetris", g.Title())
}
