package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
	EmptyChar = '·'
)

// Layout: the well is drawn two columns per cell inside a box, with the
// side panel to its right.
const (
	cellW       = 2
	wellW       = Width*cellW + 2
	wellH       = Height + 2
	panelGap    = 2
	panelW      = 16
	layoutWidth = wellW + panelGap + panelW

	layoutHeight = wellH
)

var controlsHelp = []string{
	"←→  move",
	"↑   rotate",
	"↓   soft drop",
	"SPC hard drop",
	"P   pause",
	"R   restart",
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.Snapshot()
	ox := (dst.Width() - layoutWidth) / 2
	oy := (dst.Height() - layoutHeight) / 2

	g.renderWell(dst, snap, ox, oy)
	g.renderPanel(dst, snap, ox+wellW+panelGap, oy)
	g.renderOverlay(dst, snap, ox, oy)
}

// renderWell draws the border, settled cells, ghost and falling piece.
func (g *Game) renderWell(dst *core.Screen, snap Snapshot, ox, oy int) {
	dst.DrawBoxColored(core.NewRect(ox, oy, wellW, wellH), core.ColorGray)

	for row := range Height {
		for col := range Width {
			cell := snap.Board[row][col]
			if cell.Filled {
				drawCell(dst, ox, oy, row, col, BlockChar, cell.Color)
			} else {
				x := ox + 1 + col*cellW
				dst.SetColored(x+1, oy+1+row, EmptyChar, core.ColorDarkGray)
			}
		}
	}

	if snap.Ghost != nil && g.cfg.Display.ShowGhost && snap.Phase == PhasePlaying {
		for _, p := range snap.Ghost.Cells() {
			drawCell(dst, ox, oy, p.Y, p.X, GhostChar, core.ColorDarkGray)
		}
	}
	if snap.Current != nil {
		for _, p := range snap.Current.Cells() {
			drawCell(dst, ox, oy, p.Y, p.X, BlockChar, snap.Current.Color)
		}
	}
}

// drawCell paints one board cell; rows above the well are skipped.
func drawCell(dst *core.Screen, ox, oy, row, col int, r rune, c core.Color) {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return
	}
	x := ox + 1 + col*cellW
	y := oy + 1 + row
	for dx := range cellW {
		dst.SetColored(x+dx, y, r, c)
	}
}

// renderPanel draws the next-piece preview, counters and controls.
func (g *Game) renderPanel(dst *core.Screen, snap Snapshot, px, oy int) {
	dst.DrawBoxColored(core.NewRect(px, oy, MaxShapeSize*cellW+4, 6), core.ColorGray)
	dst.DrawText(px+2, oy, " NEXT ")
	if snap.Next != nil {
		shape := snap.Next.Shape
		for _, b := range shape.Blocks() {
			x := px + 2 + b.X*cellW
			y := oy + 1 + b.Y
			if shape.Size < MaxShapeSize {
				x += cellW / 2 * (MaxShapeSize - shape.Size)
				y++
			}
			for dx := range cellW {
				dst.SetColored(x+dx, y, BlockChar, snap.Next.Color)
			}
		}
	}

	y := oy + 7
	for _, stat := range []struct {
		label string
		value int
	}{
		{"Score", snap.Score},
		{"Level", snap.Level},
		{"Lines", snap.Lines},
	} {
		dst.DrawTextColored(px, y, stat.label, core.ColorGray)
		dst.DrawTextColored(px, y+1, fmt.Sprintf("%d", stat.value), core.ColorBrightWhite)
		y += 3
	}

	y = oy + layoutHeight - len(controlsHelp)
	for i, line := range controlsHelp {
		dst.DrawTextColored(px, y+i, line, core.ColorDarkGray)
	}
}

// renderOverlay draws game state messages over the well.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot, ox, oy int) {
	var lines []string
	switch snap.Phase {
	case PhasePaused:
		lines = []string{"PAUSED", "P to resume"}
	case PhaseGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "R to restart"}
	default:
		return
	}

	mid := oy + wellH/2 - len(lines)/2
	for i, line := range lines {
		x := ox + (wellW-len([]rune(line)))/2
		dst.DrawText(ox+2, mid+i, strings.Repeat(" ", wellW-4))
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorBrightYellow
			if snap.Phase == PhaseGameOver {
				color = core.ColorBrightRed
			}
		}
		dst.DrawTextColored(x, mid+i, line, color)
	}
}
