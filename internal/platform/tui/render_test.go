package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenKeepsRowsAndRuns(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColored(0, 0, "ab", core.ColorBrightCyan)
	s.DrawTextColored(2, 0, "cd", core.ColorOrange)
	s.DrawText(0, 2, "end")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, want := range []string{"ab", "cd", "end"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing run %q: %q", want, out)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, want plain text", got)
	}
}
