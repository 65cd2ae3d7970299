package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lane-dash/internal/core"
)

func TestScreenRendererKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Lane", core.ColorCyan)
	s.DrawText(4, 0, "Dash", core.ColorPink)
	s.DrawText(0, 1, "$ 3/20", core.ColorBrightYellow)

	out := NewScreenRenderer(nil).Render(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"Lane", "Dash", "$ 3/20"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	sr := NewScreenRenderer(nil)
	for c := core.ColorRed; c <= core.ColorDarkGray; c++ {
		if _, ok := sr.styles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
