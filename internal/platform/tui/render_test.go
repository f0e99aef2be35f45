package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "red", core.ColorRed)
	s.SetColored(9, 2, '$', core.ColorBrightYellow)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: got %d, expected 3", len(lines))
	}
	for i, want := range []string{"plain", "red", "$"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, expected it to contain %q", i, lines[i], want)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrown; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
