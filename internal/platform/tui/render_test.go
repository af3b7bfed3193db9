package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "SCORE", core.ColorBrightWhite)
	s.DrawTextColor(6, 0, "12", core.ColorYellow)
	s.DrawTextColor(0, 2, "ground", core.ColorGreen)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 3 lines, got %d newlines", got)
	}
	for _, want := range []string{"SCORE", "12", "ground"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(200)).Render("x")
	if want := colorStyles[core.ColorDefault].Render("x"); got != want {
		t.Errorf("unknown color rendered %q, expected the default style %q", got, want)
	}
}
