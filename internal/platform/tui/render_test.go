package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var dayState = flappy.ThemeState{From: flappy.PhaseDay, To: flappy.PhaseDay, Fraction: 1}

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.Fill(' ', core.ColorSky)
	s.DrawText(2, 1, "hi", core.ColorText)
	s.SetColored(9, 2, '#', core.Color(200)) // unknown role

	out := RenderScreen(s, DefaultPalette().Styles(dayState))

	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("output has %d newlines, expected 2", n)
	}
	if !strings.Contains(out, "hi") || !strings.Contains(out, "#") {
		t.Errorf("output lost content: %q", out)
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0), nil); out != "" {
		t.Errorf("RenderScreen() = %q, expected empty", out)
	}
}
