package tui

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestNightAmount(t *testing.T) {
	tests := []struct {
		name     string
		state    flappy.ThemeState
		expected float64
	}{
		{"steady day", flappy.ThemeState{From: flappy.PhaseDay, To: flappy.PhaseDay, Fraction: 1}, 0},
		{"steady night", flappy.ThemeState{From: flappy.PhaseNight, To: flappy.PhaseNight, Fraction: 1}, 1},
		{"dusk start", flappy.ThemeState{From: flappy.PhaseDay, To: flappy.PhaseNight, Transitioning: true}, 0},
		{"dusk half", flappy.ThemeState{From: flappy.PhaseDay, To: flappy.PhaseNight, Fraction: 0.5, Transitioning: true}, 0.5},
		{"dawn quarter", flappy.ThemeState{From: flappy.PhaseNight, To: flappy.PhaseDay, Fraction: 0.25, Transitioning: true}, 0.75},
		{"fraction clamps", flappy.ThemeState{From: flappy.PhaseDay, To: flappy.PhaseNight, Fraction: 3, Transitioning: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NightAmount(tt.state); got != tt.expected {
				t.Errorf("NightAmount() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSwatchEndpoints(t *testing.T) {
	p := DefaultPalette()
	day, night := DayScheme(), NightScheme()

	for c := core.Color(0); int(c) < core.ColorCount; c++ {
		if got, want := p.Swatch(c, 0).BG.Hex(), day[c].BG.Hex(); got != want {
			t.Errorf("%v at day = %s, expected %s", c, got, want)
		}
		if got, want := p.Swatch(c, 1).FG.Hex(), night[c].FG.Hex(); got != want {
			t.Errorf("%v at night = %s, expected %s", c, got, want)
		}
	}
}

func TestSwatchBlendsBetweenSchemes(t *testing.T) {
	p := DefaultPalette()
	day := p.Swatch(core.ColorSky, 0).BG
	night := p.Swatch(core.ColorSky, 1).BG
	mid := p.Swatch(core.ColorSky, 0.5).BG

	if mid.Hex() == day.Hex() || mid.Hex() == night.Hex() {
		t.Errorf("midpoint %s should differ from both ends", mid.Hex())
	}
	if mid.DistanceLab(day) > day.DistanceLab(night) || mid.DistanceLab(night) > day.DistanceLab(night) {
		t.Errorf("midpoint %s lies outside the day/night span", mid.Hex())
	}
}

func TestStylesAreCachedPerStep(t *testing.T) {
	p := DefaultPalette()
	st := flappy.ThemeState{From: flappy.PhaseDay, To: flappy.PhaseNight, Fraction: 0.5, Transitioning: true}

	a := p.Styles(st)
	st.Fraction = 0.501 // same blend step
	b := p.Styles(st)

	if len(a) != core.ColorCount {
		t.Fatalf("len(Styles) = %d, expected %d", len(a), core.ColorCount)
	}
	if &a[0] != &b[0] {
		t.Error("styles for the same blend step should be reused")
	}
	if len(p.cache) != 1 {
		t.Errorf("cache has %d entries, expected 1", len(p.cache))
	}
}
