package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// blendSteps is how many distinct crossfade levels get their own style set.
const blendSteps = 32

// Swatch is the concrete foreground and background for one color role.
type Swatch struct {
	FG colorful.Color
	BG colorful.Color
}

// Scheme maps every color role to a swatch.
type Scheme [core.ColorCount]Swatch

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("tui: bad palette color %q: %v", s, err))
	}
	return c
}

func swatch(fg, bg string) Swatch {
	return Swatch{FG: mustHex(fg), BG: mustHex(bg)}
}

// DayScheme is the daytime look.
func DayScheme() Scheme {
	var s Scheme
	s[core.ColorDefault] = swatch("#ffffff", "#000000")
	s[core.ColorSky] = swatch("#ffffff", "#4ec0ca")
	s[core.ColorPipe] = swatch("#73bf2e", "#4ec0ca")
	s[core.ColorPipeCap] = swatch("#558022", "#4ec0ca")
	s[core.ColorGround] = swatch("#c9a463", "#ded895")
	s[core.ColorActor] = swatch("#f8b733", "#4ec0ca")
	s[core.ColorWing] = swatch("#fc7b1c", "#4ec0ca")
	s[core.ColorText] = swatch("#ffffff", "#4ec0ca")
	s[core.ColorAccent] = swatch("#e86101", "#fdf7d6")
	return s
}

// NightScheme is the nighttime look.
func NightScheme() Scheme {
	var s Scheme
	s[core.ColorDefault] = swatch("#ffffff", "#000000")
	s[core.ColorSky] = swatch("#c8d3f5", "#0b1d3a")
	s[core.ColorPipe] = swatch("#2f6b2a", "#0b1d3a")
	s[core.ColorPipeCap] = swatch("#1f4a1c", "#0b1d3a")
	s[core.ColorGround] = swatch("#5c4a2e", "#3b3626")
	s[core.ColorActor] = swatch("#e0c060", "#0b1d3a")
	s[core.ColorWing] = swatch("#d06a2a", "#0b1d3a")
	s[core.ColorText] = swatch("#f0f0ff", "#0b1d3a")
	s[core.ColorAccent] = swatch("#ffb347", "#1c2541")
	return s
}

// Palette resolves color roles to lipgloss styles, crossfading between the
// day and night schemes. Style sets are built lazily per blend step.
type Palette struct {
	day, night Scheme
	renderer   *lipgloss.Renderer
	cache      map[int][]lipgloss.Style
}

// NewPalette creates a palette from the two schemes.
func NewPalette(day, night Scheme) *Palette {
	return &Palette{
		day:      day,
		night:    night,
		renderer: lipgloss.DefaultRenderer(),
		cache:    make(map[int][]lipgloss.Style),
	}
}

// WithRenderer returns a copy of the palette that builds styles for r,
// e.g. the renderer of a remote SSH session.
func (p *Palette) WithRenderer(r *lipgloss.Renderer) *Palette {
	return &Palette{
		day:      p.day,
		night:    p.night,
		renderer: r,
		cache:    make(map[int][]lipgloss.Style),
	}
}

// DefaultPalette returns the stock day/night palette.
func DefaultPalette() *Palette {
	return NewPalette(DayScheme(), NightScheme())
}

// NightAmount converts a theme state to a 0 (day) .. 1 (night) mix.
func NightAmount(st flappy.ThemeState) float64 {
	if !st.Transitioning || st.From == st.To {
		if st.To == flappy.PhaseNight {
			return 1
		}
		return 0
	}
	f := st.Fraction
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	if st.From == flappy.PhaseNight {
		return 1 - f
	}
	return f
}

// Styles returns one style per color role for the given theme state.
func (p *Palette) Styles(st flappy.ThemeState) []lipgloss.Style {
	step := int(NightAmount(st)*blendSteps + 0.5)
	if styles, ok := p.cache[step]; ok {
		return styles
	}

	t := float64(step) / blendSteps
	styles := make([]lipgloss.Style, core.ColorCount)
	for i := range styles {
		sw := p.Swatch(core.Color(i), t)
		styles[i] = p.renderer.NewStyle().
			Foreground(lipgloss.Color(sw.FG.Hex())).
			Background(lipgloss.Color(sw.BG.Hex()))
	}
	styles[core.ColorText] = styles[core.ColorText].Bold(true)
	styles[core.ColorAccent] = styles[core.ColorAccent].Bold(true)

	p.cache[step] = styles
	return styles
}

// Swatch blends one role at night amount t in Lab space.
func (p *Palette) Swatch(c core.Color, t float64) Swatch {
	if int(c) >= core.ColorCount {
		c = core.ColorDefault
	}
	d, n := p.day[c], p.night[c]
	return Swatch{
		FG: d.FG.BlendLab(n.FG, t).Clamped(),
		BG: d.BG.BlendLab(n.BG, t).Clamped(),
	}
}
