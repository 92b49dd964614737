package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundTopChar = '═'
	GroundChar    = '░'
	BodyChar      = '●'
)

// Pitch thresholds (degrees) for picking the head glyph.
const (
	risingPitch = 10
	divingPitch = -30
)

// headGlyph picks the actor's head glyph from its display pitch.
func headGlyph(pitch float64) rune {
	switch {
	case pitch > risingPitch:
		return '◥'
	case pitch < divingPitch:
		return '◢'
	default:
		return '▶'
	}
}

// wingGlyph picks the wing glyph from the animation frame.
func wingGlyph(f Frame) rune {
	switch f {
	case FrameUp:
		return '^'
	case FrameDown:
		return 'v'
	default:
		return '-'
	}
}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	v := viewport{w: dst.Width(), h: dst.Height(), sx: 1, sy: 1}
	if snap.WorldW > 0 {
		v.sx = float64(v.w) / snap.WorldW
	}
	if snap.WorldH > 0 {
		v.sy = float64(v.h) / snap.WorldH
	}
	return v
}

// cells converts a world rect to an inclusive-exclusive cell span, clipped
// vertically to [0, maxY).
func (v viewport) cells(r core.Rect, maxY int) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * v.sx))
	x1 = int(math.Ceil(r.Right() * v.sx))
	y0 = core.Clamp(int(math.Floor(r.Y*v.sy)), 0, maxY)
	y1 = core.Clamp(int(math.Ceil(r.Bottom()*v.sy)), 0, maxY)
	return x0, y0, x1, y1
}

// Render draws a snapshot onto dst, scaling the world to the screen size.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Fill(' ', core.ColorSky)
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	v := newViewport(dst, snap)
	groundY := core.Clamp(int(math.Round(snap.GroundLine*v.sy)), 1, v.h)

	// Ground strip
	for y := groundY; y < v.h; y++ {
		ch := GroundChar
		if y == groundY {
			ch = GroundTopChar
		}
		dst.DrawHLine(0, y, v.w, ch, core.ColorGround)
	}

	for _, p := range snap.Pipes {
		drawPipe(dst, v, p, groundY)
	}

	drawActor(dst, v, snap.Actor)

	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.DisplayScore), core.ColorText)

	if snap.Terminal {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Space or R to restart", snap.DisplayScore))
	}
}

// drawPipe renders a single pipe with a cap on the edge facing the gap.
func drawPipe(dst *core.Screen, v viewport, p PipeView, groundY int) {
	x0, y0, x1, y1 := v.cells(p.Box, groundY)
	if y1 <= y0 || x1 <= 0 || x0 >= v.w {
		return
	}
	dst.FillRect(x0, y0, x1-x0, y1-y0, PipeChar, core.ColorPipe)

	if p.Kind == PipeTop {
		dst.DrawHLine(x0, y1-1, x1-x0, PipeCapTop, core.ColorPipeCap)
	} else {
		dst.DrawHLine(x0, y0, x1-x0, PipeCapBottom, core.ColorPipeCap)
	}
}

// drawActor renders the body, the wing on its left-middle cell and the head
// on its right-top cell.
func drawActor(dst *core.Screen, v viewport, a ActorView) {
	x := int(math.Floor(a.Box.X * v.sx))
	y := int(math.Floor(a.Box.Y * v.sy))
	w := max(1, int(math.Round(a.Box.W*v.sx)))
	h := max(1, int(math.Round(a.Box.H*v.sy)))

	dst.FillRect(x, y, w, h, BodyChar, core.ColorActor)
	if w > 1 {
		dst.SetColored(x, y+h/2, wingGlyph(a.Frame), core.ColorWing)
	}
	dst.SetColored(x+w-1, y, headGlyph(a.Pitch), core.ColorActor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorText)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorAccent)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorAccent)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorText)
}
