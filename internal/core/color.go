package core

// Color is a semantic color role for a screen cell.
// The platform resolves roles to concrete colors through the active palette,
// which is how the day/night crossfade reaches every cell.
type Color uint8

// Color roles used by the renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorPipe
	ColorPipeCap
	ColorGround
	ColorActor
	ColorWing
	ColorText
	ColorAccent
	colorCount
)

// ColorCount is the number of defined color roles.
const ColorCount = int(colorCount)

// String returns a human-readable name for the color role.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorPipe:
		return "pipe"
	case ColorPipeCap:
		return "pipe-cap"
	case ColorGround:
		return "ground"
	case ColorActor:
		return "actor"
	case ColorWing:
		return "wing"
	case ColorText:
		return "text"
	case ColorAccent:
		return "accent"
	default:
		return "unknown"
	}
}
