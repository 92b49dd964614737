package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Frame is the actor's wing animation frame.
type Frame int

const (
	FrameDown Frame = iota
	FrameMid
	FrameUp
)

// String returns the frame name.
func (f Frame) String() string {
	switch f {
	case FrameDown:
		return "down"
	case FrameMid:
		return "mid"
	case FrameUp:
		return "up"
	default:
		return "unknown"
	}
}

// frameCycle is the idle wing cycle: down, mid, up, mid, down...
var frameCycle = [...]Frame{FrameDown, FrameMid, FrameUp, FrameMid}

// Actor is the falling/flapping body controlled by the player.
// Pitch and Frame are display-only; physics and collision read only the box
// and velocity.
type Actor struct {
	X, Y       float64 // Top-left corner in world units
	W, H       float64 // Bounding box size
	Velocity   float64 // Vertical velocity, positive is down
	Pitch      float64 // Degrees, positive is nose up
	Frame      Frame
	FlapLockMS int64 // Remaining time the up frame is forced after a flap

	cfg          config.ActorConfig
	flapImpulse  float64
	startX       float64
	startY       float64
	animElapsed  int64
	animPosition int
}

// NewActor creates an actor at the configured start position.
func NewActor(cfg config.FlappyConfig) *Actor {
	x, y := cfg.ActorStart()
	a := &Actor{
		W:           cfg.Actor.Width,
		H:           cfg.Actor.Height,
		cfg:         cfg.Actor,
		flapImpulse: cfg.Physics.FlapImpulse,
		startX:      x,
		startY:      y,
	}
	a.Reset()
	return a
}

// Reset restores the initial position, zero velocity and pitch, and clears
// the flap lock.
func (a *Actor) Reset() {
	a.X = a.startX
	a.Y = a.startY
	a.Velocity = 0
	a.Pitch = 0
	a.Frame = FrameMid
	a.FlapLockMS = 0
	a.animElapsed = 0
	a.animPosition = 1
}

// Box returns the actor's collision rectangle.
func (a *Actor) Box() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}

// Flap applies the upward impulse and forces the up frame.
func (a *Actor) Flap() {
	a.Velocity = a.flapImpulse
	a.FlapLockMS = a.cfg.FlapLockMS
	a.Frame = FrameUp
}

// IntegratePhysics advances one fixed tick: gravity is added to velocity and
// the rounded velocity to position. The actor cannot rise above the world top.
func (a *Actor) IntegratePhysics(gravity float64) {
	a.Velocity += gravity
	a.Y += math.Round(a.Velocity)
	if a.Y < 0 {
		a.Y = 0
	}
}

// Animate advances the wing animation by dtMillis.
func (a *Actor) Animate(dtMillis int64) {
	if dtMillis < 0 {
		dtMillis = 0
	}

	if a.FlapLockMS > 0 {
		a.FlapLockMS -= dtMillis
		if a.FlapLockMS < 0 {
			a.FlapLockMS = 0
		}
		a.Frame = FrameUp
		return
	}

	a.animElapsed += dtMillis
	for a.animElapsed >= a.cfg.FramePeriodMS {
		a.animElapsed -= a.cfg.FramePeriodMS
		a.animPosition = (a.animPosition + 1) % len(frameCycle)
	}
	a.Frame = frameCycle[a.animPosition]

	// Velocity bias overrides the idle cycle
	switch {
	case a.Velocity < a.cfg.UpBiasVelocity:
		a.Frame = FrameUp
	case a.Velocity > a.cfg.DownBiasVelocity:
		a.Frame = FrameDown
	}
}

// UpdatePitch eases the display pitch toward the angle implied by velocity.
// A terminal actor noses fully down.
func (a *Actor) UpdatePitch(dtSeconds float64, terminal bool) {
	target := core.ClampF(-a.Velocity*a.cfg.PitchGain, a.cfg.PitchDownMax, a.cfg.PitchUpMax)
	if terminal {
		target = a.cfg.PitchDownMax
	}

	rate := math.Min(1, a.cfg.PitchLerpRate*math.Max(0, dtSeconds))
	a.Pitch += (target - a.Pitch) * rate
}
