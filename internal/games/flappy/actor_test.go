package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestActor() *Actor {
	return NewActor(config.Default())
}

func TestActorInitialState(t *testing.T) {
	a := newTestActor()

	if a.X != 45 || a.Y != 320 {
		t.Errorf("start position = (%v, %v), expected (45, 320)", a.X, a.Y)
	}
	if a.W != 44 || a.H != 34 {
		t.Errorf("size = %vx%v, expected 44x34", a.W, a.H)
	}
	if a.Velocity != 0 || a.Pitch != 0 || a.FlapLockMS != 0 {
		t.Errorf("expected zero velocity, pitch and lock, got %+v", a)
	}
}

func TestActorFlap(t *testing.T) {
	a := newTestActor()
	a.Velocity = 4
	a.Frame = FrameDown

	a.Flap()

	if a.Velocity != -6 {
		t.Errorf("velocity after flap = %v, expected -6", a.Velocity)
	}
	if a.Frame != FrameUp {
		t.Errorf("frame after flap = %v, expected up", a.Frame)
	}
	if a.FlapLockMS != 120 {
		t.Errorf("flap lock = %d, expected 120", a.FlapLockMS)
	}
}

func TestActorFlapLockHoldsUpFrame(t *testing.T) {
	a := newTestActor()
	a.Flap()
	a.Velocity = 5 // would otherwise bias to the down frame

	a.Animate(50)
	if a.Frame != FrameUp || a.FlapLockMS != 70 {
		t.Errorf("after 50ms: frame=%v lock=%d, expected up/70", a.Frame, a.FlapLockMS)
	}

	a.Animate(100)
	if a.Frame != FrameUp || a.FlapLockMS != 0 {
		t.Errorf("after 150ms: frame=%v lock=%d, expected up/0", a.Frame, a.FlapLockMS)
	}

	a.Animate(16)
	if a.Frame != FrameDown {
		t.Errorf("after lock expired with falling velocity: frame=%v, expected down", a.Frame)
	}
}

func TestActorAnimationCycle(t *testing.T) {
	a := newTestActor()
	expected := []Frame{FrameUp, FrameMid, FrameDown, FrameMid, FrameUp}

	for i, want := range expected {
		a.Animate(100)
		if a.Frame != want {
			t.Errorf("step %d: frame = %v, expected %v", i, a.Frame, want)
		}
	}
}

func TestActorAnimationPartialPeriod(t *testing.T) {
	a := newTestActor()

	a.Animate(60)
	if a.Frame != FrameMid {
		t.Errorf("frame = %v, expected mid before a full period", a.Frame)
	}
	a.Animate(40)
	if a.Frame != FrameUp {
		t.Errorf("frame = %v, expected up after a full period", a.Frame)
	}
}

func TestActorAnimationVelocityBias(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		expected Frame
	}{
		{"rising fast", -3, FrameUp},
		{"falling fast", 5, FrameDown},
		{"neutral", 0, FrameMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestActor()
			a.Velocity = tt.velocity
			a.Animate(10)
			if a.Frame != tt.expected {
				t.Errorf("frame = %v, expected %v", a.Frame, tt.expected)
			}
		})
	}
}

func TestActorIntegratePhysics(t *testing.T) {
	a := newTestActor()

	a.IntegratePhysics(0.4)
	if math.Abs(a.Velocity-0.4) > 1e-9 {
		t.Errorf("velocity = %v, expected 0.4", a.Velocity)
	}
	if a.Y != 320 {
		t.Errorf("y = %v, expected 320 (round(0.4) = 0)", a.Y)
	}

	a.IntegratePhysics(0.4)
	if a.Y != 321 {
		t.Errorf("y = %v, expected 321 (round(0.8) = 1)", a.Y)
	}
}

func TestActorNeverAboveTop(t *testing.T) {
	a := newTestActor()

	for i := 0; i < 500; i++ {
		if i%3 == 0 {
			a.Flap()
		}
		a.IntegratePhysics(0.4)
		if a.Y < 0 {
			t.Fatalf("tick %d: y = %v is negative", i, a.Y)
		}
	}
	if a.Y != 0 {
		t.Errorf("constant flapping should pin the actor to the top, y = %v", a.Y)
	}
}

func TestActorUpdatePitch(t *testing.T) {
	a := newTestActor()
	a.Velocity = -6 // target = clamp(18, -90, 25) = 18

	a.UpdatePitch(0.05, false) // rate 0.5
	if math.Abs(a.Pitch-9) > 1e-9 {
		t.Errorf("pitch = %v, expected 9", a.Pitch)
	}

	a.UpdatePitch(1, false) // rate clamps to 1
	if math.Abs(a.Pitch-18) > 1e-9 {
		t.Errorf("pitch = %v, expected 18", a.Pitch)
	}

	a.Velocity = -20 // target clamps to the nose-up limit
	a.UpdatePitch(1, false)
	if a.Pitch != 25 {
		t.Errorf("pitch = %v, expected 25", a.Pitch)
	}

	a.Velocity = 100
	a.UpdatePitch(1, false)
	if a.Pitch != -90 {
		t.Errorf("pitch = %v, expected -90", a.Pitch)
	}
}

func TestActorPitchTerminalNosesDown(t *testing.T) {
	a := newTestActor()
	a.Velocity = -6

	a.UpdatePitch(1, true)
	if a.Pitch != -90 {
		t.Errorf("terminal pitch = %v, expected -90", a.Pitch)
	}
}

func TestActorPitchIsCosmetic(t *testing.T) {
	a := newTestActor()
	a.Velocity = 3
	y, v := a.Y, a.Velocity

	a.UpdatePitch(0.5, false)
	a.UpdatePitch(0.5, true)

	if a.Y != y || a.Velocity != v {
		t.Errorf("pitch update changed physics: y %v->%v, velocity %v->%v", y, a.Y, v, a.Velocity)
	}
}

func TestActorReset(t *testing.T) {
	a := newTestActor()
	a.Flap()
	for i := 0; i < 10; i++ {
		a.IntegratePhysics(0.4)
	}
	a.UpdatePitch(0.5, false)

	a.Reset()

	if a.X != 45 || a.Y != 320 || a.Velocity != 0 || a.Pitch != 0 || a.FlapLockMS != 0 {
		t.Errorf("Reset() left state %+v", a)
	}
}
