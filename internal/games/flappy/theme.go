package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Phase is the ambient day/night visual phase.
type Phase int

const (
	PhaseDay Phase = iota
	PhaseNight
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseNight {
		return "night"
	}
	return "day"
}

// ThemeState is the read-only view of the theme for renderers.
// When not transitioning, From == To and Fraction is 1.
type ThemeState struct {
	From          Phase
	To            Phase
	Fraction      float64
	Transitioning bool
}

// ThemeController is the day/night state machine. It is either steady in one
// phase or transitioning between two; it holds timestamps, never opacity.
type ThemeController struct {
	phase         Phase
	transitioning bool
	from, to      Phase
	startedAt     int64

	durationMS     int64
	pointsPerPhase float64
}

// NewThemeController creates a controller steady in day.
func NewThemeController(cfg config.ThemeConfig) *ThemeController {
	return &ThemeController{
		durationMS:     cfg.TransitionMS,
		pointsPerPhase: float64(cfg.PointsPerPhase),
	}
}

// Reset forces steady day.
func (t *ThemeController) Reset() {
	t.phase = PhaseDay
	t.transitioning = false
	t.from, t.to = PhaseDay, PhaseDay
	t.startedAt = 0
}

// DesiredPhase returns night when floor(score/pointsPerPhase) is odd.
func (t *ThemeController) DesiredPhase(score float64) Phase {
	if score <= 0 || math.IsNaN(score) || math.IsInf(score, 0) || t.pointsPerPhase <= 0 {
		return PhaseDay
	}
	if int64(math.Floor(score/t.pointsPerPhase))%2 == 1 {
		return PhaseNight
	}
	return PhaseDay
}

// MaybeStartTransition begins a transition when steady and the score asks
// for the other phase. Returns true if a transition started.
func (t *ThemeController) MaybeStartTransition(now int64, score float64) bool {
	if t.transitioning {
		return false
	}
	want := t.DesiredPhase(score)
	if want == t.phase {
		return false
	}
	t.transitioning = true
	t.from, t.to = t.phase, want
	t.startedAt = now
	return true
}

// MaybeComplete settles an in-flight transition once its duration elapsed.
// Returns true if the transition completed.
func (t *ThemeController) MaybeComplete(now int64) bool {
	if !t.transitioning || now-t.startedAt < t.durationMS {
		return false
	}
	t.transitioning = false
	t.phase = t.to
	t.from = t.to
	return true
}

// Blend returns the crossfade fraction toward the target phase.
func (t *ThemeController) Blend(now int64) float64 {
	if !t.transitioning || t.durationMS <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, float64(now-t.startedAt)/float64(t.durationMS)))
}

// Phase returns the steady phase, or the source phase while transitioning.
func (t *ThemeController) Phase() Phase {
	return t.phase
}

// Transitioning reports whether a crossfade is in flight.
func (t *ThemeController) Transitioning() bool {
	return t.transitioning
}

// StartedAt returns the timestamp the current transition started at.
func (t *ThemeController) StartedAt() int64 {
	return t.startedAt
}

// State returns the renderer view at now.
func (t *ThemeController) State(now int64) ThemeState {
	if !t.transitioning {
		return ThemeState{From: t.phase, To: t.phase, Fraction: 1}
	}
	return ThemeState{
		From:          t.from,
		To:            t.to,
		Fraction:      t.Blend(now),
		Transitioning: true,
	}
}
