// Package flappy implements the simulation core of a Flappy Bird-style game.
// The player keeps an actor airborne and threads it through a stream of pipe
// pairs whose gap narrows and whose motion grows erratic as the score rises.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ScoreIncrement is added once per pair passed.
const ScoreIncrement = 1.0

// World is the whole mutable simulation state. It is stepped by exactly one
// goroutine; presentation reads Snapshot between steps.
type World struct {
	cfg   config.FlappyConfig
	actor *Actor
	field *ObstacleField
	theme *ThemeController

	score    float64
	terminal bool
	tick     uint64

	lastNow int64
	hasLast bool
	events  []Event
}

// New creates a world in its initial state. rng drives spawn centers and
// oscillation velocities.
func New(cfg config.FlappyConfig, rng core.Random) *World {
	w := &World{
		cfg:    cfg,
		actor:  NewActor(cfg),
		field:  NewObstacleField(cfg, rng),
		theme:  NewThemeController(cfg.Theme),
		events: make([]Event, 0, 4),
	}
	w.Reset()
	return w
}

// Reset restores the actor, the obstacle field, the score, the terminal flag
// and the theme in one go.
func (w *World) Reset() {
	w.actor.Reset()
	w.field.Reset()
	w.theme.Reset()
	w.score = 0
	w.terminal = false
	w.tick = 0
	w.events = w.events[:0]
}

// Step advances the world by one fixed tick. now is a monotonic millisecond
// timestamp sampled once per tick. Gravity and scroll are applied once per
// call regardless of elapsed time; only pitch and animation use the delta.
func (w *World) Step(in core.InputFrame, now int64) {
	dt := w.cfg.TickMillis()
	if w.hasLast {
		dt = max(0, now-w.lastNow)
	}
	w.lastNow, w.hasLast = now, true

	if w.terminal {
		if in.Has(core.ActionRestart) {
			w.Reset()
			return
		}
		w.actor.UpdatePitch(float64(dt)/1000, true)
		w.theme.MaybeComplete(now)
		return
	}

	w.tick++

	if in.Has(core.ActionFlap) {
		w.actor.Flap()
		w.emit(EventJump)
	}

	w.field.ProcessSpawnTimer(now, w.score)
	w.field.Tick(w.score)
	w.field.PurgeOffscreen()

	w.actor.IntegratePhysics(w.cfg.Physics.Gravity)

	w.resolveCollisions()

	w.actor.UpdatePitch(float64(dt)/1000, w.terminal)
	w.actor.Animate(dt)

	w.theme.MaybeStartTransition(now, w.score)
	w.theme.MaybeComplete(now)
}

// resolveCollisions scores passed pairs, then applies the first collision.
func (w *World) resolveCollisions() {
	obs := w.cfg.Obstacles
	for i, n := 0, MarkPassed(w.actor.X, w.field.pairs, obs.Width); i < n; i++ {
		w.score += ScoreIncrement
		w.emit(EventScore)
	}

	groundLine := w.cfg.GroundLine()
	switch DetectCollision(w.actor.Box(), w.field.pairs, obs.Width, obs.Height, groundLine) {
	case CollisionGround:
		w.actor.Y = groundLine - w.actor.H
		w.actor.Velocity = 0
		w.terminal = true
		w.emit(EventFall)
	case CollisionObstacle:
		w.terminal = true
		w.emit(EventCrash)
	}
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// DrainEvents returns and clears the events emitted since the last call.
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := make([]Event, len(w.events))
	copy(out, w.events)
	w.events = w.events[:0]
	return out
}

// Score returns the exact score.
func (w *World) Score() float64 {
	return w.score
}

// Terminal reports whether the run has ended.
func (w *World) Terminal() bool {
	return w.terminal
}

// Ticks returns the number of simulated (non-terminal) ticks in this run.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Actor returns the actor. Callers must treat it as read-only.
func (w *World) Actor() *Actor {
	return w.actor
}

// Obstacles returns the obstacle field. Callers must treat it as read-only.
func (w *World) Obstacles() *ObstacleField {
	return w.field
}

// Theme returns the theme controller. Callers must treat it as read-only.
func (w *World) Theme() *ThemeController {
	return w.theme
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.FlappyConfig {
	return w.cfg
}
