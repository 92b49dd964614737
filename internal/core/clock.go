package core

import (
	"math/rand"
	"time"
)

// Clock is a monotonic millisecond timestamp source.
type Clock interface {
	NowMillis() int64
}

// WallClock reports milliseconds elapsed since it was created.
// time.Since uses the monotonic reading, so wall-clock adjustments do not
// move it backwards.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock anchored at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// NowMillis returns elapsed milliseconds.
func (c *WallClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is advanced explicitly; used by tests and replays.
type ManualClock struct {
	now int64
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() int64 {
	return c.now
}

// Advance moves the clock forward by ms and returns the new time.
func (c *ManualClock) Advance(ms int64) int64 {
	c.now += ms
	return c.now
}

// PausableClock hides paused spans from the clock it wraps: while paused
// it stands still, and after Resume it continues from where it stopped.
type PausableClock struct {
	base     Clock
	offset   int64 // Total paused time
	pausedAt int64
	paused   bool
}

// NewPausableClock wraps base.
func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

// NowMillis returns base time minus every paused span.
func (c *PausableClock) NowMillis() int64 {
	if c.paused {
		return c.pausedAt - c.offset
	}
	return c.base.NowMillis() - c.offset
}

// Pause freezes the clock. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.pausedAt = c.base.NowMillis()
	c.paused = true
}

// Resume restarts the clock. Resuming a running clock is a no-op.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.base.NowMillis() - c.pausedAt
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool {
	return c.paused
}

// Random is the uniform sampling capability used for spawn placement and
// oscillation seeding. *rand.Rand satisfies it.
type Random interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform integer in [0, n). n must be > 0.
	Intn(n int) int
}

// NewRandom returns a seeded deterministic random source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}
