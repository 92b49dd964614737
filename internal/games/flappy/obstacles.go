package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Oscillation tuning.
const (
	minOscillationSpeed = 0.3  // Lower bound of a seeded |vy|
	reseedChance        = 0.05 // Per-tick re-randomization chance at factor 1
)

// PipeKind distinguishes the two pipes of a pair.
type PipeKind int

const (
	PipeTop PipeKind = iota
	PipeBottom
)

// String returns the pipe kind name.
func (k PipeKind) String() string {
	if k == PipeTop {
		return "top"
	}
	return "bottom"
}

// Pair is a top and bottom pipe sharing one x position and a fixed gap.
// The bottom pipe is a rigid follower of the top one.
type Pair struct {
	ID      uint64
	X       float64 // Left edge shared by both pipes
	TopY    float64 // Top-left y of the top pipe (usually negative)
	BottomY float64 // Top-left y of the bottom pipe
	Gap     float64 // Clear distance between the pipes, fixed at spawn
	VY      float64 // Shared vertical velocity while oscillating
	Frozen  bool    // Pinned to FrozenY
	FrozenY float64 // Top pipe y snapshot taken when the pair froze
	Passed  bool    // Scoring latch
}

// TopRect returns the collision rectangle of the top pipe.
func (p Pair) TopRect(w, h float64) core.Rect {
	return core.NewRect(p.X, p.TopY, w, h)
}

// BottomRect returns the collision rectangle of the bottom pipe.
func (p Pair) BottomRect(w, h float64) core.Rect {
	return core.NewRect(p.X, p.BottomY, w, h)
}

// ObstacleField handles spawning, movement, and removal of pipe pairs.
// Pairs are kept oldest first, which is also left-to-right order.
type ObstacleField struct {
	pairs       []Pair
	rng         core.Random
	cfg         config.FlappyConfig
	nextID      uint64
	nextSpawnAt int64
	armed       bool
}

// NewObstacleField creates an empty field drawing randomness from rng.
func NewObstacleField(cfg config.FlappyConfig, rng core.Random) *ObstacleField {
	return &ObstacleField{
		pairs: make([]Pair, 0, 8),
		rng:   rng,
		cfg:   cfg,
	}
}

// Reset clears all pairs and disarms the spawn timer.
func (f *ObstacleField) Reset() {
	f.pairs = f.pairs[:0]
	f.armed = false
	f.nextSpawnAt = 0
}

// Pairs returns the current pairs, oldest first. The slice must not be modified.
func (f *ObstacleField) Pairs() []Pair {
	return f.pairs
}

// Len returns the number of live pairs.
func (f *ObstacleField) Len() int {
	return len(f.pairs)
}

// ProcessSpawnTimer spawns a pair when the spawn interval has elapsed.
// The first call after a reset arms the timer one interval from now.
// Returns true if a pair was spawned.
func (f *ObstacleField) ProcessSpawnTimer(now int64, score float64) bool {
	interval := f.cfg.Obstacles.SpawnIntervalMS
	if !f.armed {
		f.armed = true
		f.nextSpawnAt = now + interval
		return false
	}
	if now < f.nextSpawnAt {
		return false
	}

	f.SpawnPair(score)
	f.nextSpawnAt += interval
	// Fell behind by more than one interval (suspended process): re-anchor
	// instead of spawning a burst of overlapping pairs.
	if now >= f.nextSpawnAt {
		f.nextSpawnAt = now + interval
	}
	return true
}

// SpawnPair appends a new pair at the right edge with the current gap and a
// random center inside the safe band.
func (f *ObstacleField) SpawnPair(score float64) Pair {
	margin := f.cfg.Obstacles.SpawnMargin
	span := int(f.cfg.GroundLine()) - 2*margin
	center := margin
	if span > 0 {
		center += f.rng.Intn(span + 1)
	}
	return f.SpawnPairAt(float64(center), CurrentGap(score))
}

// SpawnPairAt appends a new frozen pair with the given gap center and size.
func (f *ObstacleField) SpawnPairAt(center float64, gap int) Pair {
	g := float64(gap)
	top := center - g/2 - f.cfg.Obstacles.Height

	f.nextID++
	p := Pair{
		ID:      f.nextID,
		X:       f.cfg.World.Width,
		TopY:    top,
		BottomY: center + g/2,
		Gap:     g,
		Frozen:  true,
		FrozenY: top,
	}
	f.pairs = append(f.pairs, p)
	return p
}

// Tick scrolls every pair left and advances or pins its vertical motion
// according to the difficulty at score.
func (f *ObstacleField) Tick(score float64) {
	d := Difficulty(score)
	h := f.cfg.Obstacles.Height
	groundLine := f.cfg.GroundLine()

	for i := range f.pairs {
		p := &f.pairs[i]
		p.X -= f.cfg.Physics.ScrollSpeed

		minY := -h
		maxY := groundLine - (h + p.Gap)

		if d.OscillationEnabled {
			if p.Frozen {
				p.Frozen = false
				p.VY = f.randomVelocity(d.SpeedBound)
			}
			p.TopY += p.VY
			if p.TopY < minY {
				p.TopY = minY
				p.VY = -p.VY
			} else if p.TopY > maxY {
				p.TopY = maxY
				p.VY = -p.VY
			}
			if f.rng.Float64() < d.Factor*reseedChance {
				p.VY = f.randomVelocity(d.SpeedBound)
			}
		} else {
			if !p.Frozen {
				p.Frozen = true
				p.FrozenY = p.TopY
			}
			p.TopY = p.FrozenY
			p.VY = 0
		}

		p.BottomY = p.TopY + h + p.Gap
	}
}

// PurgeOffscreen removes whole pairs, oldest first, whose trailing edge is
// more than one pipe width past the left edge. Returns the number removed.
func (f *ObstacleField) PurgeOffscreen() int {
	w := f.cfg.Obstacles.Width
	n := 0
	for n < len(f.pairs) && f.pairs[n].X+w < -w {
		n++
	}
	if n > 0 {
		f.pairs = append(f.pairs[:0], f.pairs[n:]...)
	}
	return n
}

// randomVelocity returns a random sign times a magnitude in [0.3, bound].
func (f *ObstacleField) randomVelocity(bound float64) float64 {
	v := minOscillationSpeed
	if bound > minOscillationSpeed {
		v += f.rng.Float64() * (bound - minOscillationSpeed)
	}
	if f.rng.Intn(2) == 0 {
		v = -v
	}
	return v
}
