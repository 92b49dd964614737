package flappy

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestWorld(seed int64) *World {
	return New(config.Default(), core.NewRandom(seed))
}

var (
	noInput      = core.NewInputFrame()
	flapInput    = core.InputOf(core.ActionFlap)
	restartInput = core.InputOf(core.ActionRestart)
)

// runUntilTerminal steps with no input until the world ends or limit ticks pass.
func runUntilTerminal(w *World, clock *core.ManualClock, limit int) int {
	for i := 0; i < limit; i++ {
		w.Step(noInput, clock.Advance(16))
		if w.Terminal() {
			return i + 1
		}
	}
	return limit
}

func TestWorldDeterminism(t *testing.T) {
	// Same seed, inputs and clock must produce identical worlds.
	run := func() Snapshot {
		w := newTestWorld(12345)
		clock := &core.ManualClock{}
		for i := 0; i < 600 && !w.Terminal(); i++ {
			in := noInput
			if i%30 == 0 {
				in = flapInput
			}
			w.Step(in, clock.Advance(16))
		}
		return w.Snapshot()
	}

	s1, s2 := run(), run()

	if s1.Score != s2.Score || s1.Tick != s2.Tick || s1.Terminal != s2.Terminal {
		t.Errorf("runs differ: score %v/%v ticks %d/%d terminal %v/%v",
			s1.Score, s2.Score, s1.Tick, s2.Tick, s1.Terminal, s2.Terminal)
	}
	if s1.Actor != s2.Actor {
		t.Errorf("actors differ: %+v vs %+v", s1.Actor, s2.Actor)
	}
	if !slices.Equal(s1.Pipes, s2.Pipes) {
		t.Errorf("pipes differ:\n%+v\n%+v", s1.Pipes, s2.Pipes)
	}
}

func TestWorldGravityFallToGround(t *testing.T) {
	w := newTestWorld(1)
	clock := &core.ManualClock{}

	prevY := w.Actor().Y
	n := 0
	for !w.Terminal() {
		w.Step(noInput, clock.NowMillis())
		n++
		if n > 200 {
			t.Fatal("actor never reached the ground")
		}
		if w.Terminal() {
			break
		}
		if got, want := w.Actor().Velocity, 0.4*float64(n); math.Abs(got-want) > 1e-9 {
			t.Fatalf("tick %d: velocity = %v, expected %v", n, got, want)
		}
		if w.Actor().Y < prevY {
			t.Fatalf("tick %d: y decreased from %v to %v", n, prevY, w.Actor().Y)
		}
		prevY = w.Actor().Y
	}

	if w.Actor().Velocity != 0 {
		t.Errorf("velocity after ground contact = %v, expected 0", w.Actor().Velocity)
	}
	if w.Actor().Y != 542 {
		t.Errorf("y after ground contact = %v, expected 542", w.Actor().Y)
	}
	if events := w.DrainEvents(); !slices.Equal(events, []Event{EventFall}) {
		t.Errorf("events = %v, expected [fall]", events)
	}
}

func TestWorldFlapEmitsJump(t *testing.T) {
	w := newTestWorld(1)

	w.Step(flapInput, 0)

	if got := w.Actor().Velocity; math.Abs(got-(-5.6)) > 1e-9 {
		t.Errorf("velocity after flap tick = %v, expected -5.6", got)
	}
	if events := w.DrainEvents(); !slices.Equal(events, []Event{EventJump}) {
		t.Errorf("events = %v, expected [jump]", events)
	}
	if events := w.DrainEvents(); events != nil {
		t.Errorf("second drain = %v, expected nil", events)
	}
}

func TestWorldScoresOncePerPair(t *testing.T) {
	w := newTestWorld(1)
	w.field.SpawnPairAt(337, 180)
	w.field.pairs[0].X = -17 // trailing edge reaches 45 after one tick

	w.Step(noInput, 0)
	if w.Score() != 0 {
		t.Fatalf("score = %v before the actor clears the pair", w.Score())
	}

	w.Step(noInput, 16)
	if w.Score() != 1 {
		t.Fatalf("score = %v, expected 1 on the first tick past the trailing edge", w.Score())
	}

	for i := 0; i < 20; i++ {
		w.Step(noInput, int64(32+16*i))
	}
	if w.Score() != 1 {
		t.Errorf("score = %v, expected the passed latch to hold at 1", w.Score())
	}

	scores := 0
	for _, e := range w.DrainEvents() {
		if e == EventScore {
			scores++
		}
	}
	if scores != 1 {
		t.Errorf("score events = %d, expected 1", scores)
	}
}

func TestWorldObstacleCrash(t *testing.T) {
	w := newTestWorld(1)
	// A pair sitting on the actor with the gap far above it.
	w.field.SpawnPairAt(150, 120)
	w.field.pairs[0].X = 50

	w.Step(noInput, 0)

	if !w.Terminal() {
		t.Fatal("expected a crash")
	}
	if events := w.DrainEvents(); !slices.Equal(events, []Event{EventCrash}) {
		t.Errorf("events = %v, expected [crash]", events)
	}
}

func TestWorldTerminalUntilRestart(t *testing.T) {
	w := newTestWorld(1)
	clock := &core.ManualClock{}
	runUntilTerminal(w, clock, 500)
	if !w.Terminal() {
		t.Fatal("setup: expected terminal state")
	}
	w.DrainEvents()

	ticks := w.Ticks()
	y := w.Actor().Y
	for i := 0; i < 30; i++ {
		in := noInput
		if i%2 == 0 {
			in = flapInput
		}
		w.Step(in, clock.Advance(16))
		if !w.Terminal() {
			t.Fatalf("terminal cleared without restart at step %d", i)
		}
	}
	if w.Ticks() != ticks || w.Actor().Y != y {
		t.Error("terminal world should not simulate")
	}
	if events := w.DrainEvents(); events != nil {
		t.Errorf("terminal world emitted %v", events)
	}
}

func TestWorldRestart(t *testing.T) {
	w := newTestWorld(1)
	clock := &core.ManualClock{}

	// Score one pair and reach night to dirty every component.
	w.score = 24
	w.field.SpawnPairAt(337, 180)
	w.field.pairs[0].X = -20
	w.Step(noInput, clock.Advance(16))
	if !w.Theme().Transitioning() {
		t.Fatal("setup: expected a theme transition")
	}
	runUntilTerminal(w, clock, 500)
	if !w.Terminal() {
		t.Fatal("setup: expected terminal state")
	}

	w.Step(restartInput, clock.Advance(16))

	if w.Terminal() {
		t.Error("terminal should clear on restart")
	}
	if w.Score() != 0 {
		t.Errorf("score = %v, expected 0", w.Score())
	}
	a := w.Actor()
	if a.X != 45 || a.Y != 320 || a.Velocity != 0 || a.Pitch != 0 {
		t.Errorf("actor not reset: %+v", a)
	}
	if w.Obstacles().Len() != 0 {
		t.Errorf("obstacles = %d, expected 0", w.Obstacles().Len())
	}
	if w.Theme().Phase() != PhaseDay || w.Theme().Transitioning() {
		t.Error("theme should be steady day after restart")
	}
	if w.Ticks() != 0 {
		t.Errorf("ticks = %d, expected 0", w.Ticks())
	}
}

func TestWorldRestartIgnoredWhilePlaying(t *testing.T) {
	w := newTestWorld(1)
	w.Step(noInput, 0)
	w.Step(noInput, 16)

	w.Step(restartInput, 32)

	if w.Ticks() != 3 {
		t.Errorf("ticks = %d, expected restart to be ignored while playing", w.Ticks())
	}
}

func TestWorldThemeFollowsScore(t *testing.T) {
	w := newTestWorld(1)
	w.score = 24
	w.field.SpawnPairAt(337, 180)
	w.field.pairs[0].X = -20

	w.Step(noInput, 1000) // crosses 25 at this tick

	if w.Score() != 25 {
		t.Fatalf("score = %v, expected 25", w.Score())
	}
	st := w.Snapshot().Theme
	if !st.Transitioning || st.From != PhaseDay || st.To != PhaseNight || w.Theme().StartedAt() != 1000 {
		t.Fatalf("theme = %+v started %d, expected day to night at 1000", st, w.Theme().StartedAt())
	}

	w.Step(noInput, 1799)
	if !w.Theme().Transitioning() {
		t.Error("should still be transitioning 799ms later")
	}

	w.Step(noInput, 1800)
	if w.Theme().Transitioning() || w.Theme().Phase() != PhaseNight {
		t.Error("expected steady night at 800ms")
	}
}

func TestWorldSpawnsOnInterval(t *testing.T) {
	w := newTestWorld(5)
	clock := &core.ManualClock{}

	// Hover by flapping every 30 ticks.
	for i := 0; i < 100; i++ {
		in := noInput
		if i%30 == 0 {
			in = flapInput
		}
		w.Step(in, clock.Advance(16))
	}

	// Armed at 16ms, first spawn at 1516ms (tick 95).
	if w.Obstacles().Len() != 1 {
		t.Errorf("pairs = %d, expected 1", w.Obstacles().Len())
	}
}

func TestWorldRigidPairsEveryTick(t *testing.T) {
	w := newTestWorld(77)
	w.score = 15 // oscillating band
	clock := &core.ManualClock{}

	for i := 0; i < 2000; i++ {
		if w.Terminal() {
			w.Step(restartInput, clock.Advance(16))
			w.score = 15
			continue
		}
		w.Actor().Y = 200 // keep the run alive, collisions aside
		w.Actor().Velocity = 0
		w.Step(noInput, clock.Advance(16))
		for _, p := range w.Obstacles().Pairs() {
			assertRigidPair(t, p)
		}
	}
}

func TestSnapshotDisplayScoreTruncates(t *testing.T) {
	w := newTestWorld(1)
	w.score = 7.5

	snap := w.Snapshot()
	if snap.DisplayScore != 7 || snap.Score != 7.5 {
		t.Errorf("score = %v display = %d, expected 7.5 / 7", snap.Score, snap.DisplayScore)
	}
	if snap.GroundLine != 576 || snap.WorldW != 360 || snap.WorldH != 640 {
		t.Errorf("world geometry = %vx%v ground %v", snap.WorldW, snap.WorldH, snap.GroundLine)
	}
}

func TestSnapshotListsPipesInOrder(t *testing.T) {
	w := newTestWorld(1)
	w.field.SpawnPairAt(300, 150)
	w.field.SpawnPairAt(200, 150)

	pipes := w.Snapshot().Pipes
	if len(pipes) != 4 {
		t.Fatalf("pipes = %d, expected 4", len(pipes))
	}
	if pipes[0].Kind != PipeTop || pipes[1].Kind != PipeBottom || pipes[0].PairID != pipes[1].PairID {
		t.Errorf("first pair out of order: %+v %+v", pipes[0], pipes[1])
	}
	if pipes[2].PairID <= pipes[0].PairID {
		t.Error("pairs should be listed oldest first")
	}
	if pipes[0].Box.Y != -287 || pipes[1].Box.Y != 375 {
		t.Errorf("pipe boxes = %+v %+v", pipes[0].Box, pipes[1].Box)
	}
}
