package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ErrMismatch is returned by Verify when a re-simulation disagrees with the
// recorded results.
var ErrMismatch = errors.New("replay: mismatch")

// Result is the outcome of a headless re-simulation.
type Result struct {
	Runs  []RunResult
	Final flappy.Snapshot
}

// Run re-simulates r with its recorded configuration, or with fallback
// when the recording has none. The clock restarts at zero; only the
// recorded deltas matter.
func Run(fallback config.FlappyConfig, r Replay) Result {
	w := flappy.New(r.Rules(fallback), core.NewRandom(r.Seed))

	var res Result
	clock := &core.ManualClock{}
	for _, f := range r.Frames {
		wasTerminal := w.Terminal()
		w.Step(f.Input(), clock.Advance(f.DeltaMS))
		w.DrainEvents()
		if !wasTerminal && w.Terminal() {
			res.Runs = append(res.Runs, RunResult{Score: w.Score(), Ticks: w.Ticks()})
		}
	}
	res.Final = w.Snapshot()
	return res
}

// Verify re-simulates r and checks every run against the recording.
func Verify(fallback config.FlappyConfig, r Replay) (Result, error) {
	res := Run(fallback, r)

	if len(res.Runs) != len(r.Runs) {
		return res, fmt.Errorf("%w: recorded %d runs, simulated %d", ErrMismatch, len(r.Runs), len(res.Runs))
	}
	for i, want := range r.Runs {
		got := res.Runs[i]
		if got != want {
			return res, fmt.Errorf("%w: run %d recorded score %v in %d ticks, simulated score %v in %d ticks",
				ErrMismatch, i+1, want.Score, want.Ticks, got.Score, got.Ticks)
		}
	}
	return res, nil
}
