package replay

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Recorder captures a live session tick by tick.
type Recorder struct {
	replay  Replay
	lastNow int64
	started bool
}

// NewRecorder starts a recording for a world created from cfg and seed.
// Audio and storage settings do not affect the simulation and are not kept.
func NewRecorder(seed int64, cfg config.FlappyConfig) *Recorder {
	cfg.Audio = config.AudioConfig{}
	cfg.Replay = config.ReplayConfig{}
	return &Recorder{
		replay: Replay{
			Version:  Version,
			Seed:     seed,
			TickRate: cfg.TickRate,
			Frames:   make([]Frame, 0, 1024),
			Config:   &cfg,
		},
	}
}

// Record appends the input given to the world at timestamp now.
func (r *Recorder) Record(in core.InputFrame, now int64) {
	delta := int64(0)
	if r.started {
		delta = now - r.lastNow
	}
	r.lastNow, r.started = now, true

	r.replay.Frames = append(r.replay.Frames, Frame{
		DeltaMS: delta,
		Flap:    in.Has(core.ActionFlap),
		Restart: in.Has(core.ActionRestart),
	})
}

// EndRun records the result of a run that just became terminal.
func (r *Recorder) EndRun(score float64, ticks uint64) {
	r.replay.Runs = append(r.replay.Runs, RunResult{Score: score, Ticks: ticks})
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.replay.Frames)
}

// Replay returns a copy of the recording so far.
func (r *Recorder) Replay() Replay {
	out := r.replay
	out.Frames = append([]Frame(nil), r.replay.Frames...)
	out.Runs = append([]RunResult(nil), r.replay.Runs...)
	if r.replay.Config != nil {
		cfg := *r.replay.Config
		out.Config = &cfg
	}
	return out
}
