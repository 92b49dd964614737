// Package replay records play sessions as seed plus per-tick input and
// re-simulates them headlessly. The simulation only depends on its
// configuration, its seed, the input and the clock deltas, so a replay
// reproduces every run exactly.
package replay

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Version is bumped when the encoding changes incompatibly.
// Version 2 embeds the game configuration.
const Version = 2

// minVersion is the oldest encoding Decode still reads.
const minVersion = 1

// ErrVersion is returned when decoding a replay from another version.
var ErrVersion = errors.New("replay: unsupported version")

// Frame is one recorded tick.
type Frame struct {
	DeltaMS int64 `msgpack:"d"`
	Flap    bool  `msgpack:"f,omitempty"`
	Restart bool  `msgpack:"r,omitempty"`
}

// Input converts the frame back into an input frame.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	if f.Flap {
		in.Set(core.ActionFlap)
	}
	if f.Restart {
		in.Set(core.ActionRestart)
	}
	return in
}

// RunResult is the outcome of one run, captured on its terminal tick.
type RunResult struct {
	Score float64 `msgpack:"s"`
	Ticks uint64  `msgpack:"t"`
}

// Replay is a recorded session.
type Replay struct {
	Version  int         `msgpack:"v"`
	Seed     int64       `msgpack:"seed"`
	TickRate int         `msgpack:"rate"`
	Frames   []Frame     `msgpack:"frames"`
	Runs     []RunResult `msgpack:"runs"`

	// Config is the configuration the session was played with. Nil for
	// version 1 recordings.
	Config *config.FlappyConfig `msgpack:"cfg,omitempty"`
}

// Rules returns the configuration to re-simulate r with. Recordings that
// carry no configuration fall back to cfg at the recorded tick rate.
func (r Replay) Rules(cfg config.FlappyConfig) config.FlappyConfig {
	if r.Config != nil {
		return *r.Config
	}
	if r.TickRate > 0 {
		cfg.TickRate = r.TickRate
	}
	return cfg
}

// BestScore returns the best completed run score.
func (r Replay) BestScore() float64 {
	best := 0.0
	for _, run := range r.Runs {
		best = max(best, run.Score)
	}
	return best
}

// DurationMS returns the recorded wall time.
func (r Replay) DurationMS() int64 {
	var total int64
	for _, f := range r.Frames {
		total += f.DeltaMS
	}
	return total
}

// Encode serializes the replay with msgpack.
func Encode(r Replay) ([]byte, error) {
	r.Version = Version
	data, err := msgpack.Marshal(&r)
	if err != nil {
		return nil, fmt.Errorf("replay: encode: %w", err)
	}
	return data, nil
}

// Decode parses a msgpack-encoded replay.
func Decode(data []byte) (Replay, error) {
	var r Replay
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return Replay{}, fmt.Errorf("replay: decode: %w", err)
	}
	if r.Version < minVersion || r.Version > Version {
		return Replay{}, fmt.Errorf("%w: %d", ErrVersion, r.Version)
	}
	return r, nil
}

// Entry encodes the replay into a storage row.
func (r Replay) Entry() (storage.ReplayEntry, error) {
	data, err := Encode(r)
	if err != nil {
		return storage.ReplayEntry{}, err
	}
	return storage.ReplayEntry{
		Seed:       r.Seed,
		TickRate:   r.TickRate,
		Runs:       len(r.Runs),
		BestScore:  r.BestScore(),
		Ticks:      int64(len(r.Frames)),
		DurationMS: r.DurationMS(),
		Data:       data,
	}, nil
}

// FromEntry decodes the replay stored in a row.
func FromEntry(e storage.ReplayEntry) (Replay, error) {
	r, err := Decode(e.Data)
	if err != nil {
		return Replay{}, fmt.Errorf("replay %d: %w", e.ID, err)
	}
	return r, nil
}
