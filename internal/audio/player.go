// Package audio plays synthesized sound effects for simulation events over
// a looping background tune.
// Failures never reach the caller: a sink that cannot play stays silent.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Sink consumes simulation events.
type Sink interface {
	Play(e flappy.Event)
	Close()
}

// Noop is a silent sink.
type Noop struct{}

func (Noop) Play(flappy.Event) {}
func (Noop) Close()            {}

// Player mixes event sounds onto the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	music       float64 // Background loop level relative to volume
	logger      *log.Logger
	initialized bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.MasterVolume,
		music:  cfg.MusicVolume,
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer with the background loop.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	p.startMusic()
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sound for e. Unknown events and an uninitialized player
// are ignored.
func (p *Player) Play(e flappy.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Effect(e, p.rate, p.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()

	if p.logger != nil {
		p.logger.Debug("sound", "event", e, "voices", p.mixer.Len())
	}
}

// startMusic adds the background loop to the mixer. The loop never ends,
// so it stays mixed until Close clears it.
func (p *Player) startMusic() {
	if m := Music(p.rate, p.music*p.volume); m != nil {
		p.mixer.Add(m)
	}
}

// Close stops all sounds, the music included, and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Open returns a ready Player, or Noop when audio is disabled or the speaker
// cannot be opened.
func Open(cfg config.AudioConfig, logger *log.Logger) Sink {
	if !cfg.Enabled {
		return Noop{}
	}
	p := NewPlayer(cfg, logger)
	if err := p.Init(); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Noop{}
	}
	return p
}
