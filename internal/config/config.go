// Package config provides YAML-based game configuration loading for the
// flappy simulation and its platform collaborators.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	TickRate  int            `yaml:"tick_rate" msgpack:"tick_rate"`
	World     WorldConfig    `yaml:"world" msgpack:"world"`
	Obstacles ObstacleConfig `yaml:"obstacles" msgpack:"obstacles"`
	Physics   PhysicsConfig  `yaml:"physics" msgpack:"physics"`
	Actor     ActorConfig    `yaml:"actor" msgpack:"actor"`
	Theme     ThemeConfig    `yaml:"theme" msgpack:"theme"`
	Audio     AudioConfig    `yaml:"audio" msgpack:"audio"`
	Replay    ReplayConfig   `yaml:"replay" msgpack:"replay"`
}

// WorldConfig defines the logical playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" msgpack:"width"`
	Height float64 `yaml:"height" msgpack:"height"`
}

// ObstacleConfig defines pipe geometry and spawn cadence.
type ObstacleConfig struct {
	Width           float64 `yaml:"width" msgpack:"width"`
	Height          float64 `yaml:"height" msgpack:"height"`
	SpawnIntervalMS int64   `yaml:"spawn_interval_ms" msgpack:"spawn_interval_ms"`
	SpawnMargin     int     `yaml:"spawn_margin" msgpack:"spawn_margin"` // Keeps gap centers away from the top and the ground strip
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" msgpack:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse" msgpack:"flap_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed" msgpack:"scroll_speed"`
}

// ActorConfig defines the actor box and its cosmetic animation.
type ActorConfig struct {
	Width            float64 `yaml:"width" msgpack:"width"`
	Height           float64 `yaml:"height" msgpack:"height"`
	FlapLockMS       int64   `yaml:"flap_lock_ms" msgpack:"flap_lock_ms"`
	FramePeriodMS    int64   `yaml:"frame_period_ms" msgpack:"frame_period_ms"`
	UpBiasVelocity   float64 `yaml:"up_bias_velocity" msgpack:"up_bias_velocity"`
	DownBiasVelocity float64 `yaml:"down_bias_velocity" msgpack:"down_bias_velocity"`
	PitchGain        float64 `yaml:"pitch_gain" msgpack:"pitch_gain"`
	PitchUpMax       float64 `yaml:"pitch_up_max" msgpack:"pitch_up_max"`
	PitchDownMax     float64 `yaml:"pitch_down_max" msgpack:"pitch_down_max"`
	PitchLerpRate    float64 `yaml:"pitch_lerp_rate" msgpack:"pitch_lerp_rate"`
}

// ThemeConfig defines the day/night cycle.
type ThemeConfig struct {
	TransitionMS   int64 `yaml:"transition_ms" msgpack:"transition_ms"`
	PointsPerPhase int   `yaml:"points_per_phase" msgpack:"points_per_phase"`
}

// AudioConfig defines the synthesized sound effects.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled" msgpack:"enabled"`
	SampleRate   int     `yaml:"sample_rate" msgpack:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume" msgpack:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume" msgpack:"music_volume"` // Relative to master_volume; 0 turns the music off
}

// ReplayConfig controls replay recording.
type ReplayConfig struct {
	Enabled bool   `yaml:"enabled" msgpack:"enabled"`
	DBPath  string `yaml:"db_path" msgpack:"db_path"`
}

// GroundHeight returns the height of the ground strip.
func (c FlappyConfig) GroundHeight() float64 {
	return c.Obstacles.Height / 8
}

// GroundLine returns the y coordinate of the top of the ground strip.
func (c FlappyConfig) GroundLine() float64 {
	return c.World.Height - c.GroundHeight()
}

// ActorStart returns the actor's initial top-left position.
func (c FlappyConfig) ActorStart() (float64, float64) {
	return c.World.Width / 8, c.World.Height / 2
}

// TickMillis returns the nominal tick duration in milliseconds.
func (c FlappyConfig) TickMillis() int64 {
	if c.TickRate <= 0 {
		return 16
	}
	return int64(1000 / c.TickRate)
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable world.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)
	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle size must be positive, got %vx%v", c.Obstacles.Width, c.Obstacles.Height)
	check(c.Obstacles.SpawnIntervalMS > 0, "spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	check(c.Obstacles.SpawnMargin >= 0, "spawn_margin must not be negative, got %d", c.Obstacles.SpawnMargin)
	check(float64(2*c.Obstacles.SpawnMargin) <= c.GroundLine(), "spawn band is empty: margin %d above ground line %v", c.Obstacles.SpawnMargin, c.GroundLine())
	check(c.Physics.ScrollSpeed > 0, "scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	check(c.Actor.Width > 0 && c.Actor.Height > 0, "actor size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height)
	check(c.Actor.FramePeriodMS > 0, "frame_period_ms must be positive, got %d", c.Actor.FramePeriodMS)
	check(c.Actor.PitchDownMax <= c.Actor.PitchUpMax, "pitch_down_max %v exceeds pitch_up_max %v", c.Actor.PitchDownMax, c.Actor.PitchUpMax)
	check(c.Theme.TransitionMS > 0, "transition_ms must be positive, got %d", c.Theme.TransitionMS)
	check(c.Theme.PointsPerPhase > 0, "points_per_phase must be positive, got %d", c.Theme.PointsPerPhase)
	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "master_volume must be within [0, 1], got %v", c.Audio.MasterVolume)
	check(c.Audio.MusicVolume >= 0 && c.Audio.MusicVolume <= 1, "music_volume must be within [0, 1], got %v", c.Audio.MusicVolume)

	return errors.Join(errs...)
}
