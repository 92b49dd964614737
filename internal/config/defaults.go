package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		TickRate: 60,
		World: WorldConfig{
			Width:  360,
			Height: 640,
		},
		Obstacles: ObstacleConfig{
			Width:           64,
			Height:          512,
			SpawnIntervalMS: 1500,
			SpawnMargin:     120,
		},
		Physics: PhysicsConfig{
			Gravity:     0.4,
			FlapImpulse: -6,
			ScrollSpeed: 2,
		},
		Actor: ActorConfig{
			Width:            44,
			Height:           34,
			FlapLockMS:       120,
			FramePeriodMS:    100,
			UpBiasVelocity:   -2,
			DownBiasVelocity: 3,
			PitchGain:        3,
			PitchUpMax:       25,
			PitchDownMax:     -90,
			PitchLerpRate:    10,
		},
		Theme: ThemeConfig{
			TransitionMS:   800,
			PointsPerPhase: 25,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.4,
			MusicVolume:  0.5,
		},
		Replay: ReplayConfig{
			Enabled: true,
			DBPath:  "~/.flappy/replays.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
