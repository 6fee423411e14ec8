package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration. It mirrors
// defaults/dodge.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 640,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       80,
			MoveSpeed:    6,
			BottomMargin: 10,
		},
		Obstacles: ObstacleConfig{
			MinWidth:       40,
			MaxWidth:       120,
			Height:         30,
			BaseSpeed:      3,
			SpeedScoreStep: 10,
		},
		Timing: TimingConfig{
			FPS:             60,
			SpawnIntervalMS: 800,
			KeyHoldMS:       150,
		},
		Scoring: ScoringConfig{
			FramesPerPoint: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
