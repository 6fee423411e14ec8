// Package config provides YAML-based configuration loading for the dodge game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DodgeConfig contains all tunables of the game. It is treated as an
// immutable value once loaded and is passed to the game at construction.
type DodgeConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Timing    TimingConfig   `yaml:"timing"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// FieldConfig defines the playfield size in pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's car.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	MoveSpeed    int `yaml:"move_speed"`
	BottomMargin int `yaml:"bottom_margin"`
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	MinWidth       int `yaml:"min_width"`
	MaxWidth       int `yaml:"max_width"`
	Height         int `yaml:"height"`
	BaseSpeed      int `yaml:"base_speed"`
	SpeedScoreStep int `yaml:"speed_score_step"`
}

// TimingConfig defines frame pacing and the spawn clock.
type TimingConfig struct {
	FPS             int `yaml:"fps"`
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
	KeyHoldMS       int `yaml:"key_hold_ms"`
}

// ScoringConfig defines how survived frames map to the display score.
type ScoringConfig struct {
	FramesPerPoint int `yaml:"frames_per_point"`
}

// SpawnInterval returns the wall-clock period between obstacle spawns.
func (t TimingConfig) SpawnInterval() time.Duration {
	return time.Duration(t.SpawnIntervalMS) * time.Millisecond
}

// KeyHold returns how long a terminal key press counts as held.
func (t TimingConfig) KeyHold() time.Duration {
	return time.Duration(t.KeyHoldMS) * time.Millisecond
}

// FrameDuration returns the target duration of one frame.
func (t TimingConfig) FrameDuration() time.Duration {
	if t.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.FPS)
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c DodgeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0,
		"field size must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.Width <= c.Field.Width,
		"player width %d exceeds field width %d", c.Player.Width, c.Field.Width)
	check(c.Player.Height+c.Player.BottomMargin <= c.Field.Height,
		"player does not fit vertically in a field of height %d", c.Field.Height)
	check(c.Player.MoveSpeed >= 0, "player move_speed must not be negative")
	check(c.Player.BottomMargin >= 0, "player bottom_margin must not be negative")
	check(c.Obstacles.MinWidth > 0 && c.Obstacles.MinWidth <= c.Obstacles.MaxWidth,
		"obstacle width range [%d, %d] is invalid", c.Obstacles.MinWidth, c.Obstacles.MaxWidth)
	check(c.Obstacles.MaxWidth <= c.Field.Width,
		"obstacle max_width %d exceeds field width %d", c.Obstacles.MaxWidth, c.Field.Width)
	check(c.Obstacles.Height > 0, "obstacle height must be positive")
	check(c.Obstacles.BaseSpeed > 0, "obstacle base_speed must be positive")
	check(c.Obstacles.SpeedScoreStep > 0, "obstacle speed_score_step must be positive")
	check(c.Timing.FPS > 0, "timing fps must be positive")
	check(c.Timing.SpawnIntervalMS > 0, "timing spawn_interval_ms must be positive")
	check(c.Timing.KeyHoldMS >= 0, "timing key_hold_ms must not be negative")
	check(c.Scoring.FramesPerPoint > 0, "scoring frames_per_point must be positive")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
