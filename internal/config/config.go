// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all tunables of the simulation.
type FlappyConfig struct {
	Canvas  Canvas  `yaml:"canvas"`
	Physics Physics `yaml:"physics"`
	Pipes   Pipes   `yaml:"pipes"`
	Bird    Bird    `yaml:"bird"`
	Timing  Timing  `yaml:"timing"`
}

// Canvas is the logical playfield size.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines the bird's vertical motion.
type Physics struct {
	Gravity   int `yaml:"gravity"`    // Added to velocity every tick
	JumpPower int `yaml:"jump_power"` // Jump sets velocity to -JumpPower
}

// Pipes defines obstacle geometry and cadence.
type Pipes struct {
	Width         int `yaml:"width"`
	Gap           int `yaml:"gap"`
	Velocity      int `yaml:"velocity"`       // Leftward movement per tick
	SpawnDistance int `yaml:"spawn_distance"` // Distance from the right edge that triggers the next pipe
	HeightMargin  int `yaml:"height_margin"`  // Top heights are drawn from [0, canvas-gap-margin)
}

// Bird defines the player's hitbox and fixed column.
type Bird struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Timing defines the fixed simulation step.
type Timing struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// StartY returns the bird's initial vertical position.
func (c FlappyConfig) StartY() int {
	return c.Canvas.Height / 2
}

// TopHeightRange returns the exclusive upper bound for a pipe's top height.
func (c FlappyConfig) TopHeightRange() int {
	return c.Canvas.Height - c.Pipes.Gap - c.Pipes.HeightMargin
}

// Validate checks that the config describes a playable field.
func (c FlappyConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"canvas.width", c.Canvas.Width},
		{"canvas.height", c.Canvas.Height},
		{"pipes.width", c.Pipes.Width},
		{"pipes.gap", c.Pipes.Gap},
		{"pipes.velocity", c.Pipes.Velocity},
		{"pipes.spawn_distance", c.Pipes.SpawnDistance},
		{"bird.width", c.Bird.Width},
		{"bird.height", c.Bird.Height},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Physics.Gravity < 0 || c.Physics.JumpPower < 0 {
		return fmt.Errorf("%w: physics values must not be negative", ErrInvalidConfig)
	}
	if c.Pipes.HeightMargin < 0 {
		return fmt.Errorf("%w: pipes.height_margin must not be negative", ErrInvalidConfig)
	}
	if c.TopHeightRange() <= 0 {
		return fmt.Errorf("%w: canvas.height %d leaves no room for gap %d plus margin %d",
			ErrInvalidConfig, c.Canvas.Height, c.Pipes.Gap, c.Pipes.HeightMargin)
	}
	if c.Bird.X < 0 || c.Bird.X+c.Bird.Width > c.Canvas.Width {
		return fmt.Errorf("%w: bird.x %d does not fit the canvas", ErrInvalidConfig, c.Bird.X)
	}
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("%w: timing.tick_interval must be positive", ErrInvalidConfig)
	}
	return nil
}
