package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the reference tuning.
// It mirrors defaults/flappy.yaml and backs it up if the embed fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: Canvas{
			Width:  600,
			Height: 800,
		},
		Physics: Physics{
			Gravity:   1,
			JumpPower: 10,
		},
		Pipes: Pipes{
			Width:         100,
			Gap:           200,
			Velocity:      3,
			SpawnDistance: 120,
			HeightMargin:  100,
		},
		Bird: Bird{
			X:      100,
			Width:  50,
			Height: 50,
		},
		Timing: Timing{
			TickInterval: 20 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
