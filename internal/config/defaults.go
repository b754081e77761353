package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 12x18 bucket,
// 50ms ticks, gravity every 5 ticks, 200ms row highlight.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: FieldConfig{
			Width:  12,
			Height: 18,
		},
		Layout: LayoutConfig{
			MarginX:      5,
			MarginY:      2,
			ScoreOffsetX: 10,
			ScoreOffsetY: 2,
		},
		Timing: TimingConfig{
			TickMS:       50,
			GravityEvery: 5,
			ClearDelayMS: 200,
			GameOverMS:   1500,
		},
		Controls: ControlsConfig{
			RotateClockwise: false,
		},
		Scoring: ScoringConfig{
			LinePoints: []int{0, 100, 300, 500, 800},
		},
	}
}
