// Package config provides YAML-based configuration loading for the game:
// field size, layout offsets, timing, rotation direction, and scoring.
package config

import "time"

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Layout   LayoutConfig   `yaml:"layout"`
	Timing   TimingConfig   `yaml:"timing"`
	Controls ControlsConfig `yaml:"controls"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// FieldConfig defines the bucket size, borders included.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LayoutConfig defines where the field and score are drawn on screen.
type LayoutConfig struct {
	MarginX      int `yaml:"margin_x"`
	MarginY      int `yaml:"margin_y"`
	ScoreOffsetX int `yaml:"score_offset_x"` // Columns right of the field's right edge
	ScoreOffsetY int `yaml:"score_offset_y"` // Rows below the top margin
}

// TimingConfig defines tick length and derived gravity/clear timings.
type TimingConfig struct {
	TickMS       int `yaml:"tick_ms"`
	GravityEvery int `yaml:"gravity_every"` // Ticks per gravity step
	ClearDelayMS int `yaml:"clear_delay_ms"`
	GameOverMS   int `yaml:"game_over_ms"` // How long the final frame stays up
}

// ControlsConfig holds the rotation direction. Key bindings are fixed.
type ControlsConfig struct {
	RotateClockwise bool `yaml:"rotate_clockwise"`
}

// ScoringConfig maps rows cleared by one lock to points.
// Index 0 is zero rows; counts past the end use the last entry.
type ScoringConfig struct {
	LinePoints []int `yaml:"line_points"`
}

// Tick returns the tick interval.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// ClearDelay returns the row highlight duration.
func (t TimingConfig) ClearDelay() time.Duration {
	return time.Duration(t.ClearDelayMS) * time.Millisecond
}

// GameOverHold returns how long the game-over frame is shown before exit.
func (t TimingConfig) GameOverHold() time.Duration {
	return time.Duration(t.GameOverMS) * time.Millisecond
}

// ClearDelayTicks converts the highlight duration to whole ticks, rounding up.
func (t TimingConfig) ClearDelayTicks() int {
	if t.ClearDelayMS <= 0 || t.TickMS <= 0 {
		return 0
	}
	return (t.ClearDelayMS + t.TickMS - 1) / t.TickMS
}

// PointsFor returns the score awarded for clearing n rows at once.
func (s ScoringConfig) PointsFor(n int) int {
	if n <= 0 || len(s.LinePoints) == 0 {
		return 0
	}
	if n >= len(s.LinePoints) {
		return s.LinePoints[len(s.LinePoints)-1]
	}
	return s.LinePoints[n]
}
