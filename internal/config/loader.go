package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MinFieldSize is the smallest bucket that still fits a 4x4 piece
// between the borders.
const MinFieldSize = 6

// Source names where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.termtris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadTetris(customPath string) (TetrisConfig, Source, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := parse(data, &cfg); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := parse(data, &cfg); err == nil {
				return cfg, SourceUser, cfg.Validate()
			}
			cfg = DefaultTetrisConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tetris.yaml")); err == nil {
		if err := parse(data, &cfg); err == nil {
			return cfg, SourceLocal, cfg.Validate()
		}
		cfg = DefaultTetrisConfig()
	}

	// Use embedded default YAML
	if err := parse(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

// parse decodes YAML over cfg, so absent keys keep their current values.
func parse(data []byte, cfg *TetrisConfig) error {
	return yaml.Unmarshal(data, cfg)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termtris", "configs", filename)
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Field.Width < MinFieldSize || c.Field.Height < MinFieldSize {
		return fmt.Errorf("config: field %dx%d smaller than %dx%d: %w",
			c.Field.Width, c.Field.Height, MinFieldSize, MinFieldSize, ErrInvalidConfig)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d: %w", c.Timing.TickMS, ErrInvalidConfig)
	}
	if c.Timing.GravityEvery <= 0 {
		return fmt.Errorf("config: gravity_every must be positive, got %d: %w", c.Timing.GravityEvery, ErrInvalidConfig)
	}
	if c.Timing.ClearDelayMS < 0 {
		return fmt.Errorf("config: clear_delay_ms must not be negative, got %d: %w", c.Timing.ClearDelayMS, ErrInvalidConfig)
	}
	if c.Timing.GameOverMS < 0 {
		return fmt.Errorf("config: game_over_ms must not be negative, got %d: %w", c.Timing.GameOverMS, ErrInvalidConfig)
	}
	if c.Layout.MarginX < 0 || c.Layout.MarginY < 0 {
		return fmt.Errorf("config: margins must not be negative: %w", ErrInvalidConfig)
	}
	if len(c.Scoring.LinePoints) == 0 {
		return fmt.Errorf("config: scoring.line_points is empty: %w", ErrInvalidConfig)
	}
	for i, p := range c.Scoring.LinePoints {
		if p < 0 {
			return fmt.Errorf("config: line_points[%d] is negative: %w", i, ErrInvalidConfig)
		}
	}
	return nil
}
