package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration play would use, after the search order
(--config, ~/.termtris/configs/tetris.yaml, ./configs/tetris.yaml,
built-in defaults) and flag overrides, as YAML.

The output is a valid config file:
  termtris config > ~/.termtris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.TetrisConfig, config.Source, error) {
	cfg, src, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, src, err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.Timing.TickMS = flagTick
	}
	if flags.Changed("clockwise") {
		cfg.Controls.RotateClockwise = flagClockwise
	}

	if err := cfg.Validate(); err != nil {
		return cfg, src, fmt.Errorf("flag overrides: %w", err)
	}
	return cfg, src, nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, src, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", src)
	_, err = out.Write(data)
	return err
}
