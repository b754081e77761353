// termtris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	termtris play [game]      - Play (default: tetris)
//	termtris list             - List game variants
//	termtris pieces           - Show the piece catalog in every rotation
//	termtris config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for a reproducible piece order
//	--tick <ms>         - Tick interval override
//	--clockwise         - Rotate clockwise instead of counter-clockwise
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/termtris/internal/games/tetris"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagTick      int
	flagClockwise bool
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "termtris - falling blocks in your terminal",
	Long: `termtris is a terminal falling-block puzzle game.

Available commands:
  play     - Play a game (default variant: tetris)
  list     - Show the game variants
  pieces   - Show the piece catalog in all four rotations
  config   - Print the effective configuration as YAML

Examples:
  termtris play
  termtris play tetris_cw --backend tcell
  termtris play --seed 42 --tick 40
  termtris config --config ./my-tetris.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Tick interval in milliseconds (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagClockwise, "clockwise", false, "Rotate clockwise (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(configCmd)
}
