package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
	"github.com/vovakirdan/termtris/internal/logging"
	"github.com/vovakirdan/termtris/internal/platform/capture"
	"github.com/vovakirdan/termtris/internal/platform/term"
	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/registry"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "tetris".

Controls:
  Left/Right - Shift the piece
  Up         - Rotate
  Down       - Free fall until the piece lands
  P          - Pause
  Ctrl+S     - Save a screenshot to ~/.termtris/screenshots
  Esc/Q      - Quit

Backends:
  tea    - Bubble Tea program (default)
  tcell  - Raw tcell screen with a poll loop

Examples:
  termtris play
  termtris play tetris_cw
  termtris play --backend tcell --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Terminal backend: tea or tcell")
}

// sizer is implemented by games that know the screen area they draw into.
type sizer interface {
	Size() (w, h int)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'termtris list' to see available games", gameID)
	}
	if flagBackend != backendTea && flagBackend != backendTcell {
		return fmt.Errorf("unknown backend %q, expected %s or %s", flagBackend, backendTea, backendTcell)
	}

	logger, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel})
	if err != nil {
		return err
	}
	defer logger.Close()

	cfg, src, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", src, "field", fmt.Sprintf("%dx%d", cfg.Field.Width, cfg.Field.Height))

	tetris.SetConfig(cfg)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	width, height, err = screenArea(game, flagBackend, width, height)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Tick:    cfg.Timing.Tick(),
		Seed:    seed,
	}
	logger.Info("starting game", "game", gameID, "backend", flagBackend, "seed", seed)

	shotDir, err := capture.DefaultDir()
	if err != nil {
		logger.Warn("screenshots disabled", "error", err)
	}

	var state core.GameState
	switch flagBackend {
	case backendTcell:
		state, err = playTcell(game, rc, term.Options{
			Logger:        logger.Logger,
			ScreenshotDir: shotDir,
			GameOverHold:  cfg.Timing.GameOverHold(),
		})
	default:
		state, err = tui.Run(game, rc, tui.Options{
			Logger:        logger.Logger,
			ScreenshotDir: shotDir,
			GameOverHold:  cfg.Timing.GameOverHold(),
		})
	}
	if err != nil {
		logger.Error("game aborted", "error", err)
		return err
	}

	// Terminal is restored at this point
	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d (%d lines)\n", state.Score, state.Lines)
	return nil
}

// screenArea returns the screen size the game draws into on a terminal of
// termW x termH. The tea backend keeps one extra row for the help line.
func screenArea(game registry.Game, backend string, termW, termH int) (w, h int, err error) {
	reserved := 0
	if backend == backendTea {
		reserved = tui.HelpHeight
	}

	s, ok := game.(sizer)
	if !ok {
		return termW, max(termH-reserved, 0), nil
	}
	gw, gh := s.Size()
	if gw > termW || gh+reserved > termH {
		return 0, 0, fmt.Errorf("terminal is %dx%d, %s needs at least %dx%d with the %s backend",
			termW, termH, game.ID(), gw, gh+reserved, backend)
	}
	return gw, gh, nil
}

// playTcell owns the raw terminal for the duration of one game.
func playTcell(game registry.Game, rc core.RuntimeConfig, opts term.Options) (core.GameState, error) {
	t, err := term.Open()
	if err != nil {
		return core.GameState{}, err
	}
	defer t.Close()

	return term.Run(t, game, rc, opts)
}
