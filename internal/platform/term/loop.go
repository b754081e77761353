package term

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/logging"
	"github.com/vovakirdan/termtris/internal/platform/capture"
	"github.com/vovakirdan/termtris/internal/registry"
)

// ErrNoScreen is returned when the terminal reports no usable area.
var ErrNoScreen = errors.New("term: terminal has zero size")

// Options configures a tcell run.
type Options struct {
	Logger        *log.Logger   // Nil discards
	ScreenshotDir string        // Empty disables Ctrl+S
	GameOverHold  time.Duration // Final frame stays up this long; zero exits at once
}

// KeyAction maps a key event to a game action.
func KeyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyUp:
		return core.ActionRotate
	case tcell.KeyDown:
		return core.ActionDrop
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p':
			return core.ActionPause
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// Run plays game on t until quit or game over and returns the final state.
// The caller owns t and must Close it.
func Run(t *Terminal, game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	defer t.Guard()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultTick
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	screen := t.Screen()
	w, h := screen.Size()
	if cfg.ScreenW <= 0 || cfg.ScreenW > w {
		cfg.ScreenW = w
	}
	if cfg.ScreenH <= 0 || cfg.ScreenH > h {
		cfg.ScreenH = h
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		return core.GameState{}, ErrNoScreen
	}
	buf := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	game.Reset(cfg)
	state := game.State()
	logger.Info("backend started", "backend", "tcell", "game", game.ID(), "tick", cfg.Tick)

	draw := func() {
		game.Render(buf)
		Paint(screen, buf)
	}
	draw()

	ticker := time.NewTicker(cfg.Tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var queue core.InputQueue
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlS {
					saveScreenshot(logger, opts.ScreenshotDir, game.ID(), buf)
					continue
				}
				action := KeyAction(ev)
				if action == core.ActionQuit {
					logger.Info("quit requested", "game", game.ID(), "score", state.Score)
					return state, nil
				}
				if action != core.ActionNone && !queue.Push(action) {
					logger.Debug("input queue full, key dropped", "action", action)
				}

			case *tcell.EventResize:
				w, h := screen.Size()
				buf.Resize(w, h)
				screen.Sync()
				draw()
			}

		case <-ticker.C:
			result := game.Step(queue.Next())
			state = result.State
			logging.Events(logger, game.ID(), result.Events)
			draw()

			if state.GameOver {
				holdFinalFrame(events, opts.GameOverHold)
				logger.Info("backend stopped", "backend", "tcell", "score", state.Score)
				return state, nil
			}
		}
	}
}

// holdFinalFrame keeps the last frame on screen for hold. A quit key ends
// the wait early.
func holdFinalFrame(events <-chan tcell.Event, hold time.Duration) {
	if hold <= 0 {
		return
	}
	timer := time.NewTimer(hold)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			return
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok && KeyAction(key) == core.ActionQuit {
				return
			}
		}
	}
}

func saveScreenshot(logger *log.Logger, dir, gameID string, buf *core.Screen) {
	if dir == "" {
		return
	}
	path, err := capture.Save(dir, gameID, buf, time.Now())
	if err != nil {
		logger.Warn("screenshot failed", "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}
