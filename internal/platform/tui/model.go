package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/logging"
	"github.com/vovakirdan/termtris/internal/platform/capture"
	"github.com/vovakirdan/termtris/internal/registry"
)

// HelpHeight is the number of rows reserved under the game for key help.
const HelpHeight = 1

// Options configures a Bubble Tea run.
type Options struct {
	Logger        *log.Logger   // Nil discards
	ScreenshotDir string        // Empty disables Ctrl+S
	GameOverHold  time.Duration // Final frame stays up this long; zero exits at once
}

// gameOverMsg ends the program once the game-over frame has been shown.
type gameOverMsg struct{}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	queue     core.InputQueue
	gameState core.GameState
	logger    *log.Logger
	shotDir   string
	hold      time.Duration
	quitting  bool
}

// NewModel creates a model and starts a fresh game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
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

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		gameState: game.State(),
		logger:    logger,
		shotDir:   opts.ScreenshotDir,
		hold:      opts.GameOverHold,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.gameState.GameOver {
			return m, nil
		}
		return m.handleTick()

	case gameOverMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues the key's action; each tick consumes one.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.logger.Info("quit requested", "game", m.game.ID(), "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
		}
	default:
		if !m.queue.Push(action) {
			m.logger.Debug("input queue full, key dropped", "action", action)
		}
	}

	return m, nil
}

// handleResize keeps the field in place; only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-HelpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the oldest queued key.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.queue.Next())
	m.gameState = result.State
	logging.Events(m.logger, m.game.ID(), result.Events)

	if m.gameState.GameOver {
		if m.hold <= 0 {
			m.quitting = true
			return m, tea.Quit
		}
		// Ticks stop here; the final frame stays until the hold expires.
		return m, tea.Tick(m.hold, func(time.Time) tea.Msg {
			return gameOverMsg{}
		})
	}

	return m, tickCmd(m.config.Tick)
}

// saveScreenshot writes the current frame as text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.screen)
	path, err := capture.Save(m.shotDir, m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run plays game until quit or game over and returns the final state.
// Bubble Tea restores the terminal on every exit path.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)
	model.logger.Info("backend started", "backend", "tea", "game", game.ID(), "tick", model.config.Tick)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return model.gameState, fmt.Errorf("tui: %w", err)
	}

	state := model.gameState
	if fm, ok := final.(Model); ok {
		state = fm.gameState
	}
	model.logger.Info("backend stopped", "backend", "tea", "score", state.Score)
	return state, nil
}
