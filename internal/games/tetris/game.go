// Package tetris implements the falling-block puzzle game.
// Pieces drop into a bordered bucket; completed rows are cleared and scored.
// The package is pure logic: backends feed it one InputFrame per tick and
// paint the core.Screen it renders into.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/registry"
)

// Phase is the state machine position of the game loop.
type Phase int

const (
	PhaseFalling  Phase = iota // A piece is under player control
	PhaseClearing              // A full row is highlighted, input ignored
	PhaseOver                  // Bucket full, no more transitions
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseClearing:
		return "clearing"
	case PhaseOver:
		return "bucket_full"
	default:
		return "unknown"
	}
}

// Active is the falling piece: catalog index, rotation, and the field
// position of its template's top-left cell.
type Active struct {
	Piece    int
	Rotation Rotation
	X, Y     int
}

// Game owns the whole game state. Only the backend loop that created it
// may call its methods.
type Game struct {
	id        string
	title     string
	cfg       config.TetrisConfig
	clockwise bool

	rng   *rand.Rand
	tick  uint64
	field *Field

	active   Active
	phase    Phase
	paused   bool
	freeFall bool

	// gravityTicker counts ticks since the piece last moved down.
	gravityTicker int

	// Row being highlighted and ticks left before it is removed.
	clearRow    int
	clearTicks  int
	clearedRows int

	score int
	lines int

	events []core.Event
}

// selectedConfig is applied to games created through the registry.
var selectedConfig = config.DefaultTetrisConfig()

// SetConfig sets the configuration used by registry-created games.
func SetConfig(cfg config.TetrisConfig) {
	selectedConfig = cfg
}

// New creates a game whose rotation direction follows the configuration.
func New(cfg config.TetrisConfig) *Game {
	return &Game{
		id:        "tetris",
		title:     "Tetris",
		cfg:       cfg,
		clockwise: cfg.Controls.RotateClockwise,
	}
}

// NewClockwise creates a game that always rotates clockwise.
func NewClockwise(cfg config.TetrisConfig) *Game {
	g := New(cfg)
	g.id = "tetris_cw"
	g.title = "Tetris (clockwise)"
	g.clockwise = true
	return g
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New(selectedConfig)
	})
	registry.Register("tetris_cw", func() registry.Game {
		return NewClockwise(selectedConfig)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// Reset starts a new game with an empty bucket and a freshly spawned piece.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.field = NewField(g.cfg.Field.Width, g.cfg.Field.Height)
	g.phase = PhaseFalling
	g.paused = false
	g.freeFall = false
	g.gravityTicker = 0
	g.clearRow = -1
	g.clearTicks = 0
	g.clearedRows = 0
	g.score = 0
	g.lines = 0
	g.events = nil

	g.spawn()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.tick++

	switch g.phase {
	case PhaseOver:
		return g.result()
	case PhaseClearing:
		g.advanceClearing()
		return g.result()
	}

	// Free fall skips input entirely until the piece locks.
	if !g.freeFall {
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return g.result()
		}
		g.applyInput(in)
	}

	g.gravityTicker++
	if g.freeFall || g.gravityTicker >= g.cfg.Timing.GravityEvery {
		g.gravityTicker = 0
		g.fall()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// applyInput validates each intent through Fits; rejected moves are dropped.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.tryMove(-1, 0)
	}
	if in.Has(core.ActionRight) {
		g.tryMove(1, 0)
	}
	if in.Has(core.ActionRotate) {
		g.tryRotate()
	}
	if in.Has(core.ActionDrop) {
		g.freeFall = true
	}
}

func (g *Game) tryMove(dx, dy int) bool {
	a := g.active
	if !Fits(g.field, catalog[a.Piece], a.Rotation, a.X+dx, a.Y+dy) {
		return false
	}
	g.active.X += dx
	g.active.Y += dy
	return true
}

func (g *Game) tryRotate() bool {
	a := g.active
	next := a.Rotation.CounterClockwise()
	if g.clockwise {
		next = a.Rotation.Clockwise()
	}
	if !Fits(g.field, catalog[a.Piece], next, a.X, a.Y) {
		return false
	}
	g.active.Rotation = next
	return true
}

// fall moves the piece down one row or locks it in place.
func (g *Game) fall() {
	if g.tryMove(0, 1) {
		return
	}
	g.lock()
}

// lock folds the active piece into the field and starts row clearing.
func (g *Game) lock() {
	a := g.active
	Lock(g.field, a.Piece, a.Rotation, a.X, a.Y)
	g.freeFall = false
	g.emit(core.EventLocked, a.Piece)

	g.clearedRows = 0
	row := g.field.FirstFullRow()
	if row < 0 {
		g.spawn()
		return
	}

	delay := g.cfg.Timing.ClearDelayTicks()
	if delay == 0 {
		for ; row >= 0; row = g.field.FirstFullRow() {
			g.field.ClearRow(row)
			g.clearedRows++
		}
		g.finishClearing()
		return
	}

	g.phase = PhaseClearing
	g.clearRow = row
	g.clearTicks = delay
}

// advanceClearing counts down the highlight of the current row, removes it,
// and moves on to the next full row or back to spawning.
func (g *Game) advanceClearing() {
	g.clearTicks--
	if g.clearTicks > 0 {
		return
	}

	g.field.ClearRow(g.clearRow)
	g.clearedRows++

	if next := g.field.FirstFullRow(); next >= 0 {
		g.clearRow = next
		g.clearTicks = g.cfg.Timing.ClearDelayTicks()
		return
	}

	g.finishClearing()
}

func (g *Game) finishClearing() {
	g.score += g.cfg.Scoring.PointsFor(g.clearedRows)
	g.lines += g.clearedRows
	g.emit(core.EventRowsCleared, g.clearedRows)
	g.clearRow = -1
	g.phase = PhaseFalling
	g.spawn()
}

// randomPiece picks a catalog index uniformly.
func (g *Game) randomPiece() int {
	if len(catalog) == 0 {
		panic("tetris: piece catalog is empty")
	}
	return g.rng.Intn(len(catalog))
}

// spawn places a new piece at the top center, or ends the game when it
// cannot be placed.
func (g *Game) spawn() {
	g.active = Active{
		Piece:    g.randomPiece(),
		Rotation: 0,
		X:        g.field.Width()/2 - PieceSize/2,
		Y:        0,
	}
	g.gravityTicker = 0
	g.freeFall = false

	if !Fits(g.field, catalog[g.active.Piece], g.active.Rotation, g.active.X, g.active.Y) {
		g.phase = PhaseOver
		g.emit(core.EventGameOver, g.score)
		return
	}
	g.emit(core.EventSpawned, g.active.Piece)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// FreeFall reports whether the piece is dropping without input.
func (g *Game) FreeFall() bool {
	return g.freeFall
}

// Active returns the falling piece.
func (g *Game) Active() Active {
	return g.active
}

// Field returns the settled cells. Callers must not modify it.
func (g *Game) Field() *Field {
	return g.field
}

// FieldArea returns where the bucket, borders included, is drawn on screen.
func (g *Game) FieldArea() core.Rect {
	return core.NewRect(g.cfg.Layout.MarginX, g.cfg.Layout.MarginY, g.cfg.Field.Width, g.cfg.Field.Height)
}

// Size returns the screen area needed to show the field and score line.
func (g *Game) Size() (w, h int) {
	l := g.cfg.Layout
	w = l.MarginX + g.cfg.Field.Width + l.ScoreOffsetX + len("SCORE: 0000000")
	h = l.MarginY + g.cfg.Field.Height
	return w, h
}
