package term

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termtris/internal/core"
)

// finiCounter counts Fini calls on a wrapped screen.
type finiCounter struct {
	tcell.Screen
	mu    sync.Mutex
	finis int
}

func (s *finiCounter) Fini() {
	s.mu.Lock()
	s.finis++
	s.mu.Unlock()
	s.Screen.Fini()
}

func (s *finiCounter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finis
}

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := NewTerminal(sim)
	if err != nil {
		t.Fatalf("NewTerminal() error = %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(term.Close)
	return term, sim
}

// stubGame steps until it has seen overAfter frames, then reports game over.
type stubGame struct {
	mu        sync.Mutex
	frames    []core.InputFrame
	overAfter int
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawTextColored(2, 1, "SCORE: 7", core.ColorCyan) }
func (g *stubGame) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return core.GameState{Score: 7, GameOver: g.overAfter > 0 && len(g.frames) >= g.overAfter}
}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.mu.Lock()
	g.frames = append(g.frames, in.Clone())
	g.mu.Unlock()
	return core.StepResult{State: g.State()}
}

func (g *stubGame) steps() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.frames)
}

func TestCloseIsIdempotent(t *testing.T) {
	screen := &finiCounter{Screen: tcell.NewSimulationScreen("UTF-8")}
	term, err := NewTerminal(screen)
	if err != nil {
		t.Fatalf("NewTerminal() error = %v", err)
	}

	term.Close()
	term.Close()

	if screen.count() != 1 {
		t.Errorf("Fini called %d times, expected 1", screen.count())
	}
}

func TestGuardRestoresAndRepanics(t *testing.T) {
	screen := &finiCounter{Screen: tcell.NewSimulationScreen("UTF-8")}
	term, err := NewTerminal(screen)
	if err != nil {
		t.Fatalf("NewTerminal() error = %v", err)
	}

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recovered %v, expected re-panic with boom", r)
			}
		}()
		defer term.Guard()
		panic("boom")
	}()

	if screen.count() != 1 {
		t.Errorf("Fini called %d times after panic, expected 1", screen.count())
	}
}

func TestGuardWithoutPanic(t *testing.T) {
	screen := &finiCounter{Screen: tcell.NewSimulationScreen("UTF-8")}
	term, err := NewTerminal(screen)
	if err != nil {
		t.Fatalf("NewTerminal() error = %v", err)
	}
	defer term.Close()

	func() {
		defer term.Guard()
	}()

	if screen.count() != 0 {
		t.Error("Guard must not restore the terminal on normal return")
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected core.Action
	}{
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), core.ActionPause},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionRotate},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.ActionDrop},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := KeyAction(tc.ev); got != tc.expected {
				t.Errorf("KeyAction(%s) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestPaint(t *testing.T) {
	term, sim := newSimTerminal(t)

	buf := core.NewScreen(10, 3)
	buf.SetColored(1, 1, '█', core.ColorGreen)
	buf.Set(0, 0, '#')
	Paint(term.Screen(), buf)

	r, _, style, _ := sim.GetContent(1, 1)
	fg, _, _ := style.Decompose()
	if r != '█' || fg != tcell.ColorGreen {
		t.Errorf("cell (1,1) = %q fg %v, expected green block", r, fg)
	}

	r, _, _, _ = sim.GetContent(0, 0)
	if r != '#' {
		t.Errorf("cell (0,0) = %q, expected '#'", r)
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	term, sim := newSimTerminal(t)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	g := &stubGame{}
	state, err := Run(term, g, core.RuntimeConfig{Tick: time.Hour, Seed: 1}, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if state.Score != 7 {
		t.Errorf("Run() score = %d, expected 7", state.Score)
	}

	r, _, _, _ := sim.GetContent(2, 1)
	if r != 'S' {
		t.Errorf("first frame not painted, got %q at (2,1)", r)
	}
}

func TestRunBuffersKeysAndEndsOnGameOver(t *testing.T) {
	term, sim := newSimTerminal(t)
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)

	g := &stubGame{overAfter: 2}
	state, err := Run(term, g, core.RuntimeConfig{Tick: 50 * time.Millisecond, Seed: 1}, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !state.GameOver {
		t.Error("Run() should stop on game over")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.frames) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(g.frames))
	}

	tests := []struct {
		name     string
		frame    core.InputFrame
		expected core.Action
	}{
		{"first tick", g.frames[0], core.ActionLeft},
		{"second tick", g.frames[1], core.ActionPause},
	}
	for _, tc := range tests {
		if !tc.frame.Has(tc.expected) || len(tc.frame.Actions) != 1 {
			t.Errorf("%s: frame = %+v, expected only %v", tc.name, tc.frame.Actions, tc.expected)
		}
	}
}

func TestRunHoldsGameOverFrame(t *testing.T) {
	term, _ := newSimTerminal(t)

	const hold = 100 * time.Millisecond
	g := &stubGame{overAfter: 1}
	start := time.Now()
	state, err := Run(term, g, core.RuntimeConfig{Tick: 10 * time.Millisecond, Seed: 1}, Options{GameOverHold: hold})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !state.GameOver {
		t.Error("Run() should stop on game over")
	}
	if elapsed := time.Since(start); elapsed < hold {
		t.Errorf("Run() returned after %v, expected at least %v", elapsed, hold)
	}
}

func TestRunGameOverHoldEndsOnQuitKey(t *testing.T) {
	term, sim := newSimTerminal(t)

	g := &stubGame{overAfter: 1}
	done := make(chan error, 1)
	go func() {
		_, err := Run(term, g, core.RuntimeConfig{Tick: 10 * time.Millisecond, Seed: 1}, Options{GameOverHold: time.Hour})
		done <- err
	}()

	deadline := time.Now().Add(5 * time.Second)
	for g.steps() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("game never stepped")
		}
		time.Sleep(5 * time.Millisecond)
	}
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("quit key should end the game-over hold")
	}
}

func TestStyleFallback(t *testing.T) {
	if Style(core.Color(200)) != tcell.StyleDefault {
		t.Error("unknown colors should use the default style")
	}
}
