// Package term runs a game on a raw tcell screen with a classic poll loop:
// key events arrive on a channel, a ticker drives the simulation, and the
// frame is painted cell by cell.
package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal owns a tcell screen in raw mode and restores it exactly once.
type Terminal struct {
	screen tcell.Screen
	once   sync.Once
}

// Open puts the controlling terminal into raw mode.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	return NewTerminal(screen)
}

// NewTerminal initializes an existing screen, such as a simulation screen.
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot initialize screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &Terminal{screen: screen}, nil
}

// Screen returns the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Close restores the terminal. Safe to call multiple times.
func (t *Terminal) Close() {
	t.once.Do(t.screen.Fini)
}

// Guard restores the terminal if the calling goroutine is panicking, then
// re-panics. It must be deferred directly:
//
//	defer t.Guard()
func (t *Terminal) Guard() {
	if r := recover(); r != nil {
		t.Close()
		panic(r)
	}
}
