package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow - shift one column left
	ActionRight         // Right arrow - shift one column right
	ActionRotate        // Up arrow - rotate a quarter turn
	ActionDrop          // Down arrow - free fall until lock
	ActionPause         // P - pause/unpause game
	ActionQuit          // Esc, Q, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionDrop:
		return "Drop"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// MaxQueuedActions bounds the key backlog a backend keeps between ticks.
const MaxQueuedActions = 64

// InputQueue buffers key actions in arrival order. Each tick takes one
// action, so repeated presses of the same key are never merged.
type InputQueue struct {
	actions []Action
}

// Push appends an action. It reports false when the queue is full.
func (q *InputQueue) Push(a Action) bool {
	if a == ActionNone || len(q.actions) >= MaxQueuedActions {
		return false
	}
	q.actions = append(q.actions, a)
	return true
}

// Len returns the number of queued actions.
func (q *InputQueue) Len() int {
	return len(q.actions)
}

// Next removes the oldest action and returns it in a fresh frame.
// The frame is empty when nothing is queued.
func (q *InputQueue) Next() InputFrame {
	f := NewInputFrame()
	if len(q.actions) == 0 {
		return f
	}
	f.Set(q.actions[0])
	q.actions = q.actions[1:]
	if len(q.actions) == 0 {
		q.actions = nil
	}
	return f
}
