package tetris

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Piece    int
	Rotation Rotation
	X, Y     int
	Score    int
	Lines    int
	Paused   bool
	FreeFall bool
	Field    string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Piece:    g.active.Piece,
		Rotation: g.active.Rotation,
		X:        g.active.X,
		Y:        g.active.Y,
		Score:    g.score,
		Lines:    g.lines,
		Paused:   g.paused,
		FreeFall: g.freeFall,
		Field:    g.field.String(),
	}
}
