package tetris

// Rotation is a quarter-turn count: 0, 90, 180 or 270 degrees.
type Rotation int

// Normalize maps any rotation onto 0..3.
func (r Rotation) Normalize() Rotation {
	return ((r % 4) + 4) % 4
}

// Clockwise returns the next rotation state.
func (r Rotation) Clockwise() Rotation {
	return (r + 1).Normalize()
}

// CounterClockwise returns the previous rotation state.
func (r Rotation) CounterClockwise() Rotation {
	return (r + 3).Normalize()
}

// Degrees returns the rotation angle.
func (r Rotation) Degrees() int {
	return int(r.Normalize()) * 90
}

// Rotate returns the index into the unrotated template that shows up at
// local cell (px, py) when the piece is turned by r. No rotated copy of the
// template is ever built.
func Rotate(px, py int, r Rotation) int {
	switch r.Normalize() {
	case 1:
		return 12 + py - px*PieceSize
	case 2:
		return 15 - py*PieceSize - px
	case 3:
		return 3 - py + px*PieceSize
	default:
		return py*PieceSize + px
	}
}
