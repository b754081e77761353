package tetris

import "github.com/vovakirdan/termtris/internal/core"

// PieceSize is the side of every piece template.
const PieceSize = 4

// Piece is one immutable catalog entry: a 4x4 template flattened row-major.
type Piece struct {
	Name  string
	Cells [PieceSize * PieceSize]bool
	Color core.Color
}

// catalog holds the seven templates; index i locks as pixel 'A'+i.
var catalog = []Piece{
	newPiece("I", " X   X   X   X  ", core.ColorCyan),
	newPiece("O", " XX  XX         ", core.ColorGreen),
	newPiece("L", " X   X   XX     ", core.ColorBlue),
	newPiece("J", "  X   X  XX     ", core.ColorRed),
	newPiece("Z", "XX   XX         ", core.ColorYellow),
	newPiece("S", "  XX XX         ", core.ColorMagenta),
	newPiece("T", " X   XX  X      ", core.ColorGray),
}

func newPiece(name, layout string, color core.Color) Piece {
	if len(layout) != PieceSize*PieceSize {
		panic("tetris: piece " + name + " template must have 16 cells")
	}
	p := Piece{Name: name, Color: color}
	for i := range layout {
		p.Cells[i] = layout[i] == 'X'
	}
	return p
}

// PieceCount returns the number of catalog entries.
func PieceCount() int {
	return len(catalog)
}

// PieceAt returns catalog entry i.
func PieceAt(i int) Piece {
	return catalog[i]
}

// SolidAt reports whether local cell (px, py) is solid with rotation r applied.
func (p Piece) SolidAt(px, py int, r Rotation) bool {
	return p.Cells[Rotate(px, py, r)]
}

// Extent returns the bounding box of solid cells at rotation r in local
// coordinates, as [minX, maxX] x [minY, maxY] inclusive.
func (p Piece) Extent(r Rotation) (minX, minY, maxX, maxY int) {
	minX, minY = PieceSize, PieceSize
	maxX, maxY = -1, -1
	for py := 0; py < PieceSize; py++ {
		for px := 0; px < PieceSize; px++ {
			if !p.SolidAt(px, py, r) {
				continue
			}
			minX = min(minX, px)
			maxX = max(maxX, px)
			minY = min(minY, py)
			maxY = max(maxY, py)
		}
	}
	return minX, minY, maxX, maxY
}

// Bottom returns one past the lowest solid row at rotation r, measured from
// the template's top edge.
func (p Piece) Bottom(r Rotation) int {
	_, _, _, maxY := p.Extent(r)
	return maxY + 1
}

// Rows renders the rotated template as four strings, for previews.
func (p Piece) Rows(r Rotation, solid, empty rune) []string {
	rows := make([]string, PieceSize)
	for py := 0; py < PieceSize; py++ {
		line := make([]rune, PieceSize)
		for px := 0; px < PieceSize; px++ {
			if p.SolidAt(px, py, r) {
				line[px] = solid
			} else {
				line[px] = empty
			}
		}
		rows[py] = string(line)
	}
	return rows
}
