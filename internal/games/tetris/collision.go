package tetris

// Fits reports whether piece p at rotation r can sit with its template's
// top-left cell at (x, y): no solid cell may land on a non-empty field cell.
//
// Solid cells that fall outside the field are ignored rather than treated as
// collisions. The border column and row stop pieces in practice.
func Fits(f *Field, p Piece, r Rotation, x, y int) bool {
	for yb := 0; yb < PieceSize; yb++ {
		for xb := 0; xb < PieceSize; xb++ {
			fx, fy := x+xb, y+yb
			if !f.InBounds(fx, fy) {
				continue
			}
			if p.SolidAt(xb, yb, r) && f.At(fx, fy) != PixelEmpty {
				return false
			}
		}
	}
	return true
}

// Lock writes every solid cell of piece index piece into the field.
func Lock(f *Field, piece int, r Rotation, x, y int) {
	p := catalog[piece]
	for yb := 0; yb < PieceSize; yb++ {
		for xb := 0; xb < PieceSize; xb++ {
			if p.SolidAt(xb, yb, r) {
				f.Set(x+xb, y+yb, PiecePixel(piece))
			}
		}
	}
}
