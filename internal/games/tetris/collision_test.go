package tetris

import "testing"

// solidCellsPlayable reports whether every solid cell of the placement
// lands on a playable cell.
func solidCellsPlayable(f *Field, p Piece, r Rotation, x, y int) bool {
	for yb := 0; yb < PieceSize; yb++ {
		for xb := 0; xb < PieceSize; xb++ {
			if p.SolidAt(xb, yb, r) && !f.Playable(x+xb, y+yb) {
				return false
			}
		}
	}
	return true
}

func TestFitsClearPlacements(t *testing.T) {
	f := NewField(12, 18)

	for i := 0; i < PieceCount(); i++ {
		p := PieceAt(i)
		for r := Rotation(0); r < 4; r++ {
			for y := -1; y < f.Height(); y++ {
				for x := -1; x < f.Width(); x++ {
					if !solidCellsPlayable(f, p, r, x, y) {
						continue
					}
					if !Fits(f, p, r, x, y) {
						t.Errorf("piece %s rot %d at (%d, %d) should fit in an empty field", p.Name, r, x, y)
					}
				}
			}
		}
	}
}

func TestFitsOverlap(t *testing.T) {
	for i := 0; i < PieceCount(); i++ {
		p := PieceAt(i)
		for r := Rotation(0); r < 4; r++ {
			for yb := 0; yb < PieceSize; yb++ {
				for xb := 0; xb < PieceSize; xb++ {
					if !p.SolidAt(xb, yb, r) {
						continue
					}
					f := NewField(12, 18)
					f.Set(4+xb, 5+yb, PiecePixel(6))
					if Fits(f, p, r, 4, 5) {
						t.Errorf("piece %s rot %d should collide with cell (%d, %d)", p.Name, r, 4+xb, 5+yb)
					}
				}
			}
		}
	}
}

func TestFitsBorders(t *testing.T) {
	f := NewField(12, 18)
	i := PieceAt(0) // vertical in local column 1

	if !Fits(f, i, 0, 0, 0) {
		t.Error("I with its column on x=1 should fit")
	}
	if Fits(f, i, 0, -1, 0) {
		t.Error("I with its column on the left border should collide")
	}
	if Fits(f, i, 0, 4, 14) {
		t.Error("I overlapping the bottom border should collide")
	}
}

func TestFitsIgnoresOutOfBoundsCells(t *testing.T) {
	f := NewField(12, 18)

	// O occupies local rows 0-1; with y=-1 its top row is above the field
	// and is ignored.
	if !Fits(f, PieceAt(1), 0, 4, -1) {
		t.Error("solid cells above the field should be ignored")
	}

	// I's solid column lands at x=12, outside the field. Local column 0 is
	// empty, so it passes over the right border without colliding.
	if !Fits(f, PieceAt(0), 0, 11, 0) {
		t.Error("solid cells right of the field should be ignored")
	}
}

func TestLockWritesPiecePixels(t *testing.T) {
	f := NewField(12, 18)
	Lock(f, 6, 0, 4, 10) // T: " X  ", " XX ", " X  "

	expected := map[[2]int]bool{
		{5, 10}: true,
		{5, 11}: true,
		{6, 11}: true,
		{5, 12}: true,
	}
	for y := 0; y < 17; y++ {
		for x := 1; x < 11; x++ {
			got := f.At(x, y)
			if expected[[2]int{x, y}] {
				if got != PiecePixel(6) {
					t.Errorf("(%d, %d) = %q, expected T pixel", x, y, got)
				}
			} else if got != PixelEmpty {
				t.Errorf("(%d, %d) = %q, expected empty", x, y, got)
			}
		}
	}
}

func TestPieceCatalog(t *testing.T) {
	if PieceCount() != 7 {
		t.Fatalf("PieceCount() = %d, expected 7", PieceCount())
	}

	for i := 0; i < PieceCount(); i++ {
		p := PieceAt(i)
		solid := 0
		for _, c := range p.Cells {
			if c {
				solid++
			}
		}
		if solid != 4 {
			t.Errorf("piece %s has %d solid cells, expected 4", p.Name, solid)
		}
	}
}

func TestPieceExtent(t *testing.T) {
	tests := []struct {
		piece  int
		r      Rotation
		bottom int
	}{
		{0, 0, 4}, // I vertical
		{0, 1, 2}, // I flat in row 1
		{1, 0, 2}, // O
		{2, 0, 3}, // L
		{4, 0, 2}, // Z
		{6, 0, 3}, // T
	}

	for _, tc := range tests {
		if got := PieceAt(tc.piece).Bottom(tc.r); got != tc.bottom {
			t.Errorf("%s.Bottom(%d) = %d, expected %d", PieceAt(tc.piece).Name, tc.r, got, tc.bottom)
		}
	}
}
