package tetris

import "strings"

// Pixel is the code stored in one field cell.
type Pixel byte

const (
	PixelEmpty  Pixel = ' '
	PixelBorder Pixel = '#'

	// Settled pieces are stored as 'A' + catalog index so the renderer can
	// look up the piece color.
	pixelPieceBase Pixel = 'A'
)

// PiecePixel returns the pixel code for a settled cell of the given piece.
func PiecePixel(piece int) Pixel {
	return pixelPieceBase + Pixel(piece)
}

// Piece returns the catalog index encoded in a settled-piece pixel.
func (p Pixel) Piece() (int, bool) {
	idx := int(p) - int(pixelPieceBase)
	if idx < 0 || idx >= len(catalog) {
		return 0, false
	}
	return idx, true
}

// Field is the bucket: a flat width*height buffer indexed x + y*width.
// The leftmost column, rightmost column, and bottom row are border cells
// and are never overwritten.
type Field struct {
	width  int
	height int
	cells  []Pixel
}

// NewField creates an empty field with its border drawn.
func NewField(width, height int) *Field {
	f := &Field{
		width:  width,
		height: height,
		cells:  make([]Pixel, width*height),
	}
	for i := range f.cells {
		f.cells[i] = PixelEmpty
	}
	for y := 0; y < height; y++ {
		f.cells[f.index(0, y)] = PixelBorder
		f.cells[f.index(width-1, y)] = PixelBorder
	}
	for x := 0; x < width; x++ {
		f.cells[f.index(x, height-1)] = PixelBorder
	}
	return f
}

// Width returns the field width including borders.
func (f *Field) Width() int {
	return f.width
}

// Height returns the field height including the bottom border.
func (f *Field) Height() int {
	return f.height
}

func (f *Field) index(x, y int) int {
	return x + y*f.width
}

// Index converts a coordinate to a buffer offset.
// The second result is false for out-of-bounds coordinates.
func (f *Field) Index(x, y int) (int, bool) {
	if !f.InBounds(x, y) {
		return 0, false
	}
	return f.index(x, y), true
}

// InBounds reports whether (x, y) lies inside the field, borders included.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Playable reports whether (x, y) is inside the field and not a border cell.
func (f *Field) Playable(x, y int) bool {
	return x > 0 && x < f.width-1 && y >= 0 && y < f.height-1
}

// At returns the pixel at (x, y). Out-of-bounds reads return PixelBorder.
func (f *Field) At(x, y int) Pixel {
	i, ok := f.Index(x, y)
	if !ok {
		return PixelBorder
	}
	return f.cells[i]
}

// Set stores a pixel at (x, y). Writes outside the playable area are
// ignored so the border stays intact.
func (f *Field) Set(x, y int, p Pixel) {
	if !f.Playable(x, y) {
		return
	}
	f.cells[f.index(x, y)] = p
}

// RowFull reports whether every playable cell of row y is non-empty.
// The bottom border row is never full.
func (f *Field) RowFull(y int) bool {
	if y < 0 || y >= f.height-1 {
		return false
	}
	for x := 1; x < f.width-1; x++ {
		if f.cells[f.index(x, y)] == PixelEmpty {
			return false
		}
	}
	return true
}

// FirstFullRow returns the topmost full row, or -1 if there is none.
func (f *Field) FirstFullRow() int {
	for y := 0; y < f.height-1; y++ {
		if f.RowFull(y) {
			return y
		}
	}
	return -1
}

// FullRows returns every full row, top to bottom.
func (f *Field) FullRows() []int {
	var rows []int
	for y := 0; y < f.height-1; y++ {
		if f.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRow removes row k: every playable row above it moves down by one and
// row 0 becomes empty. Rows below k are untouched.
func (f *Field) ClearRow(k int) {
	if k < 0 || k >= f.height-1 {
		return
	}
	for y := k; y > 0; y-- {
		for x := 1; x < f.width-1; x++ {
			f.cells[f.index(x, y)] = f.cells[f.index(x, y-1)]
		}
	}
	for x := 1; x < f.width-1; x++ {
		f.cells[f.index(x, 0)] = PixelEmpty
	}
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{width: f.width, height: f.height, cells: make([]Pixel, len(f.cells))}
	copy(c.cells, f.cells)
	return c
}

// Equal reports whether two fields hold the same pixels.
func (f *Field) Equal(o *Field) bool {
	if f.width != o.width || f.height != o.height {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the raw pixel codes, one row per line.
func (f *Field) String() string {
	var sb strings.Builder
	sb.Grow(len(f.cells) + f.height)
	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.width; x++ {
			sb.WriteByte(byte(f.cells[f.index(x, y)]))
		}
	}
	return sb.String()
}
