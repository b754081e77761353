package tetris

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
)

// Visual characters for rendering
const (
	BorderChar = '#'
	BlockChar  = '█'
	ClearChar  = '='
)

// Render draws the field, the falling piece, and the score.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	ox, oy := g.cfg.Layout.MarginX, g.cfg.Layout.MarginY

	g.renderField(dst, ox, oy)

	if g.phase == PhaseFalling {
		g.renderActive(dst, ox, oy)
	}

	if g.phase == PhaseClearing && g.clearRow >= 0 {
		dst.DrawHLine(ox+1, oy+g.clearRow, g.field.Width()-2, ClearChar, core.ColorBrightWhite)
	}

	g.renderScore(dst, ox, oy)

	switch {
	case g.phase == PhaseOver:
		g.renderBanner(dst, "GAME OVER")
	case g.paused:
		g.renderBanner(dst, "PAUSED")
	}
}

func (g *Game) renderField(dst *core.Screen, ox, oy int) {
	for y := 0; y < g.field.Height(); y++ {
		for x := 0; x < g.field.Width(); x++ {
			px := g.field.At(x, y)
			switch px {
			case PixelBorder:
				dst.Set(ox+x, oy+y, BorderChar)
			case PixelEmpty:
				// Screen is pre-cleared
			default:
				if idx, ok := px.Piece(); ok {
					dst.SetColored(ox+x, oy+y, BlockChar, catalog[idx].Color)
				}
			}
		}
	}
}

// renderActive draws the falling piece, clipped to the bucket. Cells that
// collision ignores because they are off the field are not drawn either.
func (g *Game) renderActive(dst *core.Screen, ox, oy int) {
	a := g.active
	p := catalog[a.Piece]
	area := g.FieldArea()
	for yb := 0; yb < PieceSize; yb++ {
		for xb := 0; xb < PieceSize; xb++ {
			sx, sy := ox+a.X+xb, oy+a.Y+yb
			if p.SolidAt(xb, yb, a.Rotation) && area.Contains(sx, sy) {
				dst.SetColored(sx, sy, BlockChar, p.Color)
			}
		}
	}
}

func (g *Game) renderScore(dst *core.Screen, ox, oy int) {
	l := g.cfg.Layout
	x := ox + g.field.Width() + l.ScoreOffsetX
	y := oy + l.ScoreOffsetY
	dst.DrawText(x, y, fmt.Sprintf("SCORE: %d", g.score))
	dst.DrawText(x, y+1, fmt.Sprintf("LINES: %d", g.lines))
}

// renderBanner blanks the middle row inside the bucket and writes the
// message on it.
func (g *Game) renderBanner(dst *core.Screen, text string) {
	area := g.FieldArea()
	n := len([]rune(text))
	y := area.Y + (area.H-1)/2
	x := core.Clamp(area.X+(area.W-n)/2, area.X, area.Right()-1)

	dst.DrawRect(core.NewRect(area.X+1, y, area.W-2, 1), ' ')
	dst.DrawTextColored(x, y, text, core.ColorBrightWhite)
}
