package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termtris/internal/core"
)

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorBlue:        tcell.StyleDefault.Foreground(tcell.ColorBlue),
	core.ColorMagenta:     tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
}

// Style returns the tcell style for a color.
func Style(c core.Color) tcell.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return tcell.StyleDefault
}

// Paint copies every cell of src onto the tcell screen and shows it.
func Paint(dst tcell.Screen, src *core.Screen) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, Style(cell.Color))
		}
	}
	dst.Show()
}
