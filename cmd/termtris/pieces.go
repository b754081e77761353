package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/games/tetris"
	"github.com/vovakirdan/termtris/internal/platform/tui"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long: `Prints each of the seven pieces in all four rotations, in the
order the rotate key visits them with the effective rotation direction.`,
	Args: cobra.NoArgs,
	RunE: runPieces,
}

var (
	pieceCellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	pieceTitleStyle = lipgloss.NewStyle().Bold(true)
)

func runPieces(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	next := tetris.Rotation.CounterClockwise
	if cfg.Controls.RotateClockwise {
		next = tetris.Rotation.Clockwise
	}

	out := cmd.OutOrStdout()
	for i := 0; i < tetris.PieceCount(); i++ {
		p := tetris.PieceAt(i)
		style := tui.Style(p.Color)

		var boxes []string
		r := tetris.Rotation(0)
		for range 4 {
			rows := p.Rows(r, tetris.BlockChar, '·')
			grid := style.Render(strings.Join(rows, "\n"))
			label := fmt.Sprintf("%3d°", r.Degrees())
			boxes = append(boxes, pieceCellStyle.Render(lipgloss.JoinVertical(lipgloss.Center, grid, label)))
			r = next(r)
		}

		fmt.Fprintln(out, pieceTitleStyle.Render(fmt.Sprintf("%s (%s)", p.Name, p.Color)))
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return nil
}
