// Package term draws a grid for the terminal with lipgloss.
//
// Each cell is CellWidth columns wide and one line tall, filled with its
// palette color. The board is framed by a border in the palette border color;
// [Layout] maps mouse coordinates back to cells.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/render/palette"
)

// DefaultCellWidth is two columns, which keeps cells roughly square in most
// terminal fonts.
const DefaultCellWidth = 2

// NoCursor hides the cursor.
const NoCursor = -1

// Options controls how a grid is drawn.
type Options struct {
	CellWidth int // columns per cell; 0 selects DefaultCellWidth
	Cursor    int // index of the highlighted cell, or NoCursor
}

func (o Options) cellWidth() int {
	if o.CellWidth <= 0 {
		return DefaultCellWidth
	}
	return o.CellWidth
}

var frame = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color(palette.Hex(palette.Border)))

var styles = func() map[grid.CellState]lipgloss.Style {
	m := make(map[grid.CellState]lipgloss.Style, len(grid.CellStates))
	for _, s := range grid.CellStates {
		bg := palette.Color(s)
		m[s] = lipgloss.NewStyle().
			Background(lipgloss.Color(palette.Hex(bg))).
			Foreground(lipgloss.Color(palette.Hex(palette.Contrast(bg))))
	}
	return m
}()

// Render draws v inside a border.
func Render(v grid.View, opts Options) string {
	n := v.Size()
	w := opts.cellWidth()
	blank := strings.Repeat(" ", w)
	mark := cursorGlyph(w)

	var b strings.Builder
	for r := 0; r < n; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < n; c++ {
			idx := r*n + c
			text := blank
			if idx == opts.Cursor {
				text = mark
			}
			b.WriteString(styles[v.State(idx)].Render(text))
		}
	}
	return frame.Render(b.String())
}

func cursorGlyph(w int) string {
	if w == 1 {
		return "+"
	}
	return "[" + strings.Repeat(" ", w-2) + "]"
}

// Legend returns one swatch per cell state.
func Legend() string {
	parts := make([]string, 0, len(grid.CellStates))
	for _, s := range grid.CellStates {
		parts = append(parts, styles[s].Render("  ")+" "+s.String())
	}
	return strings.Join(parts, "  ")
}

// Layout locates a rendered grid on screen.
type Layout struct {
	OriginX   int // column of the top-left border corner
	OriginY   int // line of the top-left border corner
	CellWidth int // columns per cell; 0 selects DefaultCellWidth
}

// HitTest maps a screen position to the cell under it on a size×size board.
// Positions on the border or outside the board report ok=false.
func (l Layout) HitTest(x, y, size int) (row, col int, ok bool) {
	w := l.CellWidth
	if w <= 0 {
		w = DefaultCellWidth
	}
	// Skip the border.
	dx := x - l.OriginX - 1
	dy := y - l.OriginY - 1
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	row, col = dy, dx/w
	if row >= size || col >= size {
		return 0, 0, false
	}
	return row, col, true
}
