// Package palette defines the fixed colors used to draw a grid.
//
// Every renderer (terminal, PNG, node-link) takes its colors from here so the
// board looks the same across outputs.
package palette

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridpath/pkg/grid"
)

// Cell colors, all fully opaque.
var (
	Empty    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Obstacle = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Start    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	End      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Visited  = color.RGBA{R: 0, G: 150, B: 255, A: 255}
	Path     = color.RGBA{R: 255, G: 255, B: 0, A: 255}

	// Border outlines every cell.
	Border = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// Color returns the fill color for s. Unknown states draw as Empty.
func Color(s grid.CellState) color.RGBA {
	switch s {
	case grid.Obstacle:
		return Obstacle
	case grid.Start:
		return Start
	case grid.End:
		return End
	case grid.Visited:
		return Visited
	case grid.Path:
		return Path
	default:
		return Empty
	}
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lip returns the fill color for s as a lipgloss color.
func Lip(s grid.CellState) lipgloss.Color {
	return lipgloss.Color(Hex(Color(s)))
}

// Contrast returns black or white, whichever reads better on c.
func Contrast(c color.RGBA) color.RGBA {
	// Rec. 601 luma.
	y := 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
	if y > 128*1000 {
		return Obstacle
	}
	return Empty
}
