// Package raster draws a grid as a PNG image with fogleman/gg.
//
// Every cell is a CellPixels square filled with its palette color and outlined
// by a one-pixel border in the palette border color.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/render/palette"
)

// Cell size bounds in pixels.
const (
	DefaultCellPixels = 24
	MinCellPixels     = 4
	MaxCellPixels     = 128
)

// Options controls rasterization.
type Options struct {
	CellPixels int // side of one cell; 0 selects DefaultCellPixels
}

func (o Options) cellPixels() (int, error) {
	if o.CellPixels == 0 {
		return DefaultCellPixels, nil
	}
	if o.CellPixels < MinCellPixels || o.CellPixels > MaxCellPixels {
		return 0, fmt.Errorf("cell size %dpx out of range [%d, %d]", o.CellPixels, MinCellPixels, MaxCellPixels)
	}
	return o.CellPixels, nil
}

// Draw paints v onto a new image.
func Draw(v grid.View, opts Options) (image.Image, error) {
	dc, err := draw(v, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// Encode writes v as PNG to w.
func Encode(w io.Writer, v grid.View, opts Options) error {
	dc, err := draw(v, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// RenderPNG returns v as PNG bytes.
func RenderPNG(v grid.View, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func draw(v grid.View, opts Options) (*gg.Context, error) {
	px, err := opts.cellPixels()
	if err != nil {
		return nil, err
	}
	n := v.Size()
	dc := gg.NewContext(n*px, n*px)
	dc.SetColor(palette.Border)
	dc.Clear()

	side := float64(px)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			x, y := float64(c*px), float64(r*px)
			dc.SetColor(palette.Color(v.State(r*n + c)))
			dc.DrawRectangle(x+1, y+1, side-2, side-2)
			dc.Fill()
		}
	}
	return dc, nil
}
