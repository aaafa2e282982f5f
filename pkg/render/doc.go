// Package render groups the board renderers.
//
// # Overview
//
// Every renderer takes a read-only [grid.View] and never mutates the board.
// Colors come from one shared palette so the terminal, PNG and SVG outputs
// agree:
//
//   - [palette]: cell state to RGB mapping and terminal color helpers
//   - [term]: lipgloss board for the interactive front-end, plus mouse hit
//     testing
//   - [raster]: PNG export drawn with fogleman/gg
//   - [nodelink]: DOT source and Graphviz SVG of the board as a node-link
//     diagram
//
// # Usage
//
//	fmt.Println(term.Render(g, term.Options{Cursor: term.NoCursor}))
//	png, err := raster.RenderPNG(g, raster.Options{CellPixels: 16})
//	svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{}))
//
// [grid.View]: github.com/matzehuels/gridpath/pkg/grid#View
// [palette]: github.com/matzehuels/gridpath/pkg/render/palette
// [term]: github.com/matzehuels/gridpath/pkg/render/term
// [raster]: github.com/matzehuels/gridpath/pkg/render/raster
// [nodelink]: github.com/matzehuels/gridpath/pkg/render/nodelink
package render
