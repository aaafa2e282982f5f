package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/render/palette"
)

// Spacing is the distance between neighboring cell centers, in inches.
const Spacing = 0.5

// Options configures node-link diagram rendering.
type Options struct {
	// Labels prints "row,col" inside every node.
	Labels bool
	// Adjacency draws an edge between every pair of 4-connected open cells.
	Adjacency bool
	// Path is drawn as a chain of heavy edges, Start to End inclusive.
	Path []int
}

// NodeID returns the DOT identifier of the cell at (row, col).
func NodeID(row, col int) string {
	return fmt.Sprintf("r%dc%d", row, col)
}

// ToDOT converts a grid to an undirected Graphviz graph with one pinned node
// per cell. Render it with [RenderSVG]; the neato engine keeps the pinned
// positions so the output looks like the board.
func ToDOT(v grid.View, opts Options) string {
	n := v.Size()
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=square, style=filled, fixedsize=true, width=%.2f, fontsize=8, color=%q];\n",
		Spacing*0.8, palette.Hex(palette.Border))
	buf.WriteString("  edge [color=\"#c8c8c8\"];\n")
	buf.WriteString("\n")

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			st := v.State(r*n + c)
			attrs := fmtAttrs(r, c, st, opts.Labels)
			fmt.Fprintf(&buf, "  %s [%s];\n", NodeID(r, c), strings.Join(attrs, ", "))
		}
	}

	if opts.Adjacency {
		buf.WriteString("\n")
		for idx := 0; idx < n*n; idx++ {
			if v.State(idx) == grid.Obstacle {
				continue
			}
			r, c := idx/n, idx%n
			// Right and down only, so every edge is written once.
			for _, nb := range [][2]int{{r, c + 1}, {r + 1, c}} {
				if nb[0] >= n || nb[1] >= n || v.State(nb[0]*n+nb[1]) == grid.Obstacle {
					continue
				}
				fmt.Fprintf(&buf, "  %s -- %s;\n", NodeID(r, c), NodeID(nb[0], nb[1]))
			}
		}
	}

	if len(opts.Path) > 1 {
		buf.WriteString("\n")
		for i := 1; i < len(opts.Path); i++ {
			a, b := opts.Path[i-1], opts.Path[i]
			fmt.Fprintf(&buf, "  %s -- %s [color=%q, penwidth=4];\n",
				NodeID(a/n, a%n), NodeID(b/n, b%n), palette.Hex(palette.End))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(row, col int, labels bool) string {
	if !labels {
		return ""
	}
	return fmt.Sprintf("%d,%d", row, col)
}

func fmtAttrs(row, col int, st grid.CellState, labels bool) []string {
	fill := palette.Color(st)
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(row, col, labels)),
		fmt.Sprintf("pos=\"%.2f,%.2f!\"", float64(col)*Spacing, float64(-row)*Spacing),
		fmt.Sprintf("fillcolor=%q", palette.Hex(fill)),
	}
	if labels {
		attrs = append(attrs, fmt.Sprintf("fontcolor=%q", palette.Hex(palette.Contrast(fill))))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element to a zero-origin viewBox with
// explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
