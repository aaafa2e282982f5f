package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathfind"
)

func TestToDOT_Basic(t *testing.T) {
	g := grid.New(3)
	g.PlaceAt(0, 0, grid.ModeStart)
	g.PlaceAt(2, 2, grid.ModeEnd)
	g.PlaceAt(1, 1, grid.ModeObstacle)

	dot := ToDOT(g, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(dot, "layout=neato") {
		t.Error("ToDOT() output missing neato layout")
	}
	if got := strings.Count(dot, "pos="); got != 9 {
		t.Errorf("ToDOT() has %d positioned nodes, want 9", got)
	}
	if !strings.Contains(dot, `r0c0 [label="", pos="0.00,0.00!", fillcolor="#00ff00"]`) {
		t.Errorf("ToDOT() start node wrong:\n%s", dot)
	}
	if !strings.Contains(dot, `r1c1 [label="", pos="0.50,-0.50!", fillcolor="#000000"]`) {
		t.Errorf("ToDOT() obstacle node wrong:\n%s", dot)
	}
	if strings.Contains(dot, "--") {
		t.Error("ToDOT() drew edges without Adjacency or Path")
	}
}

func TestToDOT_Adjacency(t *testing.T) {
	g := grid.New(3)
	dot := ToDOT(g, Options{Adjacency: true})
	// 3x3 open board: 2*3*2 edges.
	if got := strings.Count(dot, " -- "); got != 12 {
		t.Errorf("open board: %d edges, want 12", got)
	}

	g.PlaceAt(1, 1, grid.ModeObstacle)
	dot = ToDOT(g, Options{Adjacency: true})
	if got := strings.Count(dot, " -- "); got != 8 {
		t.Errorf("center obstacle: %d edges, want 8", got)
	}
	if strings.Contains(dot, "r1c1 --") || strings.Contains(dot, "-- r1c1") {
		t.Error("obstacle has an edge")
	}
}

func TestToDOT_Path(t *testing.T) {
	g := grid.New(4)
	g.PlaceAt(0, 0, grid.ModeStart)
	g.PlaceAt(0, 3, grid.ModeEnd)
	res, err := pathfind.Run(g)
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(g, Options{Path: res.Path})
	if got := strings.Count(dot, "penwidth=4"); got != res.Hops {
		t.Errorf("%d path edges, want %d", got, res.Hops)
	}
	if !strings.Contains(dot, "r0c0 -- r0c1") || !strings.Contains(dot, "r0c2 -- r0c3") {
		t.Errorf("path edges missing:\n%s", dot)
	}
}

func TestFmtLabel(t *testing.T) {
	if got := fmtLabel(2, 3, false); got != "" {
		t.Errorf("fmtLabel() without labels = %q", got)
	}
	if got := fmtLabel(2, 3, true); got != "2,3" {
		t.Errorf("fmtLabel() = %q, want %q", got, "2,3")
	}
}

func TestFmtAttrs_Labels(t *testing.T) {
	attrs := strings.Join(fmtAttrs(0, 0, grid.Obstacle, true), " ")
	if !strings.Contains(attrs, `fontcolor="#ffffff"`) {
		t.Errorf("label on obstacle should be white: %s", attrs)
	}
	attrs = strings.Join(fmtAttrs(0, 0, grid.Empty, false), " ")
	if strings.Contains(attrs, "fontcolor") {
		t.Errorf("fontcolor set without labels: %s", attrs)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	g := grid.New(3)
	g.PlaceAt(0, 0, grid.ModeStart)
	g.PlaceAt(2, 2, grid.ModeEnd)

	svg, err := RenderSVG(context.Background(), ToDOT(g, Options{Adjacency: true}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
