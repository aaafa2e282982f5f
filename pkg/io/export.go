package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gridpath/pkg/grid"
)

// Coord is a [row, col] pair.
type Coord [2]int

type board struct {
	Size      int     `json:"size"`
	Start     *Coord  `json:"start,omitempty"`
	End       *Coord  `json:"end,omitempty"`
	Obstacles []Coord `json:"obstacles"`
	Visited   []Coord `json:"visited,omitempty"`
	Path      []Coord `json:"path,omitempty"`
	Reached   *bool   `json:"reached,omitempty"`
	Hops      *int    `json:"hops,omitempty"`
}

// WriteJSON encodes v as JSON and writes it to w. path is the engine path in
// walk order; when v has both endpoints the output also reports reached and
// hops. Path cells are listed only under path, not under visited.
func WriteJSON(v grid.View, path []int, w io.Writer) error {
	n := v.Size()
	coord := func(idx int) Coord { return Coord{idx / n, idx % n} }

	out := board{Size: n, Obstacles: []Coord{}}
	for i := 0; i < n*n; i++ {
		switch v.State(i) {
		case grid.Start:
			c := coord(i)
			out.Start = &c
		case grid.End:
			c := coord(i)
			out.End = &c
		case grid.Obstacle:
			out.Obstacles = append(out.Obstacles, coord(i))
		case grid.Visited:
			out.Visited = append(out.Visited, coord(i))
		}
	}
	for _, idx := range path {
		out.Path = append(out.Path, coord(idx))
	}
	if out.Start != nil && out.End != nil {
		reached := len(path) > 0
		hops := -1
		if reached {
			hops = len(path) - 1
		}
		out.Reached, out.Hops = &reached, &hops
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes v to a JSON file at path.
func ExportJSON(v grid.View, solution []int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(v, solution, f)
}
