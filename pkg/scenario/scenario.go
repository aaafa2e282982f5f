// Package scenario reads and writes grids as plain-text maps.
//
// A map is N lines of N characters:
//
//	.  empty
//	#  obstacle
//	S  start
//	E  end
//	o  visited (read as empty)
//	*  path    (read as empty)
//
// Blank lines and lines starting with ';' are skipped, so a rendered result can
// be fed back in as a fresh board.
//
//	; 5x5 with a wall
//	S.#..
//	..#..
//	..#..
//	.....
//	..#.E
package scenario

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

// Map characters.
const (
	CharEmpty    = '.'
	CharObstacle = '#'
	CharStart    = 'S'
	CharEnd      = 'E'
	CharVisited  = 'o'
	CharPath     = '*'
	CharComment  = ';'
)

// MaxSize bounds the side length of a map.
const MaxSize = 200

// Parse reads a map from r.
func Parse(r io.Reader) (*grid.Grid, error) {
	var rows []string
	var lines []int

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || line[0] == CharComment {
			continue
		}
		rows = append(rows, line)
		lines = append(lines, n)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "read map")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidScenario, "map is empty")
	}

	size := len(rows)
	if size > MaxSize {
		return nil, errors.New(errors.ErrCodeInvalidSize, "map has %d rows, max %d", size, MaxSize)
	}

	g := grid.New(size)
	var hasStart, hasEnd bool
	for r, row := range rows {
		if w := len([]rune(row)); w != size {
			return nil, errors.New(errors.ErrCodeInvalidScenario,
				"line %d: %d cells, want %d (maps are square)", lines[r], w, size)
		}
		for c, ch := range []rune(row) {
			idx, _ := g.Index(r, c)
			switch ch {
			case CharEmpty, CharVisited, CharPath:
			case CharObstacle:
				g.Place(idx, grid.ModeObstacle)
			case CharStart:
				if hasStart {
					return nil, errors.New(errors.ErrCodeInvalidScenario, "line %d: second start", lines[r])
				}
				hasStart = true
				g.Place(idx, grid.ModeStart)
			case CharEnd:
				if hasEnd {
					return nil, errors.New(errors.ErrCodeInvalidScenario, "line %d: second end", lines[r])
				}
				hasEnd = true
				g.Place(idx, grid.ModeEnd)
			default:
				return nil, errors.New(errors.ErrCodeInvalidScenario,
					"line %d, column %d: unknown cell %q", lines[r], c+1, ch)
			}
		}
	}
	return g, nil
}

// ParseString is [Parse] on a string.
func ParseString(s string) (*grid.Grid, error) {
	return Parse(strings.NewReader(s))
}

// Load reads a map from path, or from stdin when path is "-".
func Load(path string) (*grid.Grid, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "map %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open map")
	}
	defer f.Close()
	return Parse(f)
}

// Char returns the map character for s.
func Char(s grid.CellState) rune {
	switch s {
	case grid.Obstacle:
		return CharObstacle
	case grid.Start:
		return CharStart
	case grid.End:
		return CharEnd
	case grid.Visited:
		return CharVisited
	case grid.Path:
		return CharPath
	default:
		return CharEmpty
	}
}

// Format renders v as a map, one row per line.
func Format(v grid.View) string {
	n := v.Size()
	var b strings.Builder
	b.Grow(n * (n + 1))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			b.WriteRune(Char(v.State(r*n + c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Write writes [Format] of v to w.
func Write(w io.Writer, v grid.View) error {
	_, err := io.WriteString(w, Format(v))
	return err
}
