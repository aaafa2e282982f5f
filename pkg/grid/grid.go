package grid

const unset = -1

// offsets are the 4-connected neighbor deltas as (row, col): up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a mutable N×N board. The zero value is not usable; call [New].
type Grid struct {
	size  int
	cells []CellState
	start int
	end   int
}

// New returns an empty size×size grid with no endpoints.
// Sizes below 1 are raised to 1.
func New(size int) *Grid {
	g := &Grid{}
	g.Resize(size)
	return g
}

// Size returns N.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells, N².
func (g *Grid) Len() int { return len(g.cells) }

// State returns the state at idx, or Empty when idx is out of range.
func (g *Grid) State(idx int) CellState {
	if idx < 0 || idx >= len(g.cells) {
		return Empty
	}
	return g.cells[idx]
}

// Start returns the start index and whether it is set.
func (g *Grid) Start() (int, bool) { return g.start, g.start != unset }

// End returns the end index and whether it is set.
func (g *Grid) End() (int, bool) { return g.end, g.end != unset }

// Ready reports whether both endpoints are set and distinct.
func (g *Grid) Ready() bool {
	return g.start != unset && g.end != unset && g.start != g.end
}

// Resize reallocates the board to size×size, all Empty, endpoints unset.
func (g *Grid) Resize(size int) {
	if size < 1 {
		size = 1
	}
	g.size = size
	g.cells = make([]CellState, size*size)
	g.start, g.end = unset, unset
}

// Reset clears the board without changing its size.
func (g *Grid) Reset() { g.Resize(g.size) }

// InBounds reports whether (row, col) lies on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Index maps (row, col) to a row-major index.
func (g *Grid) Index(row, col int) (int, bool) {
	if !g.InBounds(row, col) {
		return 0, false
	}
	return row*g.size + col, true
}

// Coord maps a row-major index back to (row, col).
func (g *Grid) Coord(idx int) (row, col int) {
	return idx / g.size, idx % g.size
}

// Neighbors appends the in-bounds 4-connected neighbors of idx to buf in the
// order up, down, left, right and returns the extended slice.
func (g *Grid) Neighbors(idx int, buf []int) []int {
	return Neighbors(g.size, idx, buf)
}

// Neighbors is [Grid.Neighbors] for a board of the given size.
func Neighbors(size, idx int, buf []int) []int {
	r, c := idx/size, idx%size
	for _, d := range offsets {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr >= size || nc < 0 || nc >= size {
			continue
		}
		buf = append(buf, nr*size+nc)
	}
	return buf
}

// PlaceAt applies mode at (row, col). See [Grid.Place].
func (g *Grid) PlaceAt(row, col int, mode Mode) bool {
	idx, ok := g.Index(row, col)
	if !ok {
		return false
	}
	return g.Place(idx, mode)
}

// Place applies a placement mode to the cell at idx and reports whether the
// board changed. Out-of-range indices are ignored.
//
//   - ModeStart/ModeEnd move the endpoint; placing one endpoint on the other
//     is rejected.
//   - ModeObstacle flips Obstacle to Empty and anything else to Obstacle,
//     except on an endpoint.
//   - ModeErase empties the cell and unsets an endpoint held there.
func (g *Grid) Place(idx int, mode Mode) bool {
	if idx < 0 || idx >= len(g.cells) {
		return false
	}
	switch mode {
	case ModeStart:
		return g.moveEndpoint(&g.start, g.end, idx, Start)
	case ModeEnd:
		return g.moveEndpoint(&g.end, g.start, idx, End)
	case ModeObstacle:
		if idx == g.start || idx == g.end {
			return false
		}
		if g.cells[idx] == Obstacle {
			g.cells[idx] = Empty
		} else {
			g.cells[idx] = Obstacle
		}
		return true
	case ModeErase:
		if idx == g.start {
			g.start = unset
		}
		if idx == g.end {
			g.end = unset
		}
		changed := g.cells[idx] != Empty
		g.cells[idx] = Empty
		return changed
	}
	return false
}

func (g *Grid) moveEndpoint(self *int, other, idx int, state CellState) bool {
	if idx == other {
		return false
	}
	if *self == idx && g.cells[idx] == state {
		return false
	}
	if *self != unset {
		g.cells[*self] = Empty
	}
	*self = idx
	g.cells[idx] = state
	return true
}

// ClearTransient resets every Visited or Path cell to Empty and returns how
// many cells changed.
func (g *Grid) ClearTransient() int {
	n := 0
	for i, s := range g.cells {
		if s.IsTransient() {
			g.cells[i] = Empty
			n++
		}
	}
	return n
}

// Mark writes a transient state onto idx. It refuses non-transient states and
// cells holding a role (Obstacle, Start, End).
func (g *Grid) Mark(idx int, s CellState) bool {
	if !s.IsTransient() || idx < 0 || idx >= len(g.cells) {
		return false
	}
	if g.cells[idx].IsRole() {
		return false
	}
	g.cells[idx] = s
	return true
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Snapshot returns an immutable copy of the board.
func (g *Grid) Snapshot() Snapshot {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return Snapshot{size: g.size, cells: cells, start: g.start, end: g.end}
}

// Snapshot is a read-only copy of a [Grid] taken at one point in time.
type Snapshot struct {
	size  int
	cells []CellState
	start int
	end   int
}

// Size returns N.
func (s Snapshot) Size() int { return s.size }

// Len returns N².
func (s Snapshot) Len() int { return len(s.cells) }

// State returns the state at idx, or Empty when idx is out of range.
func (s Snapshot) State(idx int) CellState {
	if idx < 0 || idx >= len(s.cells) {
		return Empty
	}
	return s.cells[idx]
}

// Start returns the start index and whether it is set.
func (s Snapshot) Start() (int, bool) { return s.start, s.start != unset }

// End returns the end index and whether it is set.
func (s Snapshot) End() (int, bool) { return s.end, s.end != unset }

// Ready reports whether both endpoints are set and distinct.
func (s Snapshot) Ready() bool {
	return s.start != unset && s.end != unset && s.start != s.end
}
