package pathfind

import (
	"container/heap"
	"errors"
	"math"

	"github.com/matzehuels/gridpath/pkg/grid"
)

// ErrNotReady is returned when the start or end cell is unset, or both are
// the same cell. Callers are expected to check [grid.Grid.Ready] first.
var ErrNotReady = errors.New("pathfind: start and end must both be set")

const (
	inf  = math.MaxInt
	none = -1
)

// Board is the read-only input of [Solve].
type Board interface {
	grid.View
	Start() (int, bool)
	End() (int, bool)
}

// Result is the outcome of one engine run.
type Result struct {
	// Visited holds every cell whose tentative distance was set, in discovery
	// order. Start and End are never included.
	Visited []int
	// Path runs from Start to End inclusive. It is empty when End is unreachable.
	Path []int
	// Hops is the path length in edges, or -1 when End is unreachable.
	Hops int
	// Reached reports whether End is reachable from Start.
	Reached bool
	// Expanded counts frontier entries that were not stale when popped.
	Expanded int
}

// Interior returns the path without its endpoints: the cells marked Path.
func (r Result) Interior() []int {
	if len(r.Path) < 2 {
		return nil
	}
	return r.Path[1 : len(r.Path)-1]
}

// Solve runs the search on b without modifying it.
func Solve(b Board) (Result, error) {
	start, okS := b.Start()
	end, okE := b.End()
	if !okS || !okE || start == end {
		return Result{Hops: -1}, ErrNotReady
	}

	n := b.Size()
	s := &search{
		board: b,
		size:  n,
		start: start,
		end:   end,
		dist:  make([]int, n*n),
		prev:  make([]int, n*n),
	}
	s.init()
	s.process()
	return s.result(), nil
}

// Apply marks r onto g: Visited cells first, then interior path cells.
// Cells holding a role are left untouched.
func Apply(g *grid.Grid, r Result) {
	for _, v := range r.Visited {
		g.Mark(v, grid.Visited)
	}
	for _, p := range r.Interior() {
		g.Mark(p, grid.Path)
	}
}

// Run solves g and writes the marks back onto it. Callers clear stale
// transient marks with [grid.Grid.ClearTransient] beforehand.
func Run(g *grid.Grid) (Result, error) {
	r, err := Solve(g)
	if err != nil {
		return r, err
	}
	Apply(g, r)
	return r, nil
}

// search holds the mutable state of a single run.
type search struct {
	board    grid.View
	size     int
	start    int
	end      int
	dist     []int
	prev     []int
	pq       frontier
	visited  []int
	expanded int
}

func (s *search) init() {
	for i := range s.dist {
		s.dist[i] = inf
		s.prev[i] = none
	}
	s.dist[s.start] = 0
	heap.Init(&s.pq)
	heap.Push(&s.pq, item{dist: 0, idx: s.start})
}

func (s *search) process() {
	nbrs := make([]int, 0, 4)
	for s.pq.Len() > 0 {
		it := heap.Pop(&s.pq).(item)
		d, u := it.dist, it.idx
		if d > s.dist[u] {
			continue
		}
		s.expanded++
		if u == s.end {
			return
		}
		nbrs = grid.Neighbors(s.size, u, nbrs[:0])
		for _, v := range nbrs {
			st := s.board.State(v)
			if st == grid.Obstacle || v == s.start {
				continue
			}
			nd := d + 1
			if nd >= s.dist[v] {
				continue
			}
			if s.dist[v] == inf && v != s.end {
				s.visited = append(s.visited, v)
			}
			s.dist[v] = nd
			s.prev[v] = u
			heap.Push(&s.pq, item{dist: nd, idx: v})
		}
	}
}

func (s *search) result() Result {
	r := Result{Visited: s.visited, Hops: -1, Expanded: s.expanded}
	if s.prev[s.end] == none {
		return r
	}
	var rev []int
	for cur := s.end; cur != none; cur = s.prev[cur] {
		rev = append(rev, cur)
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	r.Path = path
	r.Hops = s.dist[s.end]
	r.Reached = true
	return r
}

// item is a frontier entry.
type item struct {
	dist int
	idx  int
}

// frontier is a min-heap of items ordered by distance, then index.
type frontier []item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].idx < f[j].idx
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(item)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}
