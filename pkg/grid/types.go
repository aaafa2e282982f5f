package grid

import (
	"fmt"
	"strings"
)

// Size bounds used by interactive front-ends.
const (
	DefaultSize = 20
	MinSize     = 5
	MaxSize     = 50
)

// CellState is the state of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota
	Obstacle
	Start
	End
	Visited
	Path
)

// CellStates lists every state in declaration order.
var CellStates = []CellState{Empty, Obstacle, Start, End, Visited, Path}

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case End:
		return "end"
	case Visited:
		return "visited"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// IsTransient reports whether s is produced by the engine and cleared
// before every run.
func (s CellState) IsTransient() bool {
	return s == Visited || s == Path
}

// IsRole reports whether s is a user placement the engine must not overwrite.
func (s CellState) IsRole() bool {
	return s == Obstacle || s == Start || s == End
}

// Mode selects what a placement does to the target cell.
type Mode uint8

const (
	// ModeObstacle toggles a cell between Empty and Obstacle.
	ModeObstacle Mode = iota
	// ModeStart moves the start endpoint to the target cell.
	ModeStart
	// ModeEnd moves the end endpoint to the target cell.
	ModeEnd
	// ModeErase clears any role from the target cell.
	ModeErase
)

// Modes lists every placement mode in declaration order.
var Modes = []Mode{ModeObstacle, ModeStart, ModeEnd, ModeErase}

func (m Mode) String() string {
	switch m {
	case ModeObstacle:
		return "obstacle"
	case ModeStart:
		return "start"
	case ModeEnd:
		return "end"
	case ModeErase:
		return "erase"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode converts a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "obstacle", "wall":
		return ModeObstacle, nil
	case "start":
		return ModeStart, nil
	case "end", "goal":
		return ModeEnd, nil
	case "erase":
		return ModeErase, nil
	}
	return 0, fmt.Errorf("unknown placement mode: %q", s)
}

// View is read-only access to a board for renderers.
type View interface {
	// Size returns N for an N×N board.
	Size() int
	// State returns the state at a row-major index.
	State(idx int) CellState
}

// Clamp restricts n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
