// Package session provides the controller behind an interactive grid session.
//
// A [Controller] is the single owner of a [grid.Grid]. Front-ends feed it
// discrete user actions (placements, size changes, resets, run requests) and
// read the board back through [Controller.View]. Once per update cycle the
// front-end calls [Controller.Update], which
//
//   - reallocates the grid when the size slider moved since the last cycle,
//   - consumes a pending run request, running the shortest-path engine only
//     when both endpoints are set.
//
// # Clearing policy
//
// Stale Visited/Path marks from a finished run can either be removed on the
// next edit ([ClearOnEdit], the default) or kept until the next run starts
// ([ClearOnRun]). Both policies always clear before a run.
//
// # Usage
//
//	c := session.New(session.Options{Logger: logger})
//	c.PlaceAt(0, 0, grid.ModeStart)
//	c.PlaceAt(4, 4, grid.ModeEnd)
//	c.RequestRun()
//	report, err := c.Update(ctx)
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/observability"
	"github.com/matzehuels/gridpath/pkg/pathfind"
)

// ClearPolicy decides when stale Visited/Path marks are removed.
type ClearPolicy uint8

const (
	// ClearOnEdit removes marks before any edit that changes the board.
	ClearOnEdit ClearPolicy = iota
	// ClearOnRun keeps marks until the next run starts.
	ClearOnRun
)

func (p ClearPolicy) String() string {
	switch p {
	case ClearOnEdit:
		return "edit"
	case ClearOnRun:
		return "run"
	default:
		return fmt.Sprintf("ClearPolicy(%d)", uint8(p))
	}
}

// ParseClearPolicy converts "edit" or "run" to a ClearPolicy.
func ParseClearPolicy(s string) (ClearPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "edit":
		return ClearOnEdit, nil
	case "run":
		return ClearOnRun, nil
	}
	return 0, fmt.Errorf("unknown clear policy: %q (must be 'edit' or 'run')", s)
}

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	DefaultSize int
	MinSize     int
	MaxSize     int
	Policy      ClearPolicy
	Logger      *log.Logger
}

func (o *Options) setDefaults() {
	if o.MinSize <= 0 {
		o.MinSize = grid.MinSize
	}
	if o.MaxSize <= 0 {
		o.MaxSize = grid.MaxSize
	}
	if o.MaxSize < o.MinSize {
		o.MaxSize = o.MinSize
	}
	if o.DefaultSize <= 0 {
		o.DefaultSize = grid.DefaultSize
	}
	o.DefaultSize = grid.Clamp(o.DefaultSize, o.MinSize, o.MaxSize)
	if o.Logger == nil {
		o.Logger = log.Default()
	}
}

// Report describes one completed engine run.
type Report struct {
	ID       string
	Size     int
	Start    int
	End      int
	Result   pathfind.Result
	Duration time.Duration
}

// Controller owns the grid and the per-session UI state.
// It is not safe for concurrent use; a single event loop drives it.
type Controller struct {
	opts     Options
	grid     *grid.Grid
	mode     grid.Mode
	size     int // slider value, applied on the next Update
	prevSize int // size the grid was last allocated with
	pending  bool
	last     *Report
	runs     int
	logger   *log.Logger
}

// New creates a controller with a DefaultSize×DefaultSize empty grid in
// obstacle mode.
func New(opts Options) *Controller {
	opts.setDefaults()
	return &Controller{
		opts:     opts,
		grid:     grid.New(opts.DefaultSize),
		mode:     grid.ModeObstacle,
		size:     opts.DefaultSize,
		prevSize: opts.DefaultSize,
		logger:   opts.Logger,
	}
}

// View returns read-only access to the board.
func (c *Controller) View() grid.View { return c.grid }

// Snapshot returns a copy of the board.
func (c *Controller) Snapshot() grid.Snapshot { return c.grid.Snapshot() }

// Mode returns the current placement mode.
func (c *Controller) Mode() grid.Mode { return c.mode }

// SetMode selects the placement mode used by [Controller.Place].
func (c *Controller) SetMode(m grid.Mode) { c.mode = m }

// Policy returns the clearing policy.
func (c *Controller) Policy() ClearPolicy { return c.opts.Policy }

// Bounds returns the allowed size range.
func (c *Controller) Bounds() (lo, hi int) { return c.opts.MinSize, c.opts.MaxSize }

// Size returns the slider value. It equals the grid size after [Controller.Update].
func (c *Controller) Size() int { return c.size }

// SetSize moves the size slider, clamped to the configured bounds. The grid is
// reallocated on the next Update.
func (c *Controller) SetSize(n int) {
	c.size = grid.Clamp(n, c.opts.MinSize, c.opts.MaxSize)
}

// Runs returns the number of completed engine runs.
func (c *Controller) Runs() int { return c.runs }

// LastReport returns the most recent run report, or nil.
func (c *Controller) LastReport() *Report { return c.last }

// Pending reports whether a run request is waiting for the next Update.
func (c *Controller) Pending() bool { return c.pending }

// Place applies the current mode at (row, col).
func (c *Controller) Place(row, col int) bool {
	return c.PlaceAt(row, col, c.mode)
}

// PlaceAt applies mode at (row, col) and reports whether the board changed.
// Under ClearOnEdit, stale marks are removed when the edit lands.
func (c *Controller) PlaceAt(row, col int, mode grid.Mode) bool {
	idx, ok := c.grid.Index(row, col)
	if !ok {
		return false
	}
	before := c.grid.State(idx)
	if !c.grid.Place(idx, mode) {
		c.logger.Debug("placement rejected", "row", row, "col", col, "mode", mode)
		return false
	}
	if c.opts.Policy == ClearOnEdit {
		if n := c.grid.ClearTransient(); n > 0 {
			c.logger.Debug("cleared stale marks", "cells", n)
		}
	}
	c.logger.Debug("placed", "row", row, "col", col, "mode", mode, "was", before)
	return true
}

// Load replaces the board with the roles of v (obstacles and endpoints).
// Visited/Path marks in v are dropped. The size must lie within the
// controller's bounds.
func (c *Controller) Load(v grid.View) error {
	n := v.Size()
	if n < c.opts.MinSize || n > c.opts.MaxSize {
		return fmt.Errorf("board size %d outside [%d, %d]", n, c.opts.MinSize, c.opts.MaxSize)
	}
	c.grid.Resize(n)
	c.size, c.prevSize = n, n
	c.last = nil
	c.pending = false
	for idx := 0; idx < n*n; idx++ {
		switch v.State(idx) {
		case grid.Obstacle:
			c.grid.Place(idx, grid.ModeObstacle)
		case grid.Start:
			c.grid.Place(idx, grid.ModeStart)
		case grid.End:
			c.grid.Place(idx, grid.ModeEnd)
		}
	}
	c.logger.Debug("board loaded", "size", n)
	return nil
}

// Reset clears the board at its current size.
func (c *Controller) Reset() {
	c.grid.Reset()
	c.last = nil
	c.logger.Debug("grid reset", "size", c.grid.Size())
}

// ClearMarks removes Visited/Path marks regardless of policy.
func (c *Controller) ClearMarks() int {
	return c.grid.ClearTransient()
}

// RequestRun asks for one engine run on the next Update. Repeated requests
// before that Update collapse into one.
func (c *Controller) RequestRun() { c.pending = true }

// Update advances the session by one cycle. It applies a pending size change,
// then performs a pending run if both endpoints are set. It returns the new
// report when a run happened, or nil.
func (c *Controller) Update(ctx context.Context) (*Report, error) {
	if c.size != c.prevSize {
		c.logger.Debug("grid resized", "from", c.prevSize, "to", c.size)
		c.grid.Resize(c.size)
		c.prevSize = c.size
		c.last = nil
	}

	if !c.pending {
		return nil, nil
	}
	c.pending = false

	if !c.grid.Ready() {
		reason := c.missing()
		observability.Engine().OnRunSkipped(ctx, reason)
		c.logger.Debug("run skipped", "reason", reason)
		return nil, nil
	}
	return c.run(ctx)
}

func (c *Controller) missing() string {
	_, okS := c.grid.Start()
	_, okE := c.grid.End()
	switch {
	case !okS && !okE:
		return "start and end not set"
	case !okS:
		return "start not set"
	default:
		return "end not set"
	}
}

func (c *Controller) run(ctx context.Context) (*Report, error) {
	size := c.grid.Size()
	observability.Engine().OnRunStart(ctx, size)

	started := time.Now()
	c.grid.ClearTransient()
	res, err := pathfind.Run(c.grid)
	if err != nil {
		return nil, fmt.Errorf("run engine: %w", err)
	}
	elapsed := time.Since(started)

	start, _ := c.grid.Start()
	end, _ := c.grid.End()
	rep := &Report{
		ID:       uuid.NewString(),
		Size:     size,
		Start:    start,
		End:      end,
		Result:   res,
		Duration: elapsed,
	}
	c.last = rep
	c.runs++

	observability.Engine().OnRunComplete(ctx, observability.RunStats{
		ID:       rep.ID,
		Size:     size,
		Visited:  len(res.Visited),
		Expanded: res.Expanded,
		Hops:     res.Hops,
		Reached:  res.Reached,
	}, elapsed)

	c.logger.Info("shortest path computed",
		"run", rep.ID,
		"size", size,
		"reached", res.Reached,
		"hops", res.Hops,
		"visited", len(res.Visited),
		"duration", elapsed)
	return rep, nil
}
