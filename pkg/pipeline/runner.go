package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/observability"
	"github.com/matzehuels/gridpath/pkg/pathfind"
)

// Runner executes the pipeline.
//
// The Runner is stateless except for its logger, so multiple goroutines can
// use the same Runner on different grids.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete solve → render pipeline on g. The grid keeps the
// Visited/Path marks of the run.
func (r *Runner) Execute(ctx context.Context, g *grid.Grid, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		ID:        uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Solve
	solveStart := time.Now()
	res, err := r.Solve(ctx, result.ID, g)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Solution = res
	result.Stats = Stats{
		Size:      g.Size(),
		Visited:   len(res.Visited),
		Hops:      res.Hops,
		Reached:   res.Reached,
		SolveTime: time.Since(solveStart),
	}

	r.Logger.Info("solved grid",
		"run", result.ID,
		"size", g.Size(),
		"reached", res.Reached,
		"hops", res.Hops,
		"visited", len(res.Visited),
		"duration", result.Stats.SolveTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, g, res.Path, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Solve clears stale marks on g, runs the engine and applies the result.
// Both endpoints must be set.
func (r *Runner) Solve(ctx context.Context, id string, g *grid.Grid) (pathfind.Result, error) {
	if err := ctx.Err(); err != nil {
		return pathfind.Result{}, err
	}
	if !g.Ready() {
		return pathfind.Result{}, errors.Wrap(errors.ErrCodeInvalidInput, pathfind.ErrNotReady,
			"grid needs both a start and an end cell")
	}

	hooks := observability.Engine()
	hooks.OnRunStart(ctx, g.Size())
	start := time.Now()

	if n := g.ClearTransient(); n > 0 {
		r.Logger.Debug("cleared stale marks", "cells", n)
	}
	res, err := pathfind.Run(g)
	if err != nil {
		return res, errors.Wrap(errors.ErrCodeInternal, err, "run engine")
	}

	hooks.OnRunComplete(ctx, observability.RunStats{
		ID:       id,
		Size:     g.Size(),
		Visited:  len(res.Visited),
		Expanded: res.Expanded,
		Hops:     res.Hops,
		Reached:  res.Reached,
	}, time.Since(start))
	return res, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
