// Package pipeline provides the headless solve → render pipeline.
//
// This package runs the shortest-path engine on a prepared grid and renders
// the result in one or more output formats. The CLI's solve command is a thin
// wrapper around it; the interactive front-end uses the same renderers
// directly.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Solve: clear stale marks, run the engine, write Visited/Path marks back
//  2. Render: produce every requested format from the marked grid
//
// The context is checked before each stage and between formats.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, g, pipeline.Options{
//	    Formats: []string{"txt", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpath/pkg/cache"
	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/pathfind"
	"github.com/matzehuels/gridpath/pkg/render/raster"
)

// Format constants for output formats.
const (
	FormatTXT  = "txt"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats in render order.
var ValidFormats = []string{FormatTXT, FormatDOT, FormatSVG, FormatPNG, FormatJSON}

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatTXT

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Render options
	Formats    []string
	CellPixels int  // PNG cell size; 0 selects the raster default
	Labels     bool // node labels in DOT/SVG
	Adjacency  bool // adjacency edges in DOT/SVG

	// Runtime options
	Logger   *log.Logger
	Cache    cache.Cache   // SVG artifact cache; nil disables caching
	CacheTTL time.Duration // lifetime of cached artifacts; 0 never expires

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies the run in logs and summaries.
	ID string

	// Solution is the engine result.
	Solution pathfind.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Size       int
	Visited    int
	Hops       int
	Reached    bool
	SolveTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.CellPixels != 0 && (o.CellPixels < raster.MinCellPixels || o.CellPixels > raster.MaxCellPixels) {
		return errors.New(errors.ErrCodeInvalidInput,
			"cell size %dpx out of range [%d, %d]", o.CellPixels, raster.MinCellPixels, raster.MaxCellPixels)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Cache == nil {
		o.Cache = cache.NewNullCache()
	}
	if o.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl %s must not be negative", o.CacheTTL)
	}
	o.validated = true
	return nil
}

// Wants reports whether format was requested.
func (o *Options) Wants(format string) bool {
	return slices.Contains(o.Formats, format)
}
