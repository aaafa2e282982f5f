package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/gridpath/pkg/cache"
	"github.com/matzehuels/gridpath/pkg/grid"
	gridio "github.com/matzehuels/gridpath/pkg/io"
	"github.com/matzehuels/gridpath/pkg/observability"
	"github.com/matzehuels/gridpath/pkg/render/nodelink"
	"github.com/matzehuels/gridpath/pkg/render/raster"
	"github.com/matzehuels/gridpath/pkg/scenario"
)

// Render generates every requested format from a marked grid. path is the
// engine path, Start to End inclusive, and may be empty.
func Render(ctx context.Context, v grid.View, path []int, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderAll(ctx, v, path, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderAll(ctx context.Context, v grid.View, path []int, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	// DOT feeds both the dot and svg outputs.
	var dot string
	if opts.Wants(FormatDOT) || opts.Wants(FormatSVG) {
		dot = nodelink.ToDOT(v, nodelink.Options{
			Labels:    opts.Labels,
			Adjacency: opts.Adjacency,
			Path:      path,
		})
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := renderFormat(ctx, format, v, path, dot, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		opts.Logger.Debug("rendered", "format", format, "bytes", len(data))
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, format string, v grid.View, path []int, dot string, opts Options) ([]byte, error) {
	switch format {
	case FormatTXT:
		return []byte(scenario.Format(v)), nil
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return renderSVG(ctx, dot, opts)
	case FormatPNG:
		return raster.RenderPNG(v, raster.Options{CellPixels: opts.CellPixels})
	case FormatJSON:
		var buf bytes.Buffer
		if err := gridio.WriteJSON(v, path, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// renderSVG lays out dot with Graphviz, reusing a cached render of the same
// DOT source when one exists. Cache failures are logged and never fail the
// render.
func renderSVG(ctx context.Context, dot string, opts Options) ([]byte, error) {
	key := cache.Key(FormatSVG, dot)
	data, hit, err := opts.Cache.Get(ctx, key)
	if err != nil {
		opts.Logger.Warn("cache read failed", "err", err)
	}
	if hit {
		opts.Logger.Debug("svg cache hit", "key", key[:12])
		return data, nil
	}

	data, err = nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	if err := opts.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
		opts.Logger.Warn("cache write failed", "err", err)
	}
	return data, nil
}
