// Package nodelink renders a grid as a node-link diagram using Graphviz.
//
// # Overview
//
// Every cell becomes a square node pinned at its board position, filled with
// its palette color. Optional edges show 4-connected adjacency between open
// cells, and a solved path is drawn as a chain of heavy edges on top.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Path: res.Path})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools. It selects the neato engine so pinned positions are honored.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
