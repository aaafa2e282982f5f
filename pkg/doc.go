// Package pkg provides the core libraries for gridpath, an interactive
// shortest-path playground on a square grid.
//
// # Overview
//
// A user draws obstacles on an N×N board, places a start and an end cell,
// and runs Dijkstra's algorithm over the 4-connected open cells. The pkg
// directory is organized as follows:
//
//  1. [grid] - The board: cell states, placement rules, resizing
//  2. [pathfind] - The shortest-path engine
//  3. [session] - The per-cycle controller behind the interactive board
//  4. [scenario], [io] - Text maps and JSON boards
//  5. [render] - Terminal, PNG and Graphviz renderers
//  6. [pipeline] - Headless orchestration (solve → render)
//  7. [cache] - Rendered artifact cache
//  8. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through gridpath:
//
//	Mouse / keys          Map file
//	     ↓                   ↓
//	[session] controller  [scenario] / [io]
//	     ↓                   ↓
//	        [grid] board
//	             ↓
//	   [pathfind] Solve + Apply
//	             ↓
//	   [render] terminal / PNG / SVG
//
// # Quick Start
//
//	g, err := scenario.ParseString("S..\n.#.\n..E\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := pathfind.Run(g)
//	fmt.Println(res.Hops)          // 4
//	fmt.Print(scenario.Format(g))  // marked board
//
// [grid]: github.com/matzehuels/gridpath/pkg/grid
// [pathfind]: github.com/matzehuels/gridpath/pkg/pathfind
// [session]: github.com/matzehuels/gridpath/pkg/session
// [scenario]: github.com/matzehuels/gridpath/pkg/scenario
// [io]: github.com/matzehuels/gridpath/pkg/io
// [render]: github.com/matzehuels/gridpath/pkg/render
// [pipeline]: github.com/matzehuels/gridpath/pkg/pipeline
// [cache]: github.com/matzehuels/gridpath/pkg/cache
// [errors]: github.com/matzehuels/gridpath/pkg/errors
// [observability]: github.com/matzehuels/gridpath/pkg/observability
// [buildinfo]: github.com/matzehuels/gridpath/pkg/buildinfo
package pkg
