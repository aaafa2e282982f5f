// Package io provides JSON import and export for boards.
//
// # JSON Format
//
// Coordinates are [row, col] pairs. Only size is required:
//
//	{
//	  "size": 5,
//	  "start": [0, 0],
//	  "end": [4, 4],
//	  "obstacles": [[2, 1], [2, 2], [2, 3]],
//	  "visited": [[0, 1], [1, 0]],
//	  "path": [[0, 0], [1, 0], [2, 0]],
//	  "reached": true,
//	  "hops": 8
//	}
//
// visited, path, reached and hops describe a solved board. They are written
// by [WriteJSON] and ignored by [ReadJSON], so a solved export can be read
// back as an unsolved board. path is in walk order, Start to End.
//
// # Round Trip
//
//	g, err := io.ImportJSON("board.json")
//	res, err := pathfind.Run(g)
//	err = io.WriteJSON(g, res.Path, os.Stdout)
//
// Errors from [ReadJSON] carry the INVALID_SCENARIO or INVALID_SIZE code from
// package errors.
package io
