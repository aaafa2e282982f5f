// Package grid holds the board state of a shortest-path visualization.
//
// A [Grid] is an N×N array of [CellState] values stored row-major
// (index = row*N + col) plus two optional endpoint indices. The grid is the
// single owner of its cells: front-ends read it through the [View] interface
// and change it only through [Grid.Place], [Grid.Resize], [Grid.Reset] and
// [Grid.ClearTransient]. The shortest-path engine writes its transient
// Visited/Path marks through [Grid.Mark].
//
// # Invariants
//
//   - At most one cell is [Start] and at most one is [End]; their indices are
//     reported by [Grid.Start] and [Grid.End].
//   - [Visited] and [Path] are transient: only the engine produces them and
//     [Grid.ClearTransient] removes them.
//   - Resize reallocates the whole board; placements are never rescaled.
//
// # Placement
//
//	g := grid.New(5)
//	g.PlaceAt(0, 0, grid.ModeStart)
//	g.PlaceAt(4, 4, grid.ModeEnd)
//	g.PlaceAt(2, 2, grid.ModeObstacle) // toggles Empty <-> Obstacle
//
// Placing an endpoint on the other endpoint is rejected, and obstacles
// cannot be toggled on either endpoint.
package grid
