// Package pathfind computes single-source shortest paths on a grid board.
//
// The engine is Dijkstra's algorithm specialised to unit edge weights on a
// 4-connected grid (up, down, left, right). Obstacle cells are removed from the
// graph and the Start cell is never re-entered. The frontier is a binary
// min-heap keyed by (distance, index) with lazy deletion: superseded entries
// stay in the heap and are skipped when popped.
//
// Complexity:
//
//   - Time:  O(N² log N²) for an N×N board.
//   - Space: O(N²) for the distance and predecessor arrays and the heap.
//
// The search stops as soon as the End cell is popped, since its distance is
// then final. An unreachable End is a normal outcome: the [Result] carries the
// visited cells and an empty path.
//
// # Usage
//
//	g := grid.New(5)
//	g.PlaceAt(0, 0, grid.ModeStart)
//	g.PlaceAt(4, 4, grid.ModeEnd)
//	g.ClearTransient()
//	res, err := pathfind.Run(g)
//	if err != nil {
//	    return err // only ErrNotReady
//	}
//	fmt.Println(res.Hops) // 8
//
// [Solve] is pure and works on a [grid.Snapshot]; [Apply] writes a result
// back through [grid.Grid.Mark]; [Run] does both.
package pathfind
