package pathfind_test

import (
	"fmt"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathfind"
)

func ExampleRun() {
	g := grid.New(5)
	g.PlaceAt(0, 0, grid.ModeStart)
	g.PlaceAt(4, 4, grid.ModeEnd)

	res, err := pathfind.Run(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("hops:", res.Hops)
	fmt.Println("path cells:", g.Count(grid.Path))
	// Output:
	// hops: 8
	// path cells: 7
}

func ExampleSolve_unreachable() {
	g := grid.New(3)
	g.PlaceAt(0, 0, grid.ModeStart)
	g.PlaceAt(2, 2, grid.ModeEnd)
	g.PlaceAt(1, 2, grid.ModeObstacle)
	g.PlaceAt(2, 1, grid.ModeObstacle)

	res, _ := pathfind.Solve(g.Snapshot())
	fmt.Println("reached:", res.Reached)
	fmt.Println("visited:", len(res.Visited))
	// Output:
	// reached: false
	// visited: 5
}
