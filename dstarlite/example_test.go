package dstarlite_test

import (
	"fmt"

	"github.com/katalvlaran/voxnav/dstarlite"
	"github.com/katalvlaran/voxnav/gridgraph"
)

// ExampleNew walks a 5×5 maze from the top-left to the bottom-right corner.
//
//	S # . . .
//	. # . # .
//	. . . # .
//	. # . # .
//	. . # . G
func ExampleNew() {
	gg, _ := gridgraph.From2D([][]int{
		{0, 1, 0, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 0, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
	}, gridgraph.Conn4)

	p, err := dstarlite.New(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 4}, gg.Oracle())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cost:", p.Cost())
	for {
		next, ok, err := p.TryNext()
		if err != nil || !ok {
			break
		}
		fmt.Print(next, " ")
	}
	fmt.Println()
	// Output:
	// cost: 12
	// {0 1} {0 2} {1 2} {2 2} {2 1} {2 0} {3 0} {4 0} {4 1} {4 2} {4 3} {4 4}
}

// ExamplePlanner_UpdateFromUpdatedEdges closes a corridor after the plan was made.
func ExamplePlanner_UpdateFromUpdatedEdges() {
	gg, _ := gridgraph.From2D([][]int{
		{0, 0, 0},
		{0, 0, 0},
	}, gridgraph.Conn4)
	p, _ := dstarlite.New(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 0}, gg.Oracle())
	fmt.Println("before:", p.Cost())

	changes, _ := gg.SetCell(1, 0, 1)
	gridgraph.QueueChanges(p, changes)
	p.UpdateFromUpdatedEdges()

	path, _ := p.Path(0)
	fmt.Println("after:", p.Cost(), path)
	// Output:
	// before: 2
	// after: 4 [{0 1} {1 1} {2 1} {2 0}]
}
