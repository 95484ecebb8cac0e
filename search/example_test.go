package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// ExampleRun walks a 3×3 board corner to corner and prints the final frame.
// Frontier cells are 'o', visited 'x', the route '*'.
func ExampleRun() {
	g := grid.MustParse(`
		S..
		...
		..E
	`)
	g.RebuildNeighbors()
	start, _ := g.Start()
	end, _ := g.End()

	frames := 0
	res, err := search.Run(g, start, end, func() search.Signal {
		frames++
		return search.Continue
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Hops(), "hops,", frames, "frames")
	fmt.Print(g.Format())
	// Output:
	// found 4 hops, 12 frames
	// Sxx
	// *xx
	// **E
}

// ExampleRun_blocked shows that an unreachable target is an outcome, not an error.
func ExampleRun_blocked() {
	g := grid.MustParse(`
		S#E
		.#.
		.#.
	`)
	g.RebuildNeighbors()
	res, err := search.Run(g, grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 0, Col: 2}, nil)
	fmt.Println(res.Outcome, err)
	// Output:
	// not_found <nil>
}

// ExampleRun_cancel stops the search from inside the render callback, the
// way a window's quit event would.
func ExampleRun_cancel() {
	g, _ := grid.New(20)
	start, end := grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 19, Col: 19}
	_ = g.MarkStart(start)
	_ = g.MarkEnd(end)
	g.RebuildNeighbors()

	quit := 0
	res, _ := search.Run(g, start, end, func() search.Signal {
		quit++
		if quit == 10 {
			return search.Cancel
		}
		return search.Continue
	})
	fmt.Println(res.Outcome, len(res.Order))
	// Output:
	// cancelled 10
}
