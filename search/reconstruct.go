package search

import "github.com/katalvlaran/pathviz/grid"

// Reconstruct walks cameFrom back from end, marking every intermediate cell
// Path and calling render after each step. The walk stops at the first cell
// without a predecessor, which is re-asserted as Start. End and the root are
// never painted Path. Render signals are ignored here: the route is already
// known and is always drawn in full.
//
// Returns the route ordered root → end, both inclusive.
// Complexity: O(L) for a route of L cells.
func Reconstruct(g *grid.Grid, cameFrom map[grid.Pos]grid.Pos, end grid.Pos, render RenderFunc) []grid.Pos {
	if render == nil {
		render = func() Signal { return Continue }
	}
	path := []grid.Pos{end}
	current := end
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		if _, more := cameFrom[prev]; more {
			g.Cell(prev).SetState(grid.Path)
		}
		path = append(path, prev)
		render()
		current = prev
	}
	g.Cell(current).SetState(grid.Start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
