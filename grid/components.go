package grid

// Components finds all 4-connected regions of passable (non-Barrier) cells.
// Adjacency is read live from cell states, not from cached neighbor lists.
// Each component lists positions in discovery order; components are ordered
// by their first cell in row-major order.
//
// Time:   O(R²).
// Memory: O(R²) for seen flags and output.
func (g *Grid) Components() [][]Pos {
	total := g.rows * g.rows
	seen := make([]bool, total)
	var comps [][]Pos

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.rows; c++ {
			p0 := Pos{Row: r, Col: c}
			i0 := g.Index(p0)
			if seen[i0] || g.cells[r][c].IsBarrier() {
				continue
			}
			seen[i0] = true
			queue := []Pos{p0}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range neighborOffsets {
					v := Pos{Row: u.Row + d.Row, Col: u.Col + d.Col}
					if !g.InBounds(v) || g.cells[v.Row][v.Col].IsBarrier() {
						continue
					}
					if vi := g.Index(v); !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// component. Front ends use it to warn before a run that cannot succeed.
func (g *Grid) Connected(a, b Pos) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	for _, comp := range g.Components() {
		hasA, hasB := false, false
		for _, p := range comp {
			hasA = hasA || p == a
			hasB = hasB || p == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
