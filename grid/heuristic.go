package grid

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the exact hop count
// between two cells on an open 4-connected board.
// It satisfies the Heuristic signature.
func Manhattan(a, b Pos) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
