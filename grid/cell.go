package grid

// Cell is a single board square. Its coordinates are fixed at construction;
// its state and cached neighbor list are mutable.
type Cell struct {
	row, col  int
	state     State
	neighbors []Pos
}

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.col }

// Pos returns the cell's coordinates.
func (c *Cell) Pos() Pos { return Pos{Row: c.row, Col: c.col} }

// State returns the current state.
func (c *Cell) State() State { return c.state }

// SetState overwrites the current state. No other field changes.
func (c *Cell) SetState(s State) { c.state = s }

func (c *Cell) IsEmpty() bool    { return c.state == Empty }
func (c *Cell) IsFrontier() bool { return c.state == Frontier }
func (c *Cell) IsVisited() bool  { return c.state == Visited }
func (c *Cell) IsBarrier() bool  { return c.state == Barrier }
func (c *Cell) IsStart() bool    { return c.state == Start }
func (c *Cell) IsEnd() bool      { return c.state == End }
func (c *Cell) IsPath() bool     { return c.state == Path }

// Neighbors returns the list cached by the last UpdateNeighbors call.
// The slice must not be modified.
func (c *Cell) Neighbors() []Pos { return c.neighbors }

// UpdateNeighbors recomputes the cell's passable orthogonal neighbors in g,
// caches them and returns them. Order is down, up, right, left; cells outside
// the board or in Barrier state are skipped.
// Complexity: O(1).
func (c *Cell) UpdateNeighbors(g *Grid) []Pos {
	nbrs := make([]Pos, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		p := Pos{Row: c.row + d.Row, Col: c.col + d.Col}
		if !g.InBounds(p) || g.cells[p.Row][p.Col].IsBarrier() {
			continue
		}
		nbrs = append(nbrs, p)
	}
	c.neighbors = nbrs

	return nbrs
}
