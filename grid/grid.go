// Package grid provides the square board used by the search engine.
//
// Cells hold one State each; neighbor lists are cached as Pos indices and
// refreshed only by RebuildNeighbors.
package grid

import (
	"fmt"
)

// Grid is a square board of rows×rows cells. It exclusively owns its cells;
// neighbor lists reference cells of the same Grid by position.
type Grid struct {
	rows  int
	cells [][]Cell
}

// New builds a rows×rows grid with every cell Empty and no cached neighbors.
// Returns ErrInvalidSize if rows < 1.
// Complexity: O(rows²) time and memory.
func New(rows int) (*Grid, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, rows)
	}
	g := &Grid{rows: rows}
	g.cells = makeCells(rows)

	return g, nil
}

func makeCells(rows int) [][]Cell {
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, rows)
		for c := 0; c < rows; c++ {
			cells[r][c] = Cell{row: r, col: c}
		}
	}
	return cells
}

// Rows returns the side length of the board.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether p lies on the board.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.rows
}

// Cell returns the cell at p, or nil if p is out of bounds.
func (g *Grid) Cell(p Pos) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[p.Row][p.Col]
}

// Index maps p to a row-major index: Row*rows + Col.
func (g *Grid) Index(p Pos) int {
	return p.Row*g.rows + p.Col
}

// Coordinate converts a row-major index back to a Pos.
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.rows, Col: idx % g.rows}
}

// Gap returns the pixel side of one cell when the board is drawn into a
// width×width square.
func (g *Grid) Gap(width int) int {
	return width / g.rows
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for r := range g.cells {
		for c := range g.cells[r] {
			fn(&g.cells[r][c])
		}
	}
}

// RebuildNeighbors refreshes the cached neighbor list of every cell.
// Must be called after any barrier change and before a search.
// Complexity: O(rows²).
func (g *Grid) RebuildNeighbors() {
	g.Each(func(c *Cell) { c.UpdateNeighbors(g) })
}

// Clear discards every cell and recreates the board Empty.
func (g *Grid) Clear() {
	g.cells = makeCells(g.rows)
}

// States returns a row-major copy of every cell's state.
func (g *Grid) States() [][]State {
	out := make([][]State, g.rows)
	for r := range g.cells {
		out[r] = make([]State, g.rows)
		for c := range g.cells[r] {
			out[r][c] = g.cells[r][c].state
		}
	}
	return out
}

// Count returns how many cells currently hold s.
func (g *Grid) Count(s State) int {
	n := 0
	g.Each(func(c *Cell) {
		if c.state == s {
			n++
		}
	})
	return n
}

// find returns the position of the first cell holding s.
func (g *Grid) find(s State) (Pos, bool) {
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].state == s {
				return Pos{Row: r, Col: c}, true
			}
		}
	}
	return Pos{}, false
}

// Start returns the position of the Start cell, if any.
func (g *Grid) Start() (Pos, bool) { return g.find(Start) }

// End returns the position of the End cell, if any.
func (g *Grid) End() (Pos, bool) { return g.find(End) }

// MarkStart makes p the Start cell. A previous Start elsewhere is reset to Empty.
func (g *Grid) MarkStart(p Pos) error {
	return g.markUnique(p, Start)
}

// MarkEnd makes p the End cell. A previous End elsewhere is reset to Empty.
func (g *Grid) MarkEnd(p Pos) error {
	return g.markUnique(p, End)
}

func (g *Grid) markUnique(p Pos, s State) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, g.rows, g.rows)
	}
	if prev, ok := g.find(s); ok && prev != p {
		g.cells[prev.Row][prev.Col].state = Empty
	}
	g.cells[p.Row][p.Col].state = s

	return nil
}

// MarkBarrier makes p impassable. Neighbor lists are not refreshed.
func (g *Grid) MarkBarrier(p Pos) error {
	return g.set(p, Barrier)
}

// Reset returns p to Empty whatever it held before.
func (g *Grid) Reset(p Pos) error {
	return g.set(p, Empty)
}

func (g *Grid) set(p Pos, s State) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, g.rows, g.rows)
	}
	g.cells[p.Row][p.Col].state = s
	return nil
}

// ResetNonBarrier clears every search marker (Frontier, Visited, Path) and
// preserves Start, End and Barrier cells. Returns the number of cells reset.
func (g *Grid) ResetNonBarrier() int {
	return g.ClearMarkers(ClearTransient)
}

// ClearMarkers resets search markers selected by policy back to Empty.
// Start, End and Barrier cells are never touched.
// Returns the number of cells reset.
func (g *Grid) ClearMarkers(policy ClearPolicy) int {
	n := 0
	g.Each(func(c *Cell) {
		switch c.state {
		case Frontier, Visited:
		case Path:
			if policy == ClearExplored {
				return
			}
		default:
			return
		}
		c.state = Empty
		n++
	})
	return n
}
