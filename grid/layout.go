package grid

import (
	"fmt"
	"math/rand"
	"strings"
)

// Parse builds a grid from a text layout, one line per row, one glyph per
// cell: '.' empty, '#' barrier, 'S' start, 'E' end, 'o' frontier,
// 'x' visited, '*' path. Blank lines and surrounding spaces are ignored.
//
// Returns ErrBadLayout if the layout is empty, not square, contains an
// unknown glyph, or has more than one S or E.
// Neighbor lists are not built; call RebuildNeighbors before searching.
func Parse(layout string) (*Grid, error) {
	var lines []string
	for _, ln := range strings.Split(layout, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadLayout)
	}
	g, _ := New(len(lines))
	starts, ends := 0, 0
	for r, ln := range lines {
		if len(ln) != g.rows {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, r, len(ln), g.rows)
		}
		for c := 0; c < len(ln); c++ {
			s, ok := StateOf(ln[c])
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at %v", ErrBadLayout, ln[c], Pos{r, c})
			}
			switch s {
			case Start:
				starts++
			case End:
				ends++
			}
			g.cells[r][c].state = s
		}
	}
	if starts > 1 || ends > 1 {
		return nil, fmt.Errorf("%w: %d starts and %d ends, want at most one of each", ErrBadLayout, starts, ends)
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(layout string) *Grid {
	g, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return g
}

// Format renders the board in the Parse alphabet, rows separated by '\n'
// with a trailing newline.
func (g *Grid) Format() string {
	var b strings.Builder
	b.Grow(g.rows * (g.rows + 1))
	for r := range g.cells {
		for c := range g.cells[r] {
			b.WriteByte(g.cells[r][c].state.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Lines returns Format split into rows, without newlines.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	for r := range g.cells {
		row := make([]byte, g.rows)
		for c := range g.cells[r] {
			row[c] = g.cells[r][c].state.Glyph()
		}
		out[r] = string(row)
	}
	return out
}

// Scatter turns each Empty cell into a Barrier with probability density,
// drawing from rng. Start and End are never covered.
// Returns the number of barriers placed.
func (g *Grid) Scatter(density float64, rng *rand.Rand) int {
	if density <= 0 {
		return 0
	}
	n := 0
	g.Each(func(c *Cell) {
		if c.state == Empty && rng.Float64() < density {
			c.state = Barrier
			n++
		}
	})
	return n
}
