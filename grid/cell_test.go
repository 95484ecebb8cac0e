package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
)

// TestUpdateNeighbors_PriorityOrder checks the down, up, right, left probe order
// for an interior cell and the bounds clipping for corners and edges.
func TestUpdateNeighbors_PriorityOrder(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	cases := []struct {
		name string
		at   grid.Pos
		want []grid.Pos
	}{
		{"Center", grid.Pos{Row: 1, Col: 1}, []grid.Pos{{Row: 2, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 0}}},
		{"TopLeft", grid.Pos{Row: 0, Col: 0}, []grid.Pos{{Row: 1, Col: 0}, {Row: 0, Col: 1}}},
		{"BottomRight", grid.Pos{Row: 2, Col: 2}, []grid.Pos{{Row: 1, Col: 2}, {Row: 2, Col: 1}}},
		{"TopEdge", grid.Pos{Row: 0, Col: 1}, []grid.Pos{{Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Cell(tc.at).UpdateNeighbors(g)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, g.Cell(tc.at).Neighbors(), "result must be cached")
		})
	}
}

// TestUpdateNeighbors_SkipsBarriers ensures barrier cells never appear as neighbors.
func TestUpdateNeighbors_SkipsBarriers(t *testing.T) {
	g := grid.MustParse(`
		.#.
		#..
		...
	`)
	g.RebuildNeighbors()

	assert.Empty(t, g.Cell(grid.Pos{Row: 0, Col: 0}).Neighbors())
	assert.Equal(t,
		[]grid.Pos{{Row: 2, Col: 1}, {Row: 1, Col: 2}},
		g.Cell(grid.Pos{Row: 1, Col: 1}).Neighbors())
}

// TestNeighbors_StaleUntilRebuild shows neighbor lists are snapshots, not live views.
func TestNeighbors_StaleUntilRebuild(t *testing.T) {
	g, _ := grid.New(2)
	g.RebuildNeighbors()
	origin := g.Cell(grid.Pos{})
	require.Len(t, origin.Neighbors(), 2)

	require.NoError(t, g.MarkBarrier(grid.Pos{Row: 1, Col: 0}))
	assert.Len(t, origin.Neighbors(), 2, "cached list must not change on its own")

	g.RebuildNeighbors()
	assert.Equal(t, []grid.Pos{{Row: 0, Col: 1}}, origin.Neighbors())
}

// TestRebuildNeighbors_Idempotent rebuilds twice without layout changes and
// compares every list.
func TestRebuildNeighbors_Idempotent(t *testing.T) {
	g := grid.MustParse(`
		S..#.
		.#...
		..#..
		#...#
		...E.
	`)
	g.RebuildNeighbors()
	first := make(map[grid.Pos][]grid.Pos)
	g.Each(func(c *grid.Cell) {
		first[c.Pos()] = append([]grid.Pos(nil), c.Neighbors()...)
	})

	g.RebuildNeighbors()
	g.Each(func(c *grid.Cell) {
		assert.Equal(t, first[c.Pos()], c.Neighbors(), "neighbors of %v changed", c.Pos())
	})
}

func TestCell_Predicates(t *testing.T) {
	g, _ := grid.New(1)
	c := g.Cell(grid.Pos{})
	assert.Equal(t, 0, c.Row())
	assert.Equal(t, 0, c.Col())

	checks := []struct {
		state grid.State
		pred  func() bool
	}{
		{grid.Empty, c.IsEmpty},
		{grid.Frontier, c.IsFrontier},
		{grid.Visited, c.IsVisited},
		{grid.Barrier, c.IsBarrier},
		{grid.Start, c.IsStart},
		{grid.End, c.IsEnd},
		{grid.Path, c.IsPath},
	}
	for _, tc := range checks {
		c.SetState(tc.state)
		assert.Equal(t, tc.state, c.State())
		for _, other := range checks {
			assert.Equal(t, other.state == tc.state, other.pred(),
				"state %s: predicate for %s", tc.state, other.state)
		}
	}
}
