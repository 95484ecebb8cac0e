package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
)

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
	}{
		{"Empty", "\n   \n"},
		{"NotSquare", "...\n..."},
		{"Ragged", "..\n...\n.."},
		{"UnknownGlyph", "..\n.?"},
		{"TwoStarts", "S.\n.S"},
		{"TwoEnds", "EE\n.."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.layout)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrBadLayout)
		})
	}
}

func TestParse_Format(t *testing.T) {
	g, err := grid.Parse(`
		S.#
		o*x
		..E
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.True(t, g.Cell(grid.Pos{Row: 0, Col: 0}).IsStart())
	assert.True(t, g.Cell(grid.Pos{Row: 0, Col: 2}).IsBarrier())
	assert.True(t, g.Cell(grid.Pos{Row: 1, Col: 0}).IsFrontier())
	assert.True(t, g.Cell(grid.Pos{Row: 1, Col: 1}).IsPath())
	assert.True(t, g.Cell(grid.Pos{Row: 1, Col: 2}).IsVisited())
	assert.True(t, g.Cell(grid.Pos{Row: 2, Col: 2}).IsEnd())

	assert.Equal(t, "S.#\no*x\n..E\n", g.Format())
	assert.Equal(t, []string{"S.#", "o*x", "..E"}, g.Lines())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { grid.MustParse("S?") })
}

// TestScatter_KeepsEndpoints fills a board at full density and checks that
// only Empty cells were converted.
func TestScatter_KeepsEndpoints(t *testing.T) {
	g, _ := grid.New(6)
	require.NoError(t, g.MarkStart(grid.Pos{Row: 0, Col: 0}))
	require.NoError(t, g.MarkEnd(grid.Pos{Row: 5, Col: 5}))

	n := g.Scatter(1, rand.New(rand.NewSource(7)))
	assert.Equal(t, 34, n)
	assert.Equal(t, 34, g.Count(grid.Barrier))
	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 1, g.Count(grid.End))

	assert.Zero(t, g.Scatter(0, rand.New(rand.NewSource(7))))
}

func TestScatter_Deterministic(t *testing.T) {
	a, _ := grid.New(10)
	b, _ := grid.New(10)
	a.Scatter(0.3, rand.New(rand.NewSource(42)))
	b.Scatter(0.3, rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Format(), b.Format())
}
