package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
)

// TestFIFO_OrderAcrossCompaction interleaves pushes and pops past the
// compaction threshold and checks strict first-in first-out order.
func TestFIFO_OrderAcrossCompaction(t *testing.T) {
	q := newFIFO(4)
	next, want := 0, 0
	for round := 0; round < 5; round++ {
		for i := 0; i < 100; i++ {
			q.push(grid.Pos{Row: next})
			next++
		}
		for i := 0; i < 70; i++ {
			require.Equal(t, grid.Pos{Row: want}, q.pop())
			want++
		}
	}
	assert.Equal(t, next-want, q.len())
	for q.len() > 0 {
		require.Equal(t, grid.Pos{Row: want}, q.pop())
		want++
	}
	assert.Equal(t, next, want)
}

// TestRanked_TieBreakByInsertion gives every cell the same score and expects
// insertion order back; distinct scores still come out lowest first.
func TestRanked_TieBreakByInsertion(t *testing.T) {
	flat := newRanked(func(a, b grid.Pos) int { return 0 }, grid.Pos{}, 8)
	for i := 0; i < 6; i++ {
		flat.push(grid.Pos{Col: i})
	}
	for i := 0; i < 6; i++ {
		assert.Equal(t, grid.Pos{Col: i}, flat.pop())
	}

	goal := grid.Pos{Row: 0, Col: 0}
	r := newRanked(grid.Manhattan, goal, 8)
	r.push(grid.Pos{Row: 3, Col: 3})
	r.push(grid.Pos{Row: 0, Col: 1})
	r.push(grid.Pos{Row: 1, Col: 0})
	r.push(grid.Pos{Row: 2, Col: 0})
	assert.Equal(t, 4, r.len())
	assert.Equal(t, grid.Pos{Row: 0, Col: 1}, r.pop())
	assert.Equal(t, grid.Pos{Row: 1, Col: 0}, r.pop())
	assert.Equal(t, grid.Pos{Row: 2, Col: 0}, r.pop())
	assert.Equal(t, grid.Pos{Row: 3, Col: 3}, r.pop())
	assert.Zero(t, r.len())
}
