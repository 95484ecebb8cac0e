package search

import (
	"container/heap"

	"github.com/katalvlaran/pathviz/grid"
)

// frontier holds discovered cells awaiting expansion.
type frontier interface {
	push(p grid.Pos)
	pop() grid.Pos
	len() int
}

// fifo is a slice-backed queue; the consumed prefix is dropped once it
// dominates the backing array.
type fifo struct {
	items []grid.Pos
	head  int
}

func newFIFO(capacity int) *fifo {
	return &fifo{items: make([]grid.Pos, 0, capacity)}
}

func (q *fifo) push(p grid.Pos) { q.items = append(q.items, p) }

func (q *fifo) pop() grid.Pos {
	p := q.items[q.head]
	q.head++
	if q.head >= 64 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return p
}

func (q *fifo) len() int { return len(q.items) - q.head }

// rankedItem is a frontier entry scored by the heuristic; seq records
// insertion order and breaks score ties.
type rankedItem struct {
	pos   grid.Pos
	score int
	seq   uint64
}

type rankedHeap []rankedItem

func (h rankedHeap) Len() int { return len(h) }
func (h rankedHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].seq < h[j].seq
}
func (h rankedHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *rankedHeap) Push(x any)   { *h = append(*h, x.(rankedItem)) }
func (h *rankedHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// ranked orders cells by h(cell, goal), then by insertion.
type ranked struct {
	items rankedHeap
	h     grid.Heuristic
	goal  grid.Pos
	seq   uint64
}

func newRanked(h grid.Heuristic, goal grid.Pos, capacity int) *ranked {
	return &ranked{items: make(rankedHeap, 0, capacity), h: h, goal: goal}
}

func (r *ranked) push(p grid.Pos) {
	heap.Push(&r.items, rankedItem{pos: p, score: r.h(p, r.goal), seq: r.seq})
	r.seq++
}

func (r *ranked) pop() grid.Pos {
	return heap.Pop(&r.items).(rankedItem).pos
}

func (r *ranked) len() int { return r.items.Len() }
