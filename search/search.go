// Package search provides breadth-first search over a grid.Grid with
// per-step rendering, cooperative cancellation and path reconstruction.
package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/grid"
)

// walker encapsulates mutable search state for one Run.
type walker struct {
	g          *grid.Grid
	start, end grid.Pos
	render     RenderFunc
	opts       Options
	front      frontier
	visited    []bool
	cameFrom   map[grid.Pos]grid.Pos
	pending    bool
	res        *Result
}

// Run searches g from start to end, invoking render after each expansion and
// after each path step. Neighbor lists must be current (see
// grid.Grid.RebuildNeighbors); endpoint states are not re-validated.
//
// Returns ErrGridNil for a nil grid, grid.ErrOutOfBounds for off-board
// endpoints and ErrOptionViolation for bad options. Every other ending,
// including no path and cancellation, is reported through Result.Outcome.
// Cells marked during an unsuccessful run stay marked.
func Run(g *grid.Grid, start, end grid.Pos, render RenderFunc, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", grid.ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", grid.ErrOutOfBounds, end)
	}
	if render == nil {
		render = func() Signal { return Continue }
	}

	n := g.Rows() * g.Rows()
	w := &walker{
		g:        g,
		start:    start,
		end:      end,
		render:   render,
		opts:     o,
		visited:  make([]bool, n),
		cameFrom: make(map[grid.Pos]grid.Pos, n),
		res:      &Result{Order: make([]grid.Pos, 0, n)},
	}
	if o.Heuristic != nil {
		w.front = newRanked(o.Heuristic, end, n)
	} else {
		w.front = newFIFO(n)
	}

	log := o.Logger.With(zap.Stringer("start", start), zap.Stringer("end", end))
	log.Debug("search started", zap.Int("rows", g.Rows()), zap.Bool("heuristic", o.Heuristic != nil))

	w.enqueue(start)
	w.loop()

	log.Debug("search finished",
		zap.Stringer("outcome", w.res.Outcome),
		zap.Int("expanded", len(w.res.Order)),
		zap.Int("hops", w.res.Hops()),
		zap.Int("renders", w.res.Renders),
	)
	return w.res, nil
}

// enqueue marks p visited, fires OnEnqueue and appends it to the frontier.
func (w *walker) enqueue(p grid.Pos) {
	w.visited[w.g.Index(p)] = true
	w.opts.OnEnqueue(p)
	w.front.push(p)
}

// loop expands cells until End is reached, the frontier empties or a
// cancellation signal is drained.
func (w *walker) loop() {
	for {
		if w.interrupted() {
			w.res.Outcome = Cancelled
			return
		}
		if w.front.len() == 0 {
			w.res.Outcome = NotFound
			return
		}

		current := w.front.pop()
		w.res.Order = append(w.res.Order, current)
		w.opts.OnExpand(current)

		if current == w.end {
			w.res.Path = Reconstruct(w.g, w.cameFrom, w.end, w.draw)
			w.g.Cell(w.end).SetState(grid.End)
			w.res.Outcome = Found
			return
		}

		w.expand(current)
		if w.draw() == Cancel {
			w.pending = true
		}
		if current != w.start {
			w.g.Cell(current).SetState(grid.Visited)
		}
	}
}

// interrupted drains pending cancellation: a Cancel from the last render,
// a done context, or a spent expansion budget.
func (w *walker) interrupted() bool {
	if w.pending {
		return true
	}
	select {
	case <-w.opts.Ctx.Done():
		return true
	default:
	}
	return w.opts.MaxExpansions > 0 && len(w.res.Order) >= w.opts.MaxExpansions
}

// expand records and enqueues every unseen neighbor of current.
// The End marker is kept so a cancelled run never loses it.
func (w *walker) expand(current grid.Pos) {
	for _, nbr := range w.g.Cell(current).Neighbors() {
		if w.visited[w.g.Index(nbr)] {
			continue
		}
		w.cameFrom[nbr] = current
		w.enqueue(nbr)
		if c := w.g.Cell(nbr); !c.IsEnd() {
			c.SetState(grid.Frontier)
		}
	}
}

// draw invokes the render callback and counts it.
func (w *walker) draw() Signal {
	w.res.Renders++
	return w.render()
}
