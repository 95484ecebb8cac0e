package editor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Editor is one interactive board: it remembers which cells are Start and
// End, maps pixels to cells and tracks whether a search ran since the last
// Clear or Undo. An Editor is not safe for concurrent use.
type Editor struct {
	g        *grid.Grid
	width    int
	start    grid.Pos
	end      grid.Pos
	hasStart bool
	hasEnd   bool
	executed bool
	opts     Options
}

// New returns an editor over an empty rows×rows board drawn width pixels wide.
// Returns grid.ErrInvalidSize for rows < 1 and ErrInvalidWidth for width < rows.
func New(rows, width int, opts ...Option) (*Editor, error) {
	g, err := grid.New(rows)
	if err != nil {
		return nil, err
	}
	return FromGrid(g, width, opts...)
}

// FromGrid wraps an existing board. Start and End already on g are adopted.
func FromGrid(g *grid.Grid, width int, opts ...Option) (*Editor, error) {
	if g == nil {
		return nil, search.ErrGridNil
	}
	if width < g.Rows() {
		return nil, fmt.Errorf("%w: width %d for %d rows", ErrInvalidWidth, width, g.Rows())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Editor{g: g, width: width, opts: o}
	e.start, e.hasStart = g.Start()
	e.end, e.hasEnd = g.End()

	return e, nil
}

// Grid returns the edited board.
func (e *Editor) Grid() *grid.Grid { return e.g }

// Width returns the drawing width in pixels.
func (e *Editor) Width() int { return e.width }

// Start returns the Start cell, if placed.
func (e *Editor) Start() (grid.Pos, bool) { return e.start, e.hasStart }

// End returns the End cell, if placed.
func (e *Editor) End() (grid.Pos, bool) { return e.end, e.hasEnd }

// Executed reports whether a search ran since the last Clear or Undo.
func (e *Editor) Executed() bool { return e.executed }

// CellAt maps a pixel to a cell. The horizontal coordinate selects the row
// and the vertical one the column: row = x/gap, col = y/gap with
// gap = width/rows. Pixels past the last whole cell are ErrOutsideBoard.
func (e *Editor) CellAt(x, y int) (grid.Pos, error) {
	gap := e.g.Gap(e.width)
	if x < 0 || y < 0 {
		return grid.Pos{}, fmt.Errorf("%w: (%d,%d)", ErrOutsideBoard, x, y)
	}
	p := grid.Pos{Row: x / gap, Col: y / gap}
	if !e.g.InBounds(p) {
		return grid.Pos{}, fmt.Errorf("%w: (%d,%d)", ErrOutsideBoard, x, y)
	}
	return p, nil
}

// Paint applies a primary click to p: the first click places Start, the
// next places End, later clicks raise barriers. Start and End are never
// painted over.
func (e *Editor) Paint(p grid.Pos) (Action, error) {
	if !e.g.InBounds(p) {
		return Ignored, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, p)
	}
	isStart := e.hasStart && p == e.start
	isEnd := e.hasEnd && p == e.end

	var act Action
	switch {
	case !e.hasStart && !isEnd:
		_ = e.g.MarkStart(p)
		e.start, e.hasStart = p, true
		act = PlacedStart
	case !e.hasEnd && !isStart:
		_ = e.g.MarkEnd(p)
		e.end, e.hasEnd = p, true
		act = PlacedEnd
	case !isStart && !isEnd:
		_ = e.g.MarkBarrier(p)
		act = PlacedBarrier
	default:
		act = Ignored
	}
	e.opts.Logger.Debug("paint", zap.Stringer("cell", p), zap.Stringer("action", act))

	return act, nil
}

// Erase applies a secondary click to p: the cell becomes Empty and, if it
// was Start or End, that endpoint is forgotten.
func (e *Editor) Erase(p grid.Pos) error {
	if err := e.g.Reset(p); err != nil {
		return err
	}
	switch {
	case e.hasStart && p == e.start:
		e.hasStart = false
	case e.hasEnd && p == e.end:
		e.hasEnd = false
	}
	e.opts.Logger.Debug("erase", zap.Stringer("cell", p))

	return nil
}

// PaintAt is Paint on the cell under pixel (x, y).
func (e *Editor) PaintAt(x, y int) (Action, error) {
	p, err := e.CellAt(x, y)
	if err != nil {
		return Ignored, err
	}
	return e.Paint(p)
}

// EraseAt is Erase on the cell under pixel (x, y).
func (e *Editor) EraseAt(x, y int) error {
	p, err := e.CellAt(x, y)
	if err != nil {
		return err
	}
	return e.Erase(p)
}

// Run rebuilds every neighbor list and searches from Start to End, calling
// render after each step. ctx is forwarded to the search as a cancellation
// source. Every completed call, whatever its Outcome, enables Undo.
//
// Returns ErrMissingEndpoints until both endpoints are placed and wraps
// search.ErrInvalidEndpoints for endpoints the search cannot use.
func (e *Editor) Run(ctx context.Context, render search.RenderFunc) (*search.Result, error) {
	if !e.hasStart || !e.hasEnd {
		return nil, ErrMissingEndpoints
	}
	e.g.RebuildNeighbors()
	if err := search.ValidateEndpoints(e.g, e.start, e.end); err != nil {
		return nil, err
	}

	opts := make([]search.Option, 0, len(e.opts.Search)+2)
	opts = append(opts, e.opts.Search...)
	opts = append(opts, search.WithContext(ctx), search.WithLogger(e.opts.Logger))
	res, err := search.Run(e.g, e.start, e.end, render, opts...)
	if err != nil {
		return nil, err
	}
	e.executed = true
	e.opts.Logger.Info("run finished",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("expanded", len(res.Order)),
		zap.Int("hops", res.Hops()),
	)

	return res, nil
}

// Clear replaces the board with a fresh empty one and forgets both endpoints.
func (e *Editor) Clear() {
	e.g.Clear()
	e.hasStart, e.hasEnd = false, false
	e.executed = false
	e.opts.Logger.Debug("clear")
}

// Undo wipes the previous run's markers according to the undo policy and
// restores the Start and End markers. Barriers stay.
// Returns ErrNothingToUndo unless a run completed since the last Clear or Undo.
func (e *Editor) Undo() (int, error) {
	if !e.executed {
		return 0, ErrNothingToUndo
	}
	n := e.g.ClearMarkers(e.opts.Undo)
	if e.hasStart {
		_ = e.g.MarkStart(e.start)
	}
	if e.hasEnd {
		_ = e.g.MarkEnd(e.end)
	}
	e.executed = false
	e.opts.Logger.Debug("undo", zap.Stringer("policy", e.opts.Undo), zap.Int("cleared", n))

	return n, nil
}
