// Package search provides tunable options, outcomes and error definitions
// for breadth-first search over a grid.Grid.
package search

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrInvalidEndpoints is returned by ValidateEndpoints when start or end
	// is missing, the two coincide, or either is a Barrier.
	ErrInvalidEndpoints = errors.New("search: invalid endpoints")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Outcome is the result variant of a search run.
type Outcome int

const (
	// NotFound means the frontier emptied without reaching End.
	NotFound Outcome = iota
	// Found means End was reached and the path was drawn.
	Found
	// Cancelled means a cooperative stop was requested before completion.
	Cancelled
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not_found"
	case Found:
		return "found"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Signal is what a render callback tells the engine after drawing a frame.
type Signal int

const (
	// Continue lets the search proceed.
	Continue Signal = iota
	// Cancel asks the search to stop before the next expansion.
	Cancel
)

// RenderFunc draws the current grid state. It is invoked synchronously after
// every expansion and every path step and must only read the grid.
type RenderFunc func() Signal

// Option configures search behavior via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx is polled once per loop iteration; a done context cancels the run.
	Ctx context.Context

	// OnEnqueue is called when a cell joins the frontier (start included).
	OnEnqueue func(p grid.Pos)

	// OnExpand is called when a cell is dequeued, before the goal test.
	OnExpand func(p grid.Pos)

	// Heuristic, if non-nil, orders the frontier by Heuristic(cell, end)
	// with ties broken by insertion order. Nil keeps strict FIFO.
	Heuristic grid.Heuristic

	// MaxExpansions, if > 0, cancels the run after that many expansions.
	MaxExpansions int

	// Logger receives Debug records at run start and finish.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op hooks
//   - FIFO frontier (no heuristic)
//   - no expansion budget
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Pos) {},
		OnExpand:  func(grid.Pos) {},
		Logger:    zap.NewNop(),
	}
}

// WithContext sets a context whose cancellation stops the run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run when a cell is enqueued.
func WithOnEnqueue(fn func(p grid.Pos)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback run when a cell is dequeued.
func WithOnExpand(fn func(p grid.Pos)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithHeuristic switches the frontier to greedy best-first order on h.
// Paths found this way are not guaranteed to be shortest.
func WithHeuristic(h grid.Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: cancel after n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the logger used for run records.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search run:
//   - Outcome: Found, NotFound or Cancelled.
//   - Order:   cells in expansion (dequeue) order, End included when found.
//   - Path:    route from start to end inclusive; nil unless Found.
//   - Renders: number of render callback invocations.
type Result struct {
	Outcome Outcome
	Order   []grid.Pos
	Path    []grid.Pos
	Renders int
}

// Hops returns the number of edges on the path, or -1 if none was found.
func (r *Result) Hops() int {
	if r.Outcome != Found || len(r.Path) == 0 {
		return -1
	}
	return len(r.Path) - 1
}
