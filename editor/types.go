// Package editor provides options and error definitions for interactive
// board editing sessions.
package editor

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors for editor commands.
var (
	// ErrInvalidWidth is returned when the drawing width cannot fit one
	// pixel per cell.
	ErrInvalidWidth = errors.New("editor: width must be at least the row count")

	// ErrOutsideBoard is returned when a pixel maps past the last cell.
	ErrOutsideBoard = errors.New("editor: pixel outside board")

	// ErrMissingEndpoints is returned by Run until both Start and End are placed.
	ErrMissingEndpoints = errors.New("editor: start and end must both be placed")

	// ErrNothingToUndo is returned by Undo when no run happened since the
	// last Clear or Undo.
	ErrNothingToUndo = errors.New("editor: nothing to undo")
)

// Action reports what a Paint call did to the board.
type Action int

const (
	// Ignored means the click landed on an endpoint and changed nothing.
	Ignored Action = iota
	// PlacedStart means the cell became the Start.
	PlacedStart
	// PlacedEnd means the cell became the End.
	PlacedEnd
	// PlacedBarrier means the cell became a Barrier.
	PlacedBarrier
)

// String returns a short action name.
func (a Action) String() string {
	switch a {
	case PlacedStart:
		return "start"
	case PlacedEnd:
		return "end"
	case PlacedBarrier:
		return "barrier"
	default:
		return "ignored"
	}
}

// Option configures an Editor.
type Option func(*Options)

// Options holds editor parameters.
type Options struct {
	// Undo chooses which markers Undo clears.
	Undo grid.ClearPolicy

	// Search options appended to every Run.
	Search []search.Option

	// Logger receives command records.
	Logger *zap.Logger
}

// DefaultOptions returns ClearTransient undo, no extra search options and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Undo:   grid.ClearTransient,
		Logger: zap.NewNop(),
	}
}

// WithUndoPolicy selects the markers Undo removes.
func WithUndoPolicy(p grid.ClearPolicy) Option {
	return func(o *Options) { o.Undo = p }
}

// WithSearchOptions appends options passed to search.Run on every Run.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithLogger sets the editor logger. It is also handed to the search.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
