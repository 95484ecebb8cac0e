// Package render provides options and error definitions for the renderer
// collaborators of a search run.
package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors for renderer construction.
var (
	// ErrNilWriter is returned when a text renderer gets no output.
	ErrNilWriter = errors.New("render: writer is nil")

	// ErrNilGrid is returned when a renderer gets no board to draw.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrBadGlyphs is returned for a glyph set that is not one distinct
	// byte per cell state.
	ErrBadGlyphs = errors.New("render: glyph set must hold one distinct byte per state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// DefaultGlyphs is the glyph set in grid.State order, matching grid.Format.
const DefaultGlyphs = ".ox#SE*"

// ClearScreen homes the cursor and wipes an ANSI terminal.
const ClearScreen = "\x1b[H\x1b[2J"

// Option configures a Text renderer.
type Option func(*Options)

// Options holds Text renderer parameters.
type Options struct {
	// Ctx, when done, makes the renderer answer Cancel.
	Ctx context.Context

	// Delay is slept after each frame; the sleep ends early if Ctx is done.
	Delay time.Duration

	// Clear prefixes each frame with the ANSI ClearScreen sequence.
	Clear bool

	// Glyphs maps grid.State values to output bytes.
	Glyphs string

	// Header, if set, is written above each frame.
	Header func(frame int) string

	err error
}

// DefaultOptions returns no delay, no screen clearing, DefaultGlyphs and
// context.Background().
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Glyphs: DefaultGlyphs,
	}
}

// WithContext makes the renderer cancel the search once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDelay paces frames. d < 0 → ErrOptionViolation.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative delay %v", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithClearScreen toggles ANSI screen clearing between frames.
func WithClearScreen(on bool) Option {
	return func(o *Options) { o.Clear = on }
}

// WithGlyphs replaces the glyph set; see ValidateGlyphs.
func WithGlyphs(set string) Option {
	return func(o *Options) {
		if err := ValidateGlyphs(set); err != nil {
			o.err = err
			return
		}
		o.Glyphs = set
	}
}

// WithHeader writes fn(frame) above every frame.
func WithHeader(fn func(frame int) string) Option {
	return func(o *Options) { o.Header = fn }
}

// ValidateGlyphs checks that set holds exactly grid.NumStates distinct bytes.
func ValidateGlyphs(set string) error {
	if len(set) != grid.NumStates {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBadGlyphs, len(set), grid.NumStates)
	}
	var seen [256]bool
	for i := 0; i < len(set); i++ {
		if seen[set[i]] {
			return fmt.Errorf("%w: %q repeats", ErrBadGlyphs, set[i])
		}
		seen[set[i]] = true
	}
	return nil
}
