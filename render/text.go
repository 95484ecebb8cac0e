package render

import (
	"io"
	"time"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Text draws a board as one line of glyphs per row into an io.Writer.
// Its Render method is a search.RenderFunc.
type Text struct {
	w      io.Writer
	g      *grid.Grid
	opts   Options
	buf    []byte
	frames int
	err    error
}

// NewText returns a renderer drawing g into w.
func NewText(w io.Writer, g *grid.Grid, opts ...Option) (*Text, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Text{w: w, g: g, opts: o}, nil
}

// Render writes one frame, waits the configured delay and reports Cancel
// once the context is done or a write has failed.
func (t *Text) Render() search.Signal {
	if t.err != nil {
		return search.Cancel
	}
	t.frames++
	if _, err := t.w.Write(t.frame()); err != nil {
		t.err = err
		return search.Cancel
	}
	if t.opts.Delay > 0 {
		timer := time.NewTimer(t.opts.Delay)
		select {
		case <-timer.C:
		case <-t.opts.Ctx.Done():
			timer.Stop()
		}
	}
	select {
	case <-t.opts.Ctx.Done():
		return search.Cancel
	default:
		return search.Continue
	}
}

// Frames returns how many frames were written.
func (t *Text) Frames() int { return t.frames }

// Err returns the first write error, if any.
func (t *Text) Err() error { return t.err }

// frame assembles the next frame into the reusable buffer.
func (t *Text) frame() []byte {
	b := t.buf[:0]
	if t.opts.Clear {
		b = append(b, ClearScreen...)
	}
	if t.opts.Header != nil {
		b = append(b, t.opts.Header(t.frames)...)
		b = append(b, '\n')
	}
	b = AppendGlyphs(b, t.g, t.opts.Glyphs)
	t.buf = b
	return b
}

// AppendGlyphs appends g to b using the glyph set, one '\n'-terminated line
// per row. The glyph set is assumed valid.
func AppendGlyphs(b []byte, g *grid.Grid, glyphs string) []byte {
	for _, row := range g.States() {
		for _, s := range row {
			b = append(b, glyphs[s])
		}
		b = append(b, '\n')
	}
	return b
}
