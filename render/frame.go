package render

import (
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Frame is a serialisable snapshot of the board, streamed to web clients.
// Lines uses the grid.Format alphabet.
type Frame struct {
	Seq     int      `json:"seq"`
	Rows    int      `json:"rows"`
	Gap     int      `json:"gap"`
	Lines   []string `json:"lines"`
	Done    bool     `json:"done"`
	Outcome string   `json:"outcome,omitempty"`
	Path    []Point  `json:"path,omitempty"`
}

// Point is a JSON-friendly grid.Pos.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Snapshot captures g as frame number seq for a width-pixel canvas.
func Snapshot(g *grid.Grid, seq, width int) Frame {
	return Frame{
		Seq:   seq,
		Rows:  g.Rows(),
		Gap:   g.Gap(width),
		Lines: g.Lines(),
	}
}

// Final captures g after a run and attaches the outcome and route.
func Final(g *grid.Grid, seq, width int, res *search.Result) Frame {
	f := Snapshot(g, seq, width)
	f.Done = true
	if res == nil {
		return f
	}
	f.Outcome = res.Outcome.String()
	if len(res.Path) > 0 {
		f.Path = make([]Point, len(res.Path))
		for i, p := range res.Path {
			f.Path[i] = Point{Row: p.Row, Col: p.Col}
		}
	}
	return f
}

// Recorder is a RenderFunc source that keeps a Snapshot per call.
// Keep is consulted after each snapshot; returning false cancels the search.
type Recorder struct {
	G      *grid.Grid
	Width  int
	Keep   func(Frame) bool
	Frames []Frame
}

// Render snapshots the board and appends the frame.
func (r *Recorder) Render() search.Signal {
	f := Snapshot(r.G, len(r.Frames)+1, r.Width)
	r.Frames = append(r.Frames, f)
	if r.Keep != nil && !r.Keep(f) {
		return search.Cancel
	}
	return search.Continue
}
