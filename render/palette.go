package render

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// RGB is an opaque 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText encodes c as its Hex form.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Classic cell colours.
var (
	White     = RGB{255, 255, 255}
	Green     = RGB{0, 255, 0}
	Red       = RGB{255, 0, 0}
	Black     = RGB{0, 0, 0}
	Orange    = RGB{255, 165, 0}
	Turquoise = RGB{64, 224, 208}
	Purple    = RGB{128, 0, 128}
	Grey      = RGB{128, 128, 128}
)

// Palette maps each grid.State to a fill colour.
type Palette [grid.NumStates]RGB

// DefaultPalette: empty white, frontier green, visited red, barrier black,
// start orange, end turquoise, path purple.
var DefaultPalette = Palette{
	grid.Empty:    White,
	grid.Frontier: Green,
	grid.Visited:  Red,
	grid.Barrier:  Black,
	grid.Start:    Orange,
	grid.End:      Turquoise,
	grid.Path:     Purple,
}

// GridLine is the colour of the lines between cells.
var GridLine = Grey

// Color returns the fill for s, or White for an unknown state.
func (p *Palette) Color(s grid.State) RGB {
	if int(s) < len(p) {
		return p[s]
	}
	return White
}

// Legend returns state name → hex colour.
func (p *Palette) Legend() map[string]string {
	out := make(map[string]string, len(p))
	for i, c := range p {
		out[grid.State(i).String()] = c.Hex()
	}
	return out
}

// Rect is one cell's square on a width×width canvas.
type Rect struct {
	X, Y, Size int
	State      grid.State
	Fill       RGB
}

// Rects lays the board out on a width×width canvas. A cell's origin is
// (row*gap, col*gap): the row runs along the horizontal axis.
func Rects(g *grid.Grid, width int, p *Palette) []Rect {
	if p == nil {
		p = &DefaultPalette
	}
	gap := g.Gap(width)
	out := make([]Rect, 0, g.Rows()*g.Rows())
	g.Each(func(c *grid.Cell) {
		out = append(out, Rect{
			X:     c.Row() * gap,
			Y:     c.Col() * gap,
			Size:  gap,
			State: c.State(),
			Fill:  p.Color(c.State()),
		})
	})
	return out
}
