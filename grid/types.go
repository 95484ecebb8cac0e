// Package grid defines core types, sentinel errors and clear policies
// for the grid subpackage of github.com/katalvlaran/pathviz.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive row count.
	ErrInvalidSize = errors.New("grid: row count must be positive")
	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBadLayout indicates a text layout that is not a square of known glyphs.
	ErrBadLayout = errors.New("grid: malformed layout")
)

// State is the logical state of a cell. Exactly one holds at a time.
type State uint8

const (
	// Empty is a free, untouched cell.
	Empty State = iota
	// Frontier is a discovered cell waiting to be expanded ("open").
	Frontier
	// Visited is an expanded cell ("closed").
	Visited
	// Barrier is impassable and never appears in neighbor lists.
	Barrier
	// Start is the search origin.
	Start
	// End is the search target.
	End
	// Path marks a cell on the reconstructed route.
	Path
)

// NumStates is the number of defined states.
const NumStates = int(Path) + 1

var stateNames = [...]string{"empty", "frontier", "visited", "barrier", "start", "end", "path"}

// glyphs is the text-layout alphabet, indexed by State.
var glyphs = [...]byte{'.', 'o', 'x', '#', 'S', 'E', '*'}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", s)
}

// Glyph returns the single-byte layout character for s.
func (s State) Glyph() byte {
	if int(s) < len(glyphs) {
		return glyphs[s]
	}
	return '?'
}

// Transient reports whether s is produced by a search run (Frontier, Visited
// or Path) rather than by the user.
func (s State) Transient() bool {
	return s == Frontier || s == Visited || s == Path
}

// StateOf maps a layout glyph back to its State.
func StateOf(glyph byte) (State, bool) {
	for i, g := range glyphs {
		if g == glyph {
			return State(i), true
		}
	}
	return Empty, false
}

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ClearPolicy selects which search markers ClearMarkers removes.
type ClearPolicy int

const (
	// ClearTransient resets Frontier, Visited and Path cells.
	// This is what an "undo" has always done in practice.
	ClearTransient ClearPolicy = iota
	// ClearExplored resets only Frontier and Visited cells and leaves the
	// drawn Path in place.
	ClearExplored
)

// String returns the policy name used in configuration files.
func (p ClearPolicy) String() string {
	switch p {
	case ClearTransient:
		return "transient"
	case ClearExplored:
		return "explored"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseClearPolicy maps a configuration name to a ClearPolicy.
// The empty string selects ClearTransient.
func ParseClearPolicy(name string) (ClearPolicy, error) {
	switch name {
	case "", "transient":
		return ClearTransient, nil
	case "explored":
		return ClearExplored, nil
	default:
		return ClearTransient, fmt.Errorf("grid: unknown clear policy %q", name)
	}
}

// Heuristic estimates the distance between two cells.
type Heuristic func(a, b Pos) int

// neighborOffsets lists orthogonal probes in priority order: down, up, right, left.
var neighborOffsets = [4]Pos{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
