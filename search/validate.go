package search

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// ValidateEndpoints checks what Run assumes but does not verify: both
// endpoints lie on the board, differ, and are not Barrier cells.
// Callers run it before Run; failures wrap ErrInvalidEndpoints.
func ValidateEndpoints(g *grid.Grid, start, end grid.Pos) error {
	if g == nil {
		return ErrGridNil
	}
	switch {
	case !g.InBounds(start):
		return fmt.Errorf("%w: start %v off board", ErrInvalidEndpoints, start)
	case !g.InBounds(end):
		return fmt.Errorf("%w: end %v off board", ErrInvalidEndpoints, end)
	case start == end:
		return fmt.Errorf("%w: start and end are both %v", ErrInvalidEndpoints, start)
	case g.Cell(start).IsBarrier():
		return fmt.Errorf("%w: start %v is a barrier", ErrInvalidEndpoints, start)
	case g.Cell(end).IsBarrier():
		return fmt.Errorf("%w: end %v is a barrier", ErrInvalidEndpoints, end)
	}
	return nil
}
