// Package editor models an interactive pathfinding session on top of the
// grid and search packages: the click, erase, run, clear and undo commands
// a windowed or web front end binds to its input events.
//
// What:
//
//   - Paint: the first primary click places Start, the second End, every
//     later click a Barrier. Start and End are never painted over.
//   - Erase: a secondary click empties a cell and forgets Start or End if
//     that cell held one.
//   - CellAt: pixel → cell mapping for a board drawn width pixels wide.
//     gap = width/rows, row = x/gap, col = y/gap (the horizontal axis picks
//     the row).
//   - Run: only with both endpoints placed; rebuilds every neighbor list,
//     validates the endpoints and runs search.Run.
//   - Clear: fresh empty board, both endpoints forgotten.
//   - Undo: only after a run; clears search markers per grid.ClearPolicy and
//     restores the Start and End markers.
//
// Concurrency:
//
//	An Editor has no internal locking. Front ends that share one across
//	goroutines (see package server) serialize access themselves.
//
// Errors:
//
//   - ErrInvalidWidth:     width smaller than the row count.
//   - ErrOutsideBoard:     pixel maps past the board.
//   - ErrMissingEndpoints: Run before both endpoints are placed.
//   - ErrNothingToUndo:    Undo without a prior run.
package editor
