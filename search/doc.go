// Package search runs a breadth-first search over a grid.Grid from a Start
// cell to an End cell, painting cell states as it goes and handing control
// to a render callback after every expansion.
//
// What
//
//   - Explore cells in non-decreasing hop distance from start, using a strict
//     FIFO frontier, a visited set and a came-from map.
//   - Newly discovered cells become Frontier; expanded cells become Visited.
//   - When End is dequeued, walk the came-from links back to start, marking
//     the route Path and redrawing after each step.
//   - Return a Result whose Outcome is Found, NotFound or Cancelled.
//
// Why
//
//   - BFS gives the fewest-hop route on an unweighted 4-connected board.
//   - Every step is drawn, so a front end can animate the search.
//
// Cooperation model
//
//	Run executes on the caller's goroutine. The RenderFunc is the only
//	suspension point: it is called synchronously, may redraw and poll input,
//	and returns Cancel to stop the search. Pending cancellation (a Cancel
//	from the previous render, a done context, an exhausted expansion budget)
//	is drained once per loop iteration, before the next dequeue.
//
// Determinism
//
//	Neighbor lists are probed down, up, right, left and the frontier is
//	strict FIFO, so identical boards yield identical expansion orders and
//	identical paths.
//
// Complexity (R×R board)
//
//   - Time:   O(R²) expansions, plus one render per expansion and per path step.
//   - Memory: O(R²) for frontier, visited flags and came-from links.
//
// Usage
//
//	g.RebuildNeighbors()
//	if err := search.ValidateEndpoints(g, start, end); err != nil {
//		// ErrInvalidEndpoints
//	}
//	res, err := search.Run(g, start, end, draw,
//		search.WithContext(ctx),
//		search.WithOnExpand(func(p grid.Pos) { /* ... */ }),
//	)
//	switch res.Outcome {
//	case search.Found:     // res.Path runs start → end
//	case search.NotFound:  // frontier exhausted
//	case search.Cancelled: // render asked to stop or ctx was done
//	}
//
// Options
//
//   - WithContext(ctx):          treat ctx.Done() as a cancellation signal.
//   - WithOnEnqueue(fn):         hook when a cell joins the frontier.
//   - WithOnExpand(fn):          hook when a cell is dequeued.
//   - WithHeuristic(h):          greedy best-first frontier ordered by h(cell, end).
//   - WithMaxExpansions(n):      stop (Cancelled) after n expansions.
//   - WithLogger(l):             zap logger for run start/finish records.
//
// Errors
//
//   - ErrGridNil               if the grid pointer is nil.
//   - grid.ErrOutOfBounds      if start or end lies off the board.
//   - ErrOptionViolation       for invalid options.
//   - ErrInvalidEndpoints      from ValidateEndpoints only; Run does not
//     re-check endpoint states.
//
// No path and cancellation are ordinary outcomes, never errors.
package search
