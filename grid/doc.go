// Package grid models the square board a pathfinding run operates on:
// cells with a single visual/logical State, and the 4-connected neighbor
// graph between them.
//
// What:
//
//   - Grid owns an R×R array of Cells indexed [row][col].
//   - Each Cell caches its passable orthogonal neighbors as Pos indices,
//     probed in the fixed order down, up, right, left.
//   - Mutators keep at most one Start and one End on the board.
//   - ClearMarkers / ResetNonBarrier wipe search output while keeping the
//     user's layout (Start, End, Barrier).
//   - Parse / Format convert to and from a compact text layout.
//   - Components / Connected answer reachability questions before a run.
//
// Why:
//
//   - A search engine needs a stable, index-addressed adjacency that only
//     changes when the caller says so (RebuildNeighbors).
//   - Front ends need a plain state snapshot they can draw without touching
//     search internals.
//
// Adjacency is cached, not live: after painting or erasing barriers the caller
// must run RebuildNeighbors before searching. Stale neighbor lists are a caller
// error and are not detected.
//
// Complexity:
//
//   - New, Clear, RebuildNeighbors, ClearMarkers: O(R²) time.
//   - UpdateNeighbors (one cell):                  O(1).
//   - Components:                                  O(R²) time, O(R²) memory.
//
// Errors:
//
//   - ErrInvalidSize: non-positive row count.
//   - ErrOutOfBounds: position outside the board.
//   - ErrBadLayout:   malformed text layout.
package grid
