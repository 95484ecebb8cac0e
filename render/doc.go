// Package render holds the drawing collaborators a search run calls back
// into. None of them mutate the board.
//
// What:
//
//   - Text: a search.RenderFunc writing each frame as glyph lines, with
//     optional ANSI screen clearing, a per-frame header and a pacing delay.
//   - Palette / Rects: the classic colour scheme and per-cell squares for a
//     pixel canvas (origin (row*gap, col*gap)).
//   - Frame / Snapshot / Final: JSON snapshots for streaming front ends.
//   - Recorder: collects a Frame per render call.
//   - Paced, Chain, CancelAfter: RenderFunc combinators.
//
// Cancellation:
//
//	Every renderer that takes a context answers search.Cancel once the
//	context is done; the search stops before its next expansion.
//
// Errors:
//
//   - ErrNilWriter, ErrNilGrid: missing collaborators.
//   - ErrBadGlyphs:             glyph set of the wrong size or with repeats.
//   - ErrOptionViolation:       negative delay.
package render
