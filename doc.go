// Package pathviz animates breadth-first search on a square grid, one frame
// per expansion, in a terminal or in a browser over a websocket.
//
// What is in the box?
//
//	• grid    – cells, states, neighbour caching, text layouts, islands
//	• search  – the frame-by-frame BFS engine with a cancellable render hook
//	• editor  – click-to-paint board editing, run and undo
//	• render  – terminal frames, JSON frames, colour palette, pacing helpers
//	• config  – viper-backed settings with .env and PATHVIZ_* overrides
//	• logs    – zap loggers with lumberjack rotation
//	• server  – gin HTTP API plus a websocket run stream
//
// Quick ASCII example:
//
//	S . . #        S * * #
//	# # . #   →    # # * #
//	. . . .        . . * *
//	. # # E        . # # E
//
// The first board is the input; the second shows the route '*' drawn after
// the search reaches E.
//
//	go install github.com/katalvlaran/pathviz/cmd/pathviz@latest
//	pathviz run --rows 20 --density 0.3
//	pathviz serve --addr :8080
package pathviz
