// Package server is the web front end: a gin HTTP API over editor sessions
// and a websocket endpoint that streams a search run frame by frame.
//
// Routes:
//
//	GET    /healthz               liveness and session count
//	GET    /palette               state → colour legend
//	POST   /sessions              {rows?, width?, layout?} → 201 session
//	GET    /sessions/:id          session board
//	DELETE /sessions/:id          204
//	POST   /sessions/:id/paint    {row, col}: start, then end, then barriers
//	POST   /sessions/:id/erase    {row, col}
//	POST   /sessions/:id/click    {x, y, button}: canvas pixel, left or right
//	POST   /sessions/:id/clear
//	POST   /sessions/:id/undo     409 unless a run completed
//	GET    /sessions/:id/run      websocket: frame* then done (or error)
//
// Sessions are keyed by random UUIDs and live in memory only.
//
// Run streaming:
//
//	The search executes on the handler goroutine under the session lock.
//	Frames travel over a buffered channel to a writer goroutine; the client
//	may send {"type":"cancel"} at any time, and a dropped connection counts
//	as cancel. Commands on a session that is running answer 409.
//
// Errors map to statuses: unknown session 404, session limit 503, running
// or incomplete session 409, malformed input 400.
package server
