package server

import (
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/editor"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

const (
	writeWait   = 10 * time.Second
	frameBuffer = 64
)

// run upgrades to a websocket and streams one search over the session.
//
// The search runs on this goroutine and is the only board writer. Each
// render call snapshots the board onto a channel drained by a writer
// goroutine; a reader goroutine flips an atomic flag on {"type":"cancel"}
// or on disconnect, which the next render call turns into search.Cancel.
// The session lock is held until the run ends.
func (s *Server) run(c *gin.Context) {
	sess, err := s.sessions.get(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	if !sess.mu.TryLock() {
		abort(c, ErrBusy)
		return
	}
	defer sess.mu.Unlock()

	if _, ok := sess.ed.Start(); !ok {
		abort(c, editor.ErrMissingEndpoints)
		return
	}
	if _, ok := sess.ed.End(); !ok {
		abort(c, editor.ErrMissingEndpoints)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already answered the client
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	// drop the deadline inherited from the HTTP server's ReadTimeout
	_ = conn.SetReadDeadline(time.Time{})

	runID := uuid.NewString()
	log := s.log.With(zap.String("session", sess.id.String()), zap.String("run", runID))

	var cancelled atomic.Bool
	out := make(chan wsMessage, frameBuffer)
	written := make(chan struct{})
	go s.writeLoop(conn, out, &cancelled, written, log)
	go readLoop(conn, &cancelled, log)

	g := sess.ed.Grid()
	width := sess.ed.Width()
	seq := 0
	draw := func() search.Signal {
		seq++
		f := render.Snapshot(g, seq, width)
		out <- wsMessage{Type: msgFrame, Run: runID, Frame: &f}
		if cancelled.Load() {
			return search.Cancel
		}
		return search.Continue
	}

	ctx := c.Request.Context()
	res, err := sess.ed.Run(ctx, render.Paced(ctx, s.FrameDelay(), draw))
	if err != nil {
		out <- wsMessage{Type: msgError, Run: runID, Error: err.Error()}
		log.Warn("run rejected", zap.Error(err))
	} else {
		f := render.Final(g, seq+1, width, res)
		out <- wsMessage{Type: msgDone, Run: runID, Frame: &f}
		log.Info("run streamed", zap.Stringer("outcome", res.Outcome), zap.Int("frames", seq))
	}
	close(out)
	<-written

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run complete"))
}

// writeLoop sends every queued message. After a write failure it keeps
// draining so the search never blocks on a dead client.
func (s *Server) writeLoop(conn *websocket.Conn, out <-chan wsMessage, cancelled *atomic.Bool, done chan<- struct{}, log *zap.Logger) {
	defer close(done)
	failed := false
	for msg := range out {
		if failed {
			continue
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Debug("websocket write failed", zap.Error(err))
			cancelled.Store(true)
			failed = true
		}
	}
}

// readLoop watches for cancel commands until the connection drops.
func readLoop(conn *websocket.Conn, cancelled *atomic.Bool, log *zap.Logger) {
	for {
		var cmd wsCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			cancelled.Store(true)
			return
		}
		if cmd.Type == msgCancel {
			log.Debug("cancel requested")
			cancelled.Store(true)
		}
	}
}
