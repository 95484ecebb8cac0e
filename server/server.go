package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/editor"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

// RequestIDHeader carries the per-request id echoed by the access log.
const RequestIDHeader = "X-Request-ID"

// Server exposes editor sessions over HTTP and streams search runs over
// websockets.
type Server struct {
	engine   *gin.Engine
	srv      *http.Server
	sessions *store
	grid     config.GridConfig
	delay    atomic.Int64
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// New builds a Server from cfg. Routes are registered immediately; Start
// begins listening.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		engine:   gin.New(),
		sessions: newStore(cfg.Server.MaxSessions),
		grid:     cfg.Grid,
		log:      zap.NewNop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.delay.Store(int64(cfg.Render.FrameDelay))

	s.engine.Use(gin.Recovery(), s.accessLog())
	s.routes()

	s.srv = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.len()})
	})
	s.engine.GET("/palette", s.palette)

	g := s.engine.Group("/sessions")
	g.POST("", s.createSession)
	g.GET("/:id", s.getSession)
	g.DELETE("/:id", s.deleteSession)
	g.POST("/:id/paint", s.paint)
	g.POST("/:id/erase", s.erase)
	g.POST("/:id/click", s.click)
	g.POST("/:id/clear", s.clear)
	g.POST("/:id/undo", s.undo)
	g.GET("/:id/run", s.run)
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Start listens on the configured address and blocks. After Shutdown it
// returns http.ErrServerClosed.
func (s *Server) Start() error {
	s.log.Info("http server listening", zap.String("addr", s.srv.Addr))
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting connections and waits for handlers until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// SetFrameDelay changes the pause between streamed frames for runs that
// start afterwards.
func (s *Server) SetFrameDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.delay.Store(int64(d))
	s.log.Info("frame delay updated", zap.Duration("delay", d))
}

// FrameDelay returns the current pause between streamed frames.
func (s *Server) FrameDelay() time.Duration {
	return time.Duration(s.delay.Load())
}

// accessLog writes one zap record per request and tags it with a request id.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(RequestIDHeader, rid)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(begin)),
			zap.String("client", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			s.log.Error("request", fields...)
			return
		}
		s.log.Info("request", fields...)
	}
}

// statusOf maps domain errors to HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTooManySessions):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrBusy),
		errors.Is(err, editor.ErrMissingEndpoints),
		errors.Is(err, editor.ErrNothingToUndo),
		errors.Is(err, search.ErrInvalidEndpoints):
		return http.StatusConflict
	case errors.Is(err, grid.ErrInvalidSize),
		errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrBadLayout),
		errors.Is(err, editor.ErrInvalidWidth),
		errors.Is(err, editor.ErrOutsideBoard):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
}

// view snapshots a session. The caller holds sess.mu.
func view(sess *session) sessionView {
	ed := sess.ed
	g := ed.Grid()
	v := sessionView{
		ID:       sess.id.String(),
		Created:  sess.created,
		Rows:     g.Rows(),
		Width:    ed.Width(),
		Gap:      g.Gap(ed.Width()),
		Lines:    g.Lines(),
		Executed: ed.Executed(),
	}
	start, hasStart := ed.Start()
	if hasStart {
		v.Start = &render.Point{Row: start.Row, Col: start.Col}
	}
	end, hasEnd := ed.End()
	if hasEnd {
		v.End = &render.Point{Row: end.Row, Col: end.Col}
	}
	if hasStart && hasEnd {
		ok := g.Connected(start, end)
		v.Reachable = &ok
	}
	return v
}
