// Package server defines the HTTP and websocket front end over editor
// sessions.
package server

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/render"
)

// Sentinel errors surfaced as HTTP statuses.
var (
	// ErrSessionNotFound → 404.
	ErrSessionNotFound = errors.New("server: session not found")

	// ErrTooManySessions → 503 once the session limit is reached.
	ErrTooManySessions = errors.New("server: session limit reached")

	// ErrBusy → 409 while a run holds the session.
	ErrBusy = errors.New("server: session is running a search")
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger; it is also handed to every editor.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

type createRequest struct {
	Rows   int    `json:"rows" binding:"omitempty,min=1,max=500"`
	Width  int    `json:"width" binding:"omitempty,min=1"`
	Layout string `json:"layout"`
}

type cellRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

type clickRequest struct {
	X      *int   `json:"x" binding:"required"`
	Y      *int   `json:"y" binding:"required"`
	Button string `json:"button" binding:"omitempty,oneof=left right"`
}

// sessionView is the JSON body describing one session.
type sessionView struct {
	ID        string        `json:"id"`
	Created   time.Time     `json:"created"`
	Rows      int           `json:"rows"`
	Width     int           `json:"width"`
	Gap       int           `json:"gap"`
	Lines     []string      `json:"lines"`
	Start     *render.Point `json:"start,omitempty"`
	End       *render.Point `json:"end,omitempty"`
	Executed  bool          `json:"executed"`
	Reachable *bool         `json:"reachable,omitempty"`
}

// Websocket message types.
const (
	msgFrame  = "frame"
	msgDone   = "done"
	msgError  = "error"
	msgCancel = "cancel"
)

// wsMessage is one server → client websocket message.
type wsMessage struct {
	Type  string        `json:"type"`
	Run   string        `json:"run,omitempty"`
	Frame *render.Frame `json:"frame,omitempty"`
	Error string        `json:"error,omitempty"`
}

// wsCommand is one client → server websocket message.
type wsCommand struct {
	Type string `json:"type"`
}
