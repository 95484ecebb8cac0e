package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/editor"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/render"
)

func (s *Server) palette(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cells": render.DefaultPalette.Legend(),
		"line":  render.GridLine.Hex(),
	})
}

// createSession accepts an optional body {rows, width, layout}. A layout
// wins over rows; missing values come from the grid configuration.
func (s *Server) createSession(c *gin.Context) {
	var req createRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	width := req.Width
	if width == 0 {
		width = s.grid.Width
	}
	opts := []editor.Option{editor.WithUndoPolicy(s.grid.Undo), editor.WithLogger(s.log)}

	var (
		ed  *editor.Editor
		err error
	)
	if req.Layout != "" {
		var g *grid.Grid
		if g, err = grid.Parse(req.Layout); err == nil {
			ed, err = editor.FromGrid(g, width, opts...)
		}
	} else {
		rows := req.Rows
		if rows == 0 {
			rows = s.grid.Rows
		}
		ed, err = editor.New(rows, width, opts...)
	}
	if err != nil {
		abort(c, err)
		return
	}

	sess, err := s.sessions.add(ed)
	if err != nil {
		abort(c, err)
		return
	}
	s.log.Info("session created", zap.String("session", sess.id.String()), zap.Int("rows", ed.Grid().Rows()))
	c.JSON(http.StatusCreated, view(sess))
}

// withSession resolves :id and runs fn under the session lock. A session
// whose lock is held by a run answers ErrBusy instead of waiting.
func (s *Server) withSession(c *gin.Context, fn func(sess *session) (any, error)) {
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

	body, err := fn(sess)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) getSession(c *gin.Context) {
	s.withSession(c, func(sess *session) (any, error) {
		return view(sess), nil
	})
}

func (s *Server) deleteSession(c *gin.Context) {
	if err := s.sessions.remove(c.Param("id")); err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) paint(c *gin.Context) {
	var req cellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.withSession(c, func(sess *session) (any, error) {
		act, err := sess.ed.Paint(grid.Pos{Row: *req.Row, Col: *req.Col})
		if err != nil {
			return nil, err
		}
		return gin.H{"action": act.String(), "session": view(sess)}, nil
	})
}

func (s *Server) erase(c *gin.Context) {
	var req cellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.withSession(c, func(sess *session) (any, error) {
		if err := sess.ed.Erase(grid.Pos{Row: *req.Row, Col: *req.Col}); err != nil {
			return nil, err
		}
		return gin.H{"session": view(sess)}, nil
	})
}

// click maps a canvas pixel to a cell: "left" (default) paints, "right" erases.
func (s *Server) click(c *gin.Context) {
	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.withSession(c, func(sess *session) (any, error) {
		if req.Button == "right" {
			if err := sess.ed.EraseAt(*req.X, *req.Y); err != nil {
				return nil, err
			}
			return gin.H{"action": "erase", "session": view(sess)}, nil
		}
		act, err := sess.ed.PaintAt(*req.X, *req.Y)
		if err != nil {
			return nil, err
		}
		return gin.H{"action": act.String(), "session": view(sess)}, nil
	})
}

func (s *Server) clear(c *gin.Context) {
	s.withSession(c, func(sess *session) (any, error) {
		sess.ed.Clear()
		return gin.H{"session": view(sess)}, nil
	})
}

func (s *Server) undo(c *gin.Context) {
	s.withSession(c, func(sess *session) (any, error) {
		n, err := sess.ed.Undo()
		if err != nil {
			return nil, err
		}
		return gin.H{"cleared": n, "session": view(sess)}, nil
	})
}
