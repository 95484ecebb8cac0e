package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/server"
)

type point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type sessionBody struct {
	ID        string   `json:"id"`
	Rows      int      `json:"rows"`
	Width     int      `json:"width"`
	Gap       int      `json:"gap"`
	Lines     []string `json:"lines"`
	Start     *point   `json:"start"`
	End       *point   `json:"end"`
	Executed  bool     `json:"executed"`
	Reachable *bool    `json:"reachable"`
}

type commandBody struct {
	Action  string      `json:"action"`
	Cleared int         `json:"cleared"`
	Session sessionBody `json:"session"`
	Error   string      `json:"error"`
}

func newServer(t *testing.T, mutate ...func(*config.Config)) *server.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Render.FrameDelay = 0
	for _, m := range mutate {
		m(&cfg)
	}
	return server.New(&cfg)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func create(t *testing.T, h http.Handler, body any) sessionBody {
	t.Helper()
	w := do(t, h, http.MethodPost, "/sessions", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[sessionBody](t, w)
}

func TestHealthz(t *testing.T) {
	s := newServer(t)
	w := do(t, s.Handler(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","sessions":0}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(server.RequestIDHeader))
}

func TestRequestIDEchoed(t *testing.T) {
	s := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(server.RequestIDHeader))
}

func TestPalette(t *testing.T) {
	s := newServer(t)
	w := do(t, s.Handler(), http.MethodGet, "/palette", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Cells map[string]string `json:"cells"`
		Line  string            `json:"line"`
	}](t, w)
	assert.Equal(t, "#ffa500", body.Cells["start"])
	assert.Equal(t, "#800080", body.Cells["path"])
	assert.Equal(t, "#808080", body.Line)
}

func TestCreateSession_Defaults(t *testing.T) {
	s := newServer(t)
	sess := create(t, s.Handler(), nil)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 50, sess.Rows)
	assert.Equal(t, 800, sess.Width)
	assert.Equal(t, 16, sess.Gap)
	assert.Len(t, sess.Lines, 50)
	assert.Nil(t, sess.Start)
	assert.Nil(t, sess.Reachable)
}

func TestCreateSession_Layout(t *testing.T) {
	s := newServer(t)
	open := create(t, s.Handler(), map[string]any{"layout": "S..\n...\n..E", "width": 300})
	assert.Equal(t, 3, open.Rows)
	assert.Equal(t, 100, open.Gap)
	assert.Equal(t, &point{0, 0}, open.Start)
	assert.Equal(t, &point{2, 2}, open.End)
	require.NotNil(t, open.Reachable)
	assert.True(t, *open.Reachable)

	walled := create(t, s.Handler(), map[string]any{"layout": "S#.\n##.\n..E"})
	require.NotNil(t, walled.Reachable)
	assert.False(t, *walled.Reachable)
}

func TestCreateSession_Errors(t *testing.T) {
	s := newServer(t)
	h := s.Handler()

	cases := map[string]any{
		"bad layout":   map[string]any{"layout": "S.\n..."},
		"too many":     map[string]any{"rows": 600},
		"narrow":       map[string]any{"rows": 10, "width": 5},
		"wrong type":   map[string]any{"rows": "ten"},
		"unknown cell": map[string]any{"layout": "S?\n.E"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/sessions", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[commandBody](t, w).Error)
		})
	}
}

func TestCreateSession_Limit(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Server.MaxSessions = 1 })
	create(t, s.Handler(), map[string]any{"rows": 3, "width": 30})

	w := do(t, s.Handler(), http.MethodPost, "/sessions", map[string]any{"rows": 3, "width": 30})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetAndDeleteSession(t *testing.T) {
	s := newServer(t)
	h := s.Handler()
	sess := create(t, h, map[string]any{"rows": 4, "width": 40})

	w := do(t, h, http.MethodGet, "/sessions/"+sess.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sess.ID, decode[sessionBody](t, w).ID)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/sessions/not-a-uuid", nil).Code)
	assert.Equal(t, http.StatusNotFound,
		do(t, h, http.MethodGet, "/sessions/6f1c2f8e-4c35-4c41-9a48-3b1f0f3d2a10", nil).Code)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/sessions/"+sess.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/sessions/"+sess.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/sessions/"+sess.ID, nil).Code)
}

func TestPaintEraseFlow(t *testing.T) {
	s := newServer(t)
	h := s.Handler()
	sess := create(t, h, map[string]any{"rows": 3, "width": 30})
	base := "/sessions/" + sess.ID

	steps := []struct {
		row, col int
		action   string
	}{
		{0, 0, "start"},
		{2, 2, "end"},
		{1, 1, "barrier"},
		{0, 0, "ignored"},
	}
	var last commandBody
	for _, st := range steps {
		w := do(t, h, http.MethodPost, base+"/paint", map[string]int{"row": st.row, "col": st.col})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		last = decode[commandBody](t, w)
		assert.Equal(t, st.action, last.Action)
	}
	assert.Equal(t, []string{"S..", ".#.", "..E"}, last.Session.Lines)

	w := do(t, h, http.MethodPost, base+"/erase", map[string]int{"row": 2, "col": 2})
	require.Equal(t, http.StatusOK, w.Code)
	after := decode[commandBody](t, w)
	assert.Nil(t, after.Session.End)
	assert.Equal(t, []string{"S..", ".#.", "..."}, after.Session.Lines)

	assert.Equal(t, http.StatusBadRequest,
		do(t, h, http.MethodPost, base+"/paint", map[string]int{"row": 1}).Code, "col is required")
	assert.Equal(t, http.StatusBadRequest,
		do(t, h, http.MethodPost, base+"/paint", map[string]int{"row": 3, "col": 0}).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(t, h, http.MethodPost, base+"/erase", map[string]int{"row": 0, "col": -1}).Code)
	assert.Equal(t, http.StatusNotFound,
		do(t, h, http.MethodPost, "/sessions/nope/paint", map[string]int{"row": 0, "col": 0}).Code)
}

func TestClick(t *testing.T) {
	s := newServer(t)
	h := s.Handler()
	sess := create(t, h, map[string]any{"rows": 3, "width": 30})
	base := "/sessions/" + sess.ID + "/click"

	w := do(t, h, http.MethodPost, base, map[string]any{"x": 25, "y": 5})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[commandBody](t, w)
	assert.Equal(t, "start", body.Action)
	assert.Equal(t, &point{2, 0}, body.Session.Start, "x selects the row")

	w = do(t, h, http.MethodPost, base, map[string]any{"x": 21, "y": 9, "button": "right"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[commandBody](t, w)
	assert.Equal(t, "erase", body.Action)
	assert.Nil(t, body.Session.Start)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, base, map[string]any{"x": 30, "y": 0}).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(t, h, http.MethodPost, base, map[string]any{"x": 1, "y": 1, "button": "middle"}).Code)
}

func TestClearAndUndo(t *testing.T) {
	s := newServer(t)
	h := s.Handler()
	sess := create(t, h, map[string]any{"layout": "S#.\n...\n..E"})
	base := "/sessions/" + sess.ID

	w := do(t, h, http.MethodPost, base+"/undo", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decode[commandBody](t, w).Error, "nothing to undo")

	w = do(t, h, http.MethodPost, base+"/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[commandBody](t, w)
	assert.Equal(t, []string{"...", "...", "..."}, body.Session.Lines)
	assert.Nil(t, body.Session.Start)
	assert.Nil(t, body.Session.End)
}

func TestSetFrameDelay(t *testing.T) {
	s := newServer(t)
	assert.Zero(t, s.FrameDelay())
	s.SetFrameDelay(42)
	assert.EqualValues(t, 42, s.FrameDelay())
	s.SetFrameDelay(-1)
	assert.Zero(t, s.FrameDelay())
}
