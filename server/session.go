package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathviz/editor"
)

// session is one editor behind a lock. A run keeps mu for its whole length.
type session struct {
	id      uuid.UUID
	created time.Time
	mu      sync.Mutex
	ed      *editor.Editor
}

// store indexes sessions by id and enforces the session limit.
type store struct {
	mu  sync.RWMutex
	m   map[uuid.UUID]*session
	max int
}

func newStore(limit int) *store {
	return &store{m: make(map[uuid.UUID]*session), max: limit}
}

func (st *store) add(ed *editor.Editor) (*session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.max > 0 && len(st.m) >= st.max {
		return nil, ErrTooManySessions
	}
	s := &session{id: uuid.New(), created: time.Now(), ed: ed}
	st.m[s.id] = s
	return s, nil
}

func (st *store) get(raw string) (*session, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.m[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *store) remove(raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return ErrSessionNotFound
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.m[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.m, id)
	return nil
}

func (st *store) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.m)
}
