package pager

import (
	"sync"

	"github.com/atomicstack/listpager/internal/logging/events"
)

// Store maps handles to sessions and drives their rendering through a View.
// Sessions live as long as the store.
type Store struct {
	mu       sync.Mutex
	view     View
	sessions []*Session
}

// NewStore returns an empty store rendering through view.
func NewStore(view View) *Store {
	return &Store{view: view}
}

// Register creates a session from cfg, renders its first page and returns the
// new handle.
func (s *Store) Register(cfg Config) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.create(cfg)
	s.paginate(sess)
	return sess.handle
}

// Paginate (re)computes the session backing list. An unregistered list gets a
// new session whose unspecified fields default to the list's items and
// container; the handle is then stored on the list. A registered list has cfg
// merged onto its stored configuration. Either way the session is re-rendered
// from page 1.
func (s *Store) Paginate(list List, cfg Config) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessionForList(list, cfg)
	s.paginate(sess)
	return sess.handle
}

// SetSession merges cfg onto an existing session and re-renders it from
// page 1. It reports false for an unknown handle.
func (s *Store) SetSession(h Handle, cfg Config) bool {
	return s.Dispatch(h, Reconfigure{Config: cfg})
}

// State returns a snapshot of the session for h.
func (s *Store) State(h Handle) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.lookup(h)
	if sess == nil {
		return State{}, false
	}
	return sess.snapshot(), true
}

// Len reports how many sessions have been created.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) lookup(h Handle) *Session {
	if h < 0 || int(h) >= len(s.sessions) {
		return nil
	}
	return s.sessions[h]
}

// sessionForList returns the list's session with cfg merged in, creating it
// when the list carries no handle from this store.
func (s *Store) sessionForList(list List, cfg Config) *Session {
	if h, ok := list.Handle(s); ok {
		if sess := s.lookup(h); sess != nil {
			cfg.mergeInto(sess)
			return sess
		}
	}
	if cfg.Items == nil {
		cfg.Items = list.Items()
		if cfg.Items == nil {
			cfg.Items = []Item{}
		}
	}
	if cfg.Container == nil {
		cfg.Container = list.Container()
	}
	sess := s.create(cfg)
	list.SetHandle(s, sess.handle)
	return sess
}

func (s *Store) create(cfg Config) *Session {
	sess := &Session{
		handle:   Handle(len(s.sessions)),
		pageSize: DefaultPageSize,
	}
	cfg.mergeInto(sess)
	if sess.matched == nil {
		sess.matched = make([]bool, len(sess.items))
	}
	if sess.display == "" {
		sess.display = s.sampleDisplay(sess.items)
	}
	s.sessions = append(s.sessions, sess)
	events.Pager.Register(int(sess.handle), len(sess.items), sess.pageSize)
	return sess
}

func (s *Store) sampleDisplay(items []Item) Display {
	if sampler, ok := s.view.(DisplaySampler); ok && len(items) > 0 {
		if d := sampler.DisplayOf(items[0]); d != "" {
			return d
		}
	}
	return DefaultDisplay
}
