package pager

import "github.com/atomicstack/listpager/internal/logging/events"

// Command is a request a view layer dispatches against a session.
type Command interface {
	apply(s *Store, sess *Session) bool
}

// GoTo jumps to an absolute page.
type GoTo struct{ Page int }

// GoToLabel jumps to the page named by a control label such as "3".
type GoToLabel struct{ Label string }

// Next advances one page.
type Next struct{}

// Previous moves back one page.
type Previous struct{}

// Search filters the session by Query.
type Search struct{ Query string }

// ClearSearch leaves search mode.
type ClearSearch struct{}

// Reconfigure merges Config onto the session.
type Reconfigure struct{ Config Config }

func (c GoTo) apply(s *Store, sess *Session) bool {
	return s.changePage(sess, c.Page)
}

func (c GoToLabel) apply(s *Store, sess *Session) bool {
	page, ok := parsePageLabel(c.Label)
	if !ok {
		events.Pager.Ignored(int(sess.handle), c.Label)
		return false
	}
	return s.changePage(sess, page)
}

func (Next) apply(s *Store, sess *Session) bool {
	if sess.pager == nil || sess.pager.current == sess.pager.total {
		return false
	}
	return s.changePage(sess, sess.pager.current+1)
}

func (Previous) apply(s *Store, sess *Session) bool {
	if sess.pager == nil || sess.pager.current == 1 {
		return false
	}
	return s.changePage(sess, sess.pager.current-1)
}

func (c Search) apply(s *Store, sess *Session) bool {
	s.search(sess, c.Query)
	return true
}

func (ClearSearch) apply(s *Store, sess *Session) bool {
	s.clearSearch(sess)
	return true
}

func (c Reconfigure) apply(s *Store, sess *Session) bool {
	c.Config.mergeInto(sess)
	s.paginate(sess)
	return true
}

// Dispatch applies cmd to the session h. It reports whether the command was
// accepted; unknown handles and ignored requests report false. An accepted
// command may leave the view as it was, e.g. GoTo the current page.
func (s *Store) Dispatch(h Handle, cmd Command) bool {
	if cmd == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.lookup(h)
	if sess == nil {
		return false
	}
	return cmd.apply(s, sess)
}
