package pager

import (
	"fmt"
	"strings"

	"github.com/atomicstack/listpager/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchFunc returns the text of item that a search query is compared against.
// Panics raised here propagate to the caller of Search.
type MatchFunc func(item Item) string

// Matcher reports whether text matches query.
type Matcher func(text, query string) bool

// SubstringMatcher is the default matcher: a literal, case-sensitive
// substring test.
func SubstringMatcher(text, query string) bool {
	return strings.Contains(text, query)
}

// FuzzyMatcher matches when the runes of query appear in text in order.
func FuzzyMatcher(text, query string) bool {
	return fuzzy.Match(query, text)
}

// ItemText is the default MatchFunc. Labeler items report their label, all
// other items are formatted with fmt.
func ItemText(item Item) string {
	if l, ok := item.(Labeler); ok {
		return l.Label()
	}
	return fmt.Sprint(item)
}

// SearchOption customises a search binding.
type SearchOption func(*Session)

// WithMatchFunc sets how item text is extracted for matching.
func WithMatchFunc(fn MatchFunc) SearchOption {
	return func(sess *Session) { sess.match = fn }
}

// WithMatcher replaces the substring test.
func WithMatcher(m Matcher) SearchOption {
	return func(sess *Session) { sess.matcher = m }
}

// Filter is the search binding attached to one session.
type Filter struct {
	store  *Store
	handle Handle
}

// Attach binds search to the session for list, paginating the list with
// defaults first when it has no session yet. Options passed to a later Attach
// override earlier ones.
func (s *Store) Attach(list List, opts ...SearchOption) *Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sess *Session
	if h, ok := list.Handle(s); ok {
		sess = s.lookup(h)
	}
	if sess == nil {
		sess = s.sessionForList(list, Config{})
		s.paginate(sess)
	}
	s.attach(sess, opts)
	return &Filter{store: s, handle: sess.handle}
}

// AttachHandle binds search to an existing session.
func (s *Store) AttachHandle(h Handle, opts ...SearchOption) (*Filter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.lookup(h)
	if sess == nil {
		return nil, false
	}
	s.attach(sess, opts)
	return &Filter{store: s, handle: h}, true
}

func (s *Store) attach(sess *Session, opts []SearchOption) {
	for _, opt := range opts {
		opt(sess)
	}
	events.Search.Attach(int(sess.handle))
}

// Handle returns the session handle the filter is bound to.
func (f *Filter) Handle() Handle { return f.handle }

// Search narrows the session to items whose text contains query and renders
// page 1 of the result. A blank query clears the search instead.
func (f *Filter) Search(query string) {
	f.store.Search(f.handle, query)
}

// Clear leaves search mode and renders page 1 of the full item set.
func (f *Filter) Clear() {
	f.store.ClearSearch(f.handle)
}

// Search runs query against the session for h. See Filter.Search.
func (s *Store) Search(h Handle, query string) bool {
	return s.Dispatch(h, Search{Query: query})
}

// ClearSearch leaves search mode for the session h.
func (s *Store) ClearSearch(h Handle) bool {
	return s.Dispatch(h, ClearSearch{})
}

func (s *Store) search(sess *Session, query string) {
	if strings.TrimSpace(query) == "" {
		s.clearSearch(sess)
		return
	}
	text := sess.match
	if text == nil {
		text = ItemText
	}
	matches := sess.matcher
	if matches == nil {
		matches = SubstringMatcher
	}
	if len(sess.matched) != len(sess.items) {
		sess.matched = make([]bool, len(sess.items))
	}
	count := 0
	for i, item := range sess.items {
		sess.matched[i] = matches(text(item), query)
		if sess.matched[i] {
			count++
		}
	}
	sess.filterActive = true
	events.Search.Query(int(sess.handle), query, count)
	s.paginate(sess)
}

func (s *Store) clearSearch(sess *Session) {
	sess.filterActive = false
	for i := range sess.matched {
		sess.matched[i] = false
	}
	events.Search.Clear(int(sess.handle))
	s.paginate(sess)
}
