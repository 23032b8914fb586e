package pager

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/atomicstack/listpager/internal/logging/events"
)

// paginate rebuilds the pager from scratch and renders page 1 of the active set.
func (s *Store) paginate(sess *Session) {
	active := sess.activeIndices()
	total := pageCount(len(active), sess.pageSize)
	if sess.pager != nil {
		s.view.DestroyPager(sess.pager.ref)
		events.Pager.DestroyPager(int(sess.handle))
		sess.pager = nil
	}
	if total > 1 {
		ref := s.view.BuildPager(sess.container, total, s.actionsFor(sess.handle))
		sess.pager = &pagerState{ref: ref, total: total, current: 1}
		events.Pager.BuildPager(int(sess.handle), total)
	}
	pageFrame(sess, active, 1).apply(s.view)
	events.Pager.Paginate(int(sess.handle), len(active), total, sess.filterActive)
}

func (s *Store) actionsFor(h Handle) PagerActions {
	return PagerActions{
		Previous: func() { s.PreviousPage(h) },
		Next:     func() { s.NextPage(h) },
		Jump:     func(label string) { s.ChangePageLabel(h, label) },
	}
}

// ChangePage shows page of the session's active set and reports true, even
// when page is already current. Pages outside [1, totalPages] are ignored and
// false is returned.
func (s *Store) ChangePage(h Handle, page int) bool {
	return s.Dispatch(h, GoTo{Page: page})
}

// ChangePageLabel parses label as a page number and changes to it. Labels
// without a leading integer are ignored.
func (s *Store) ChangePageLabel(h Handle, label string) bool {
	return s.Dispatch(h, GoToLabel{Label: label})
}

// NextPage advances one page unless already on the last page.
func (s *Store) NextPage(h Handle) bool {
	return s.Dispatch(h, Next{})
}

// PreviousPage moves back one page unless already on the first page.
func (s *Store) PreviousPage(h Handle) bool {
	return s.Dispatch(h, Previous{})
}

func (s *Store) changePage(sess *Session, page int) bool {
	total := sess.totalPages()
	if page < 1 || page > total {
		events.Pager.Ignored(int(sess.handle), itoa(page))
		return false
	}
	pageFrame(sess, sess.activeIndices(), page).apply(s.view)
	if sess.pager != nil {
		sess.pager.current = page
	}
	events.Pager.Page(int(sess.handle), page, total)
	return true
}

// parsePageLabel reads the leading integer of label: optional leading
// whitespace, an optional sign, then at least one digit. Trailing text is
// ignored.
func parsePageLabel(label string) (int, bool) {
	rest := strings.TrimLeftFunc(label, unicode.IsSpace)
	negative := false
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		negative = rest[0] == '-'
		rest = rest[1:]
	}
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
