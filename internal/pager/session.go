package pager

// Session is one paginated list's configuration and runtime state.
type Session struct {
	handle       Handle
	pageSize     int
	container    any
	items        []Item
	display      Display
	filterActive bool
	matched      []bool
	match        MatchFunc
	matcher      Matcher
	pager        *pagerState
}

type pagerState struct {
	ref     PagerRef
	total   int
	current int
}

// State is a read-only snapshot of a session.
type State struct {
	Handle       Handle
	PageSize     int
	Display      Display
	ItemCount    int
	ActiveCount  int
	FilterActive bool
	HasPager     bool
	CurrentPage  int
	TotalPages   int
}

// activeIndices returns the positions in items that paging operates over.
func (s *Session) activeIndices() []int {
	idx := make([]int, 0, len(s.items))
	for i := range s.items {
		if s.filterActive && (i >= len(s.matched) || !s.matched[i]) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// totalPages never reports fewer than one page; an empty active set still has
// a conceptually valid, empty page 1.
func (s *Session) totalPages() int {
	if s.pager != nil {
		return s.pager.total
	}
	if n := pageCount(len(s.activeIndices()), s.pageSize); n > 1 {
		return n
	}
	return 1
}

func (s *Session) currentPage() int {
	if s.pager == nil {
		return 1
	}
	return s.pager.current
}

func (s *Session) snapshot() State {
	return State{
		Handle:       s.handle,
		PageSize:     s.pageSize,
		Display:      s.display,
		ItemCount:    len(s.items),
		ActiveCount:  len(s.activeIndices()),
		FilterActive: s.filterActive,
		HasPager:     s.pager != nil,
		CurrentPage:  s.currentPage(),
		TotalPages:   s.totalPages(),
	}
}

func pageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// pageWindow returns the half-open bounds of page within n active items.
func pageWindow(page, size, n int) (int, int) {
	start := (page - 1) * size
	if start > n {
		start = n
	}
	end := start + size
	if end > n {
		end = n
	}
	return start, end
}
