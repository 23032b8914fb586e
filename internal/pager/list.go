package pager

// List is the caller's backing list. It remembers the handle each Store gave
// it, so later calls against the same list reach the same session, and it
// declares the default item source and pager container.
type List interface {
	// Handle returns the handle owner assigned to the list, if any.
	Handle(owner *Store) (Handle, bool)
	SetHandle(owner *Store, h Handle)
	Items() []Item
	Container() any
}

// SliceList is a List backed by a slice. It can be registered with several
// stores at once.
type SliceList struct {
	handles   map[*Store]Handle
	items     []Item
	container any
}

// NewSliceList returns an unregistered list over items.
func NewSliceList(container any, items ...Item) *SliceList {
	return &SliceList{items: items, container: container}
}

func (l *SliceList) Handle(owner *Store) (Handle, bool) {
	h, ok := l.handles[owner]
	return h, ok
}

func (l *SliceList) SetHandle(owner *Store, h Handle) {
	if l.handles == nil {
		l.handles = make(map[*Store]Handle, 1)
	}
	l.handles[owner] = h
}

func (l *SliceList) Items() []Item { return l.items }

func (l *SliceList) Container() any { return l.container }
