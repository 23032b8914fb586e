package pager

// Config configures a session. Zero values mean "unspecified": on creation
// they fall back to defaults, on reconfiguration they keep the stored value.
type Config struct {
	// PageSize is the number of items per page. Values <= 0 are unspecified.
	PageSize int
	// Container is handed to View.BuildPager as the pager's parent.
	Container any
	// Items replaces the session's item set when non-nil. An empty non-nil
	// slice clears it.
	Items []Item
	// Display is restored on shown items. The empty value is unspecified.
	Display Display
}

func (c Config) mergeInto(sess *Session) {
	if c.PageSize > 0 {
		sess.pageSize = c.PageSize
	}
	if c.Container != nil {
		sess.container = c.Container
	}
	if c.Items != nil {
		sess.items = cloneItems(c.Items)
		sess.matched = make([]bool, len(sess.items))
	}
	if c.Display != "" {
		sess.display = c.Display
	}
}

func cloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
