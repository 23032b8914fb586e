package pager

// Handle identifies a session within a Store. Handles are assigned
// monotonically starting at zero and are never reused.
type Handle int

// Item is an opaque list entry supplied by the caller.
type Item = any

// Display is the visual state restored on an item when it is shown.
type Display string

const (
	// DefaultPageSize is the page size of a session created without one.
	DefaultPageSize = 20
	// DefaultDisplay is restored on shown items when neither the config nor
	// the view's DisplaySampler supplies a display.
	DefaultDisplay Display = "visible"
)

// PagerRef is whatever the view returns from BuildPager to identify the pager
// control it constructed.
type PagerRef any

// PagerActions are bound by the view to its pager controls.
type PagerActions struct {
	Previous func()
	Next     func()
	// Jump receives the text of the clicked page control; it is parsed as a
	// page number and ignored when that fails.
	Jump func(label string)
}

// ControlState describes how the pager controls should look for a page.
type ControlState struct {
	CurrentPage          int
	TotalPages           int
	PreviousDisabled     bool
	NextDisabled         bool
	FirstActive          bool
	LastActive           bool
	MovableLabel         string
	MovableVisible       bool
	LeftEllipsisVisible  bool
	RightEllipsisVisible bool
}

// View applies render instructions issued by the Store. Methods are invoked
// while the store is locked and must not call back into it synchronously.
type View interface {
	ShowItem(item Item, display Display)
	HideItem(item Item)
	BuildPager(container any, totalPages int, actions PagerActions) PagerRef
	DestroyPager(ref PagerRef)
	SetPagerControlState(ref PagerRef, state ControlState)
}

// DisplaySampler is implemented by views that can report an item's current
// display. It is used to pick a session's default Display.
type DisplaySampler interface {
	DisplayOf(item Item) Display
}

// Labeler is implemented by items that carry their own searchable text.
type Labeler interface {
	Label() string
}
