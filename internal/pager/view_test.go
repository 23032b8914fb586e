package pager

import "fmt"

type fakePager struct {
	container any
	total     int
	actions   PagerActions
	state     ControlState
	updates   int
	destroyed bool
}

type fakeView struct {
	shown   map[Item]Display
	pagers  []*fakePager
	display Display
}

func newFakeView() *fakeView {
	return &fakeView{shown: make(map[Item]Display)}
}

func (v *fakeView) ShowItem(item Item, display Display) { v.shown[item] = display }

func (v *fakeView) HideItem(item Item) { delete(v.shown, item) }

func (v *fakeView) BuildPager(container any, total int, actions PagerActions) PagerRef {
	p := &fakePager{container: container, total: total, actions: actions}
	v.pagers = append(v.pagers, p)
	return p
}

func (v *fakeView) DestroyPager(ref PagerRef) { ref.(*fakePager).destroyed = true }

func (v *fakeView) SetPagerControlState(ref PagerRef, state ControlState) {
	p := ref.(*fakePager)
	p.state = state
	p.updates++
}

// live returns the most recent pager that has not been destroyed.
func (v *fakeView) live() *fakePager {
	for i := len(v.pagers) - 1; i >= 0; i-- {
		if !v.pagers[i].destroyed {
			return v.pagers[i]
		}
	}
	return nil
}

func (v *fakeView) visible(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if _, ok := v.shown[item]; ok {
			out = append(out, item)
		}
	}
	return out
}

type samplingView struct {
	*fakeView
}

func (v samplingView) DisplayOf(Item) Display { return v.display }

type row struct {
	id    int
	label string
}

func (r row) Label() string { return r.label }

func makeItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i)
	}
	return items
}
