package ui

import (
	"github.com/atomicstack/listpager/internal/pager"
	"github.com/atomicstack/listpager/internal/source"
)

type row struct {
	entry   *source.Entry
	index   int
	shown   bool
	display pager.Display
}

// pagerWidget is the pager bar the store asked the model to build.
type pagerWidget struct {
	container any
	total     int
	actions   pager.PagerActions
	state     pager.ControlState
}

// ShowItem implements pager.View.
func (m *Model) ShowItem(item pager.Item, display pager.Display) {
	if r, ok := m.byItem[item]; ok {
		r.shown = true
		r.display = display
	}
}

// HideItem implements pager.View.
func (m *Model) HideItem(item pager.Item) {
	if r, ok := m.byItem[item]; ok {
		r.shown = false
	}
}

// BuildPager implements pager.View.
func (m *Model) BuildPager(container any, totalPages int, actions pager.PagerActions) pager.PagerRef {
	w := &pagerWidget{container: container, total: totalPages, actions: actions}
	m.pager = w
	return w
}

// DestroyPager implements pager.View.
func (m *Model) DestroyPager(ref pager.PagerRef) {
	if w, ok := ref.(*pagerWidget); ok && w == m.pager {
		m.pager = nil
	}
}

// SetPagerControlState implements pager.View.
func (m *Model) SetPagerControlState(ref pager.PagerRef, state pager.ControlState) {
	if w, ok := ref.(*pagerWidget); ok {
		w.state = state
	}
}

// DisplayOf implements pager.DisplaySampler.
func (m *Model) DisplayOf(item pager.Item) pager.Display {
	if r, ok := m.byItem[item]; ok {
		return r.display
	}
	return ""
}

func (m *Model) visibleRows() []*row {
	visible := make([]*row, 0, len(m.rows))
	for _, r := range m.rows {
		if r.shown {
			visible = append(visible, r)
		}
	}
	return visible
}
