package ui

import (
	"fmt"

	"github.com/atomicstack/listpager/internal/backend"
	"github.com/atomicstack/listpager/internal/logging/events"
	"github.com/atomicstack/listpager/internal/pager"
	"github.com/atomicstack/listpager/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

type reloadMsg struct {
	event backend.Event
	ok    bool
}

func (m *Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		evt, ok := <-ch
		return reloadMsg{event: evt, ok: ok}
	}
}

func (m *Model) handleReloadMsg(msg tea.Msg) tea.Cmd {
	reload, ok := msg.(reloadMsg)
	if !ok {
		return nil
	}
	if !reload.ok {
		m.reloads = nil
		return nil
	}
	if err := reload.event.Err; err != nil {
		events.App.ReloadFailed(m.source, err)
		m.errMsg = fmt.Sprintf("reload failed: %v", err)
		return m.waitForReload()
	}
	m.errMsg = ""
	m.replaceEntries(reload.event.Entries)
	events.App.Reloaded(m.source, len(reload.event.Entries))
	return m.waitForReload()
}

// setRows rebuilds the row table for entries and returns them as pager items.
// Row positions are one-based so they match what the user sees.
func (m *Model) setRows(entries []*source.Entry) []pager.Item {
	m.rows = make([]*row, 0, len(entries))
	m.byItem = make(map[pager.Item]*row, len(entries))
	items := make([]pager.Item, 0, len(entries))
	for i, entry := range entries {
		r := &row{entry: entry, index: i + 1, display: m.display}
		m.rows = append(m.rows, r)
		m.byItem[entry] = r
		items = append(items, entry)
	}
	return items
}

// replaceEntries swaps the item set and reapplies the current query, which
// leaves the list on page 1.
func (m *Model) replaceEntries(entries []*source.Entry) {
	items := m.setRows(entries)
	h := m.Handle()
	m.bus.Execute(h, pager.Reconfigure{Config: pager.Config{Items: items}})
	m.runSearch()
}
