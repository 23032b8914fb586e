package ui

import (
	"unicode"

	"github.com/atomicstack/listpager/internal/logging/events"
	"github.com/atomicstack/listpager/internal/pager"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateQueryCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

func (m *Model) noteQueryCursorChange(before int) {
	if before != m.query.CursorPos() {
		m.queryCursorDirty = true
	}
}

// handleTextInput edits the query. Every change to the query text is pushed to
// the pager as a search; caret movement alone is not.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	before := m.query.CursorPos()
	switch msg.String() {
	case "ctrl+u":
		if !m.query.Clear() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Query.Cleared()
		m.runSearch()
		return true
	case "ctrl+w":
		if !m.query.DeleteWordBackward() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Query.Edit(m.query.Text, m.query.Cursor)
		m.runSearch()
		return true
	case "ctrl+a":
		return m.moveQueryCursor(before, m.query.MoveStart())
	case "ctrl+e":
		return m.moveQueryCursor(before, m.query.MoveEnd())
	case "alt+b":
		return m.moveQueryCursor(before, m.query.MoveWordBackward())
	case "alt+f":
		return m.moveQueryCursor(before, m.query.MoveWordForward())
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.query.DeleteRuneBackward() {
			return false
		}
		m.noteQueryCursorChange(before)
		events.Query.Edit(m.query.Text, m.query.Cursor)
		m.runSearch()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToQuery(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToQuery(" ")
	case tea.KeyLeft:
		return m.moveQueryCursor(before, m.query.MoveRuneBackward())
	case tea.KeyRight:
		return m.moveQueryCursor(before, m.query.MoveRuneForward())
	}
	return false
}

func (m *Model) moveQueryCursor(before int, moved bool) bool {
	if !moved {
		return false
	}
	m.noteQueryCursorChange(before)
	events.Query.Cursor(m.query.Cursor)
	return true
}

func (m *Model) appendToQuery(text string) bool {
	before := m.query.CursorPos()
	if !m.query.Insert(text) {
		return false
	}
	m.noteQueryCursorChange(before)
	events.Query.Edit(m.query.Text, m.query.Cursor)
	m.runSearch()
	return true
}

// runSearch pushes the current query to the pager. A blank query clears the
// filter.
func (m *Model) runSearch() {
	m.bus.Execute(m.Handle(), pager.Search{Query: m.query.Text})
}

func (m *Model) clearQuery() bool {
	if !m.query.Clear() {
		return false
	}
	m.queryCursorDirty = true
	events.Query.Cleared()
	m.bus.Execute(m.Handle(), pager.ClearSearch{})
	return true
}

func (m *Model) queryPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	m.queryCursor.Style = *styles.Cursor
	m.queryCursor.TextStyle = *styles.Query
	prompt := styles.QueryPrompt.Render("» ")
	text := m.query.Text
	if text == "" {
		runes := []rune("(type to search)")
		m.queryCursor.TextStyle = *styles.QueryPlaceholder
		caret := m.renderQueryCursor(string(runes[0]))
		return prompt + caret + render(styles.QueryPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.query.CursorPos()
	head := render(styles.Query, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Query, string(runes[pos+1:]))
	}
	return prompt + head + m.renderQueryCursor(caretRune) + after
}

func (m *Model) renderQueryCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.queryCursor.SetChar(char)
	base := m.queryCursor.TextStyle.Inline(true)
	if m.queryCursor.Blink {
		return base.Render(char)
	}
	return base.Inherit(styles.Cursor.Inline(true)).Blink(false).Render(char)
}
