package ui

import (
	"strconv"
	"strings"

	"github.com/atomicstack/listpager/internal/logging/events"
	"github.com/atomicstack/listpager/internal/pager"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String())
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if m.mode == ModeGoto {
		return m.handleGotoKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Escape):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Previous):
		m.pressPrevious()
		return nil
	case key.Matches(keyMsg, m.keys.Next):
		m.pressNext()
		return nil
	case key.Matches(keyMsg, m.keys.First):
		m.pressJump(1)
		return nil
	case key.Matches(keyMsg, m.keys.Last):
		if m.pager != nil {
			m.pressJump(m.pager.total)
		}
		return nil
	case key.Matches(keyMsg, m.keys.Goto):
		return m.openGotoPrompt()
	}
	m.handleTextInput(keyMsg)
	return nil
}

// handleEscapeKey clears an active query, or quits when there is none.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.clearQuery() {
		return nil
	}
	return tea.Quit
}

// The pager controls are only reachable while a pager exists, the same as a
// rendered pager bar.

func (m *Model) pressPrevious() {
	if m.pager == nil || m.pager.state.PreviousDisabled {
		return
	}
	m.pager.actions.Previous()
}

func (m *Model) pressNext() {
	if m.pager == nil || m.pager.state.NextDisabled {
		return
	}
	m.pager.actions.Next()
}

func (m *Model) pressJump(page int) {
	if m.pager == nil {
		return
	}
	m.pager.actions.Jump(strconv.Itoa(page))
}

func (m *Model) openGotoPrompt() tea.Cmd {
	m.mode = ModeGoto
	m.gotoInput.Reset()
	events.UI.GotoPrompt(true)
	return m.gotoInput.Focus()
}

func (m *Model) closeGotoPrompt() {
	m.mode = ModeList
	m.gotoInput.Blur()
	m.gotoInput.Reset()
	events.UI.GotoPrompt(false)
}

func (m *Model) handleGotoKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeGotoPrompt()
		return nil
	case tea.KeyEnter:
		label := strings.TrimSpace(m.gotoInput.Value())
		m.closeGotoPrompt()
		if label != "" {
			m.bus.Execute(m.Handle(), pager.GoToLabel{Label: label})
		}
		return nil
	}
	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return cmd
}
