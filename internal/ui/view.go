package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/listpager/internal/format/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is already styled; truncate ANSI-aware
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, len(m.rows)+6)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	visible := m.visibleRows()
	if len(visible) == 0 {
		msg := "(no entries)"
		if m.State().FilterActive {
			msg = fmt.Sprintf("No matches for %q", m.query.Text)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	}
	for i, text := range rowTexts(visible) {
		lines = append(lines, styledLine{text: text, style: styles.Display(string(visible[i].display))})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Error: " + m.errMsg, style: styles.Status})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerHelp(), style: styles.Footer})
	}
	// Reserve rows for the bottom bar (pager + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	bottom := []styledLine{
		{text: m.pagerBar(), raw: true},
		{text: m.promptLine(), raw: true},
	}
	bottom = applyWidth(bottom, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// rowTexts lays the rows out as position, text and detail columns.
func rowTexts(rows []*row) []string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{strconv.Itoa(r.index), r.entry.Text, r.entry.Detail}
	}
	return table.Format(cells, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft})
}

func (m *Model) footerHelp() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func (m *Model) header() string {
	st := m.State()
	page := fmt.Sprintf("page %d/%d", st.CurrentPage, st.TotalPages)
	if st.FilterActive {
		return fmt.Sprintf("%d of %d items match %q · %s", st.ActiveCount, st.ItemCount, m.query.Text, page)
	}
	return fmt.Sprintf("%d items · %s", st.ItemCount, page)
}

func (m *Model) promptLine() string {
	if m.mode == ModeGoto {
		return m.gotoInput.View()
	}
	return m.queryPrompt()
}

// pagerBar renders the pager controls, or nothing when there is no pager. The
// layout follows the control state: previous, the first page, an ellipsis, the
// movable current page, an ellipsis, the last page, next.
func (m *Model) pagerBar() string {
	if m.pager == nil {
		return ""
	}
	st := m.pager.state
	pageLabel := func(page int, active bool) string {
		text := strconv.Itoa(page)
		if active {
			return styles.PagerActive.Render("[" + text + "]")
		}
		return styles.PagerControl.Render(text)
	}
	control := func(text string, disabled bool) string {
		if disabled {
			return styles.PagerDisabled.Render(text)
		}
		return styles.PagerControl.Render(text)
	}
	parts := []string{control("‹ prev", st.PreviousDisabled), pageLabel(1, st.FirstActive)}
	if st.LeftEllipsisVisible {
		parts = append(parts, styles.PagerEllipsis.Render("…"))
	}
	if st.MovableVisible {
		parts = append(parts, styles.PagerActive.Render("["+st.MovableLabel+"]"))
	}
	if st.RightEllipsisVisible {
		parts = append(parts, styles.PagerEllipsis.Render("…"))
	}
	parts = append(parts, pageLabel(m.pager.total, st.LastActive), control("next ›", st.NextDisabled))
	return strings.Join(parts, " ")
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
