package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header           *lipgloss.Style
	Item             *lipgloss.Style
	Info             *lipgloss.Style
	Footer           *lipgloss.Style
	Status           *lipgloss.Style
	Query            *lipgloss.Style
	QueryPrompt      *lipgloss.Style
	QueryPlaceholder *lipgloss.Style
	Cursor           *lipgloss.Style
	PagerControl     *lipgloss.Style
	PagerActive      *lipgloss.Style
	PagerDisabled    *lipgloss.Style
	PagerEllipsis    *lipgloss.Style
	displays         map[string]*lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	QueryPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	QueryPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	PagerControl: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	PagerActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	PagerDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	PagerEllipsis: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	displays: map[string]*lipgloss.Style{
		"dim": ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Faint(true),
		),
		"bold": ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		),
		"accent": ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Display returns the row style for a display state name; unknown names use
// the plain Item style.
func (s *Styles) Display(name string) *lipgloss.Style {
	if style, ok := s.displays[name]; ok {
		return style
	}
	return s.Item
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
