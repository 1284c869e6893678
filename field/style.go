package field

import "github.com/charmbracelet/lipgloss"

// Style controls the field's rendering.
type Style struct {
	Prefix      lipgloss.Style
	Dirty       lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
}

// DefaultStyle returns the 256-colour styles used by the demo.
func DefaultStyle() Style {
	return Style{
		Prefix:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dirty:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}
