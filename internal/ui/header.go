package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the heading bar with the theme indicator.
func (m Model) renderHeader(styles Styles) string {
	surface := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface))

	left := styles.Logo.Render("NASA Imager")
	right := surface.Foreground(lipgloss.Color(m.theme.Accent)).Render(modeIndicator(m.session.Dark())) +
		surface.Render("  ") +
		surface.Foreground(lipgloss.Color(m.theme.Faint)).Render(m.keys.ToggleTheme.Help().Key)

	inner := max(0, m.width-2)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	content := fill(left, lipgloss.Width(left)+gap, surface) + right
	return styles.Header.Width(m.width).Render(content)
}
