package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelp builds the footer help model styled for the theme.
func newHelp(t Theme) help.Model {
	h := help.New()
	applyHelpStyles(&h, t)
	return h
}

func applyHelpStyles(h *help.Model, t Theme) {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))

	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
}

// renderFooter renders the key help for the visible screen.
func (m Model) renderFooter(styles Styles) string {
	keys := screenKeys{keys: m.keys, detail: m.session.HasAsset()}
	return styles.Footer.Render(m.help.View(keys))
}
