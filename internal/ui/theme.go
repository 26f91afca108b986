package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for one display mode.
type Theme struct {
	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars

	// Selection colors
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		ErrorPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Danger)).
			Padding(0, 1),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	DangerText  lipgloss.Style
	Title       lipgloss.Style

	// Components
	Header       lipgloss.Style
	Footer       lipgloss.Style
	Logo         lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Panel        lipgloss.Style
	ErrorPanel   lipgloss.Style
	Input        lipgloss.Style
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

// modeIndicator is the header label for the active mode.
func modeIndicator(dark bool) string {
	if dark {
		return "☾ dark"
	}
	return "☀ light"
}

func lightTheme() Theme {
	return Theme{
		Background: "#f7f8fa",
		Surface:    "#e4e9f2",

		SelectionBg:   "#d5e0f7",
		SelectionText: "#0b1a33",

		Border:      "#b8c2d3",
		BorderFocus: "#0b3d91", // NASA blue

		Text:    "#1d2330",
		Muted:   "#4f596b",
		Faint:   "#7d8698",
		Accent:  "#0b3d91",
		Success: "#2e7d32",
		Danger:  "#d62f1a", // NASA red, darkened for contrast
	}
}

func darkTheme() Theme {
	return Theme{
		Background: "#0b1020",
		Surface:    "#151c33",

		SelectionBg:   "#24325c",
		SelectionText: "#f1f4fb",

		Border:      "#34405f",
		BorderFocus: "#6ea8fe",

		Text:    "#e6e9f0",
		Muted:   "#a2abbe",
		Faint:   "#6d7690",
		Accent:  "#6ea8fe",
		Success: "#7cd992",
		Danger:  "#ff6b5a",
	}
}
