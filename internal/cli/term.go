package cli

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Titles: bold so result lists scan quickly
	colorTitle = color.New(color.Bold)

	// Asset ids and URLs
	colorAccent = color.New(color.FgCyan)

	// Secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Confirmations
	colorOK = color.New(color.FgGreen)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatTitle(s string) string  { return colorTitle.Sprint(s) }
func formatAccent(s string) string { return colorAccent.Sprint(s) }
func formatMuted(s string) string  { return colorMuted.Sprint(s) }
func formatOK(s string) string     { return colorOK.Sprint(s) }
