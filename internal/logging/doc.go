// Package logging opens the file-backed charmbracelet logger used by the
// TUI and the CLI. The TUI owns the terminal, so nothing is written to
// stdout or stderr while it runs.
package logging
