package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	ToggleTheme key.Binding
	Reload      key.Binding
	Help        key.Binding

	// Search screen
	Clear  key.Binding
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding

	// Detail screen
	Back       key.Binding
	Copy       key.Binding
	QuitDetail key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),

		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "row down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next image"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous image"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open image"),
		),

		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy url"),
		),
		QuitDetail: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// screenKeys narrows the key map to the bindings of the visible screen.
type screenKeys struct {
	keys   keyMap
	detail bool
}

// ShortHelp returns key bindings for the short help view.
func (s screenKeys) ShortHelp() []key.Binding {
	k := s.keys
	if s.detail {
		return []key.Binding{k.Back, k.Copy, k.ToggleTheme, k.Help, k.QuitDetail}
	}
	return []key.Binding{k.Select, k.Next, k.Clear, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (s screenKeys) FullHelp() [][]key.Binding {
	k := s.keys
	if s.detail {
		return [][]key.Binding{
			{k.Back, k.Copy},
			{k.Reload, k.ToggleTheme},
			{k.Help, k.QuitDetail, k.Quit},
		}
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Select, k.Clear, k.Reload},
		{k.ToggleTheme, k.Help, k.Quit},
	}
}
