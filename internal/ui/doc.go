// Package ui provides the Bubble Tea interface for nasaimager.
//
// # Architecture Overview
//
// Model is the root tea.Model. It owns a state.Session (theme, query and
// selected asset) and two views:
//
//   - SearchView: result grid for the current query
//   - DetailView: full-resolution URL and metadata for one asset
//
// Only the Model mutates the session. When a keystroke changes the query
// or the selected asset, the Model asks the matching view to Load, which
// returns a tea.Cmd that performs the fetch off the update loop.
//
// # Request Lifecycle
//
// Each view keeps a loader.Tracker. Load cancels the previous request's
// context, begins a new generation and tags the fetch with its token.
// Results come back as messages; Resolve applies them only when the token
// is still current, so a slow earlier fetch can never overwrite a newer
// one.
//
// # Screens
//
// With no asset selected the Model renders the heading bar, the search bar
// and, for a non-empty query, the SearchView. With an asset selected it
// renders only the DetailView. The heading bar always shows the theme
// indicator.
//
// # Key Bindings
//
// Global:
//
//	ctrl+t   toggle light/dark theme
//	ctrl+r   reload the visible view
//	f1       toggle full help
//	ctrl+c   quit
//
// Search screen: typing edits the query, esc clears it, up/down move by a
// grid row, tab/shift+tab by one card, enter opens the selected image.
//
// Detail screen: esc or backspace goes back, y copies the URL, q quits.
package ui
