// Package state holds the session-wide UI state of nasaimager.
//
// # Overview
//
// Session carries the three values every view may read:
//
//   - Dark: whether the dark theme is active
//   - Query: the current search text
//   - AssetID: the selected asset, "" when none
//
// # Ownership
//
// The Shell (ui.Model) owns the only Session and is its only mutator. Views
// receive the values they need as arguments; there is no package-level
// instance. Because Bubble Tea runs Update on a single goroutine, Session needs
// no locking.
//
// # Lifecycle
//
// A Session is created at startup with an empty query, no asset and the
// configured initial theme, and disappears when the program exits. Toggling the
// theme is not written back anywhere.
//
// # Update Semantics
//
// SetQuery and SetAssetID report whether the value actually changed so the
// Shell can decide whether a view has to reload:
//
//	if session.SetQuery(input.Value()) && session.Query() != "" {
//		cmd = search.Load(ctx, session.Query())
//	}
//
// Inputs are not validated; any string is a valid query or asset id.
package state
