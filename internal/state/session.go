package state

// Session is the UI state shared by every view for the lifetime of one run.
// The Shell owns the only Session and hands read access down to the views; all
// changes go through SetQuery, SetAssetID and ToggleTheme. Nothing is persisted.
type Session struct {
	dark    bool
	query   string
	assetID string
}

// NewSession returns a Session with an empty query, no selected asset and the
// given initial theme mode.
func NewSession(dark bool) Session {
	return Session{dark: dark}
}

// Dark reports whether the dark theme is active.
func (s Session) Dark() bool { return s.dark }

// Query returns the current search text.
func (s Session) Query() string { return s.query }

// AssetID returns the selected asset id, or "" when none is selected.
func (s Session) AssetID() string { return s.assetID }

// HasAsset reports whether an asset is selected.
func (s Session) HasAsset() bool { return s.assetID != "" }

// SetQuery replaces the search text and reports whether it changed.
func (s *Session) SetQuery(q string) bool {
	if s.query == q {
		return false
	}
	s.query = q
	return true
}

// SetAssetID selects an asset; "" clears the selection. It reports whether the
// selection changed.
func (s *Session) SetAssetID(id string) bool {
	if s.assetID == id {
		return false
	}
	s.assetID = id
	return true
}

// ToggleTheme flips between dark and light mode.
func (s *Session) ToggleTheme() {
	s.dark = !s.dark
}
