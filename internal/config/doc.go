// Package config loads nasaimager's TOML configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (Default)
//  2. The TOML file at the given path, or ~/.config/nasaimager/config.toml
//  3. NASAIMAGER_* environment variables
//
// A missing file is not an error; nasaimager runs with defaults out of the box.
//
// # TOML Format
//
//	[api]
//	base_url = "https://images-api.nasa.gov"
//	timeout = "10s"
//	requests_per_second = 4.0
//
//	[cache]
//	path = ""          # SQLite file; empty disables the disk cache
//	ttl = "24h"
//	memory = true
//
//	[log]
//	path = "~/.local/share/nasaimager/nasaimager.log"
//	level = "info"
//
//	[ui]
//	dark = false
//
// Tilde expansion is applied to cache.path and log.path.
//
// # Environment Overrides
//
//   - NASAIMAGER_API_BASE_URL, NASAIMAGER_API_TIMEOUT
//   - NASAIMAGER_CACHE_PATH, NASAIMAGER_CACHE_TTL
//   - NASAIMAGER_LOG_PATH, NASAIMAGER_LOG_LEVEL
//   - NASAIMAGER_UI_DARK (any strconv.ParseBool value)
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, unparsable
// durations, non-positive durations and unknown log levels.
package config
