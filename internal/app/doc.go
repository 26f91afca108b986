// Package app is the composition root for nasaimager.
//
// # Overview
//
// Open turns configuration into the long-lived dependencies every entry
// point needs:
//
//  1. Load ~/.config/nasaimager/config.toml (defaults when missing)
//  2. Apply command-line overrides (--dark, --log-level)
//  3. Open the file logger
//  4. Build the response cache: memory tier, then the optional SQLite tier
//  5. Build the rate-limited NASA API client on top of the cache
//
// Run additionally starts the cache janitor and hands the client to the
// Bubble Tea UI, blocking until the user quits or the context is cancelled.
// The one-shot CLI commands use Open directly.
//
// # Janitor
//
// When the disk tier is enabled, StartJanitor purges expired rows every ten
// minutes. Consecutive failures double the interval up to an hour so a
// locked or read-only database does not flood the log.
//
// # Shutdown
//
// Env.Close releases resources in reverse order of acquisition: the cache
// database first, then the log file.
package app
