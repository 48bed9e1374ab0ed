// Package app provides the orchestration layer for kite.
//
// # Overview
//
// This package wires together configuration, the catalog client, the event
// log sink, and the UI. It is the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load kite configuration from ~/.config/kite/config.toml
//  2. Apply command-line overrides (endpoint)
//  3. Initialize the HTTP client for the Orbit catalog
//  4. Open the event trace log
//  5. Start the TUI and block until the user exits or the context cancels
//
// Startup failures (unreadable config, unparseable endpoint, unwritable log
// path) are the only fatal error path; once the UI is running, search
// failures are values handled inside the event loop and never crash the
// process.
package app
