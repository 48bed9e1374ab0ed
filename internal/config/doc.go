// Package config handles loading and parsing kite's configuration file.
//
// # Overview
//
// This package reads a small TOML file to discover the Orbit catalog endpoint
// and the event log location. Everything is optional; kite works out of the
// box without a config file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/kite/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/kite/config.toml
//   - Endpoint: http://127.0.0.1:4848
//   - Event log: ~/.local/share/kite/kite.log
//
// # TOML Format
//
// Example config.toml:
//
//	endpoint = "http://templates.example.net:4848"
//	log_file = "~/.local/share/kite/kite.log"
//
// Both fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. Missing
// config files are NOT an error — defaults are used instead.
package config
