// Package config loads, validates, and normalizes dugout configuration.
//
// Configuration lives in a TOML file. Load falls back to built-in defaults
// when no file exists, so the CLI works out of the box against the public
// stats site.
package config
