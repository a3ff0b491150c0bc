// Package config handles configuration management for pageprint.
// It layers embedded defaults, a TOML file, PAGEPRINT_ environment
// variables and command-line flags, in that order.
package config
