// Package config loads wheresmy configuration.
//
// Layers are merged in order, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/wheresmy/config.toml
//  3. WHERESMY_* environment variables
//  4. explicit overrides, usually command-line flags
//
// The merged tree is decoded into Config and validated.
package config
