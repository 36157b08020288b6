// Package paths provides centralized path handling for wheresmy.
//
// It follows the XDG Base Directory specification:
//
//   - Data: $XDG_DATA_HOME/wheresmy (the device storage file)
//   - Config: $XDG_CONFIG_HOME/wheresmy (config.toml)
//   - State: $XDG_STATE_HOME/wheresmy (wheresmy.log)
//
// # Environment Variables
//
//   - WHERESMY_DATA_DIR: override the data directory
//   - WHERESMY_CONFIG_DIR: override the config directory
//   - XDG_STATE_HOME: base for the state directory (default ~/.local/state)
package paths
