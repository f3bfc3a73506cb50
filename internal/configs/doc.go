// Package configs manages user configuration for Pounamu.
//
// Configuration lives in a single TOML file under the user config
// directory (config.toml in os.UserConfigDir()/pounamu). The audit log
// lives under the user data directory (XDG_DATA_HOME or ~/.local/share).
//
// # Configuration File
//
//	[seal]
//	cipher = "aes-gcm"   # or "chacha20"
//	copy = false         # copy sealed blobs to the clipboard by default
//
// A missing file means defaults; EnsureUserConfig writes the defaults to
// disk on first use so the user has something to edit. A malformed file or
// an unknown cipher name fails with ErrInvalidConfig rather than silently
// falling back.
package configs
