package configs

import (
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/pounamu/internal/errors"
	"github.com/PolarWolf314/pounamu/internal/pipeline"
)

// Config is the persisted user configuration.
type Config struct {
	Seal SealConfig `toml:"seal"`
}

// SealConfig holds defaults for the seal command.
type SealConfig struct {
	// Cipher is the default cipher suite: "aes-gcm" or "chacha20".
	Cipher string `toml:"cipher"`

	// Copy sends sealed blobs to the clipboard by default.
	Copy bool `toml:"copy"`
}

// DefaultConfig returns the configuration used before the user customizes
// anything.
func DefaultConfig() *Config {
	return &Config{
		Seal: SealConfig{
			Cipher: pipeline.CipherAESGCM,
			Copy:   false,
		},
	}
}

// LoadUserConfig reads the user's config.toml. A missing file yields the
// defaults; a malformed file or unknown cipher yields ErrInvalidConfig.
func LoadUserConfig() (*Config, error) {
	path := ConfigFilePath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidConfig, err)
	}

	if _, err := pipeline.ProviderFor(config.Seal.Cipher); err != nil {
		return nil, fmt.Errorf("%w: cipher %q", kerrors.ErrInvalidConfig, config.Seal.Cipher)
	}

	return config, nil
}

// SaveUserConfig writes the configuration to the user's config.toml,
// creating the directory if needed.
func SaveUserConfig(config *Config) error {
	if _, err := pipeline.ProviderFor(config.Seal.Cipher); err != nil {
		return fmt.Errorf("%w: cipher %q", kerrors.ErrInvalidConfig, config.Seal.Cipher)
	}
	return SaveTOML(ConfigFilePath(), config)
}

// EnsureUserConfig loads the configuration, writing the defaults to disk on
// first use so the user has a file to edit.
func EnsureUserConfig() (*Config, error) {
	path := ConfigFilePath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := SaveUserConfig(config); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
		return config, nil
	}

	return LoadUserConfig()
}
