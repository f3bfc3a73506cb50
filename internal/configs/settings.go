package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	// UserConfigPath is the directory holding config.toml.
	UserConfigPath string

	// UserDataPath is the directory holding the audit log.
	UserDataPath string
}

var UserPounamuSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	// These paths are independent of the working directory, so it is ok to
	// resolve them here.
	UserPounamuSettings = &UserSettings{
		UserConfigPath: filepath.Join(configDir, "pounamu"),
		UserDataPath:   filepath.Join(dataDir, "pounamu"),
	}
}

// ConfigFilePath returns the path of the user's config.toml.
func ConfigFilePath() string {
	return filepath.Join(UserPounamuSettings.UserConfigPath, "config.toml")
}
