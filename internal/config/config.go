// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultStoragePath is where the persisted snapshot lives unless
// overridden by storage.path.
const DefaultStoragePath = "$HOME/.local/share/mavit/mavit-cash.json"

// Config carries the resolved runtime configuration.
type Config struct {
	StoragePath string
	LogLevel    string
	LogFormat   string
}

// FromViper resolves the configuration from the already-initialized
// viper instance, applying defaults and path expansion.
func FromViper() Config {
	storagePath := viper.GetString("storage.path")
	if storagePath == "" {
		storagePath = DefaultStoragePath
	}

	return Config{
		StoragePath: ExpandPath(storagePath),
		LogLevel:    viper.GetString("logging.level"),
		LogFormat:   viper.GetString("logging.format"),
	}
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
