package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "wellquest"

// DataDir is where the database lives unless overridden.
func DataDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", appName)
	}
	return filepath.Join(home, ".local", "share", appName)
}

func ConfigDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", appName)
	}
	return filepath.Join(home, ".config", appName)
}

func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func DefaultDBPath() string {
	return filepath.Join(DataDir(), "wellquest.db")
}
