// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "castletype", "config.toml")
}

// DefaultWordsPath returns the user word list picked up when no list is
// configured.
func DefaultWordsPath() string {
	return filepath.Join(XDGConfigHome(), "castletype", "words.txt")
}

// ResolveWordsPath returns path, or the user word list when path is empty and
// that file exists. An empty result selects the built-in list.
func ResolveWordsPath(path string) string {
	if path != "" {
		return path
	}
	if _, err := os.Stat(DefaultWordsPath()); err == nil {
		return DefaultWordsPath()
	}
	return ""
}
