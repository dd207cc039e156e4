// Package cache memoizes perft leaf-node counts in a BadgerDB-backed store,
// the one place in this module that touches a database — explicitly kept
// off the position/move-generation core path.
package cache

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chesscore"

// DefaultDir returns the platform-specific directory for the perft
// node-count cache, creating it if necessary.
// - macOS: ~/Library/Application Support/chesscore/perft-cache/
// - Linux: ~/.local/share/chesscore/perft-cache/
// - Windows: %APPDATA%/chesscore/perft-cache/
func DefaultDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName, "perft-cache")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
