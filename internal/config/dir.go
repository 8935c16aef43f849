// Package config resolves lifpdoc configuration: defaults, an optional YAML
// file, and build metadata from the environment.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the global lifpdoc configuration directory.
//
// Resolution:
//   - $LIFPDOC_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/lifpdoc if set (respects XDG on any platform)
//   - %AppData%/lifpdoc on Windows
//   - ~/.config/lifpdoc on macOS and Linux
func Dir() string {
	if dir := os.Getenv("LIFPDOC_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lifpdoc")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "lifpdoc")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lifpdoc")
}
