package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	appName     = "panelinput"
	configFile  = "config.yaml"
	choicesFile = "choices.json"
)

// Dir returns the panelinput config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/panelinput; on macOS
// to ~/Library/Application Support/panelinput; and on Windows to %AppData%/panelinput.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, appName), nil
}

// Path returns the location of config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// ChoicesPath returns the location of the user-managed choices list.
func ChoicesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, choicesFile), nil
}
