package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"panelinput/internal/config"
)

// Normalize trims and deduplicates choices. Unlike a sorted set, the first
// occurrence of each entry keeps its position: static filtering shows
// matches in list order.
func Normalize(in []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// LoadFile reads a JSON string array from path.
// Missing file yields an empty list without error. Output is normalized.
func LoadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return Normalize(arr), nil
}

// SaveFile writes a JSON string array to path, creating parent dirs.
func SaveFile(path string, list []string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(Normalize(list), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Load returns the user's choices from choices.json in the config directory.
func Load() ([]string, error) {
	p, err := config.ChoicesPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(p)
}

// Save replaces choices.json.
func Save(list []string) error {
	p, err := config.ChoicesPath()
	if err != nil {
		return err
	}
	return SaveFile(p, list)
}

// Add appends new choices and reports which were added and which already existed.
func Add(toAdd []string) (added, existed []string, err error) {
	cur, err := Load()
	if err != nil {
		return nil, nil, err
	}
	set := map[string]bool{}
	for _, s := range cur {
		set[s] = true
	}
	for _, s := range toAdd {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if set[s] {
			existed = append(existed, s)
			continue
		}
		set[s] = true
		added = append(added, s)
		cur = append(cur, s)
	}
	if len(added) > 0 {
		if err := Save(cur); err != nil {
			return nil, nil, err
		}
	}
	return added, existed, nil
}

// Remove drops choices and reports which were removed and which were missing.
func Remove(toRemove []string) (removed, missing []string, err error) {
	cur, err := Load()
	if err != nil {
		return nil, nil, err
	}
	drop := map[string]bool{}
	present := map[string]bool{}
	for _, s := range cur {
		present[s] = true
	}
	for _, s := range toRemove {
		s = strings.TrimSpace(s)
		if s == "" || drop[s] {
			continue
		}
		if present[s] {
			drop[s] = true
			removed = append(removed, s)
		} else {
			missing = append(missing, s)
		}
	}
	if len(removed) == 0 {
		return removed, missing, nil
	}
	next := make([]string, 0, len(cur))
	for _, s := range cur {
		if !drop[s] {
			next = append(next, s)
		}
	}
	if err := Save(next); err != nil {
		return nil, nil, err
	}
	return removed, missing, nil
}
