package templates

import (
	"fmt"
	"os"
	"path/filepath"
)

// keptEntries survive EmptyDir and do not make a directory count as used.
var keptEntries = map[string]bool{".git": true}

// IsEmptyDir reports whether dir is missing, empty, or only holds a .git entry.
func IsEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		if !keptEntries[e.Name()] {
			return false, nil
		}
	}
	return true, nil
}

// EmptyDir removes everything in dir except a .git entry.
func EmptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		if keptEntries[e.Name()] {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("removing %s: %w", e.Name(), err)
		}
	}
	return nil
}
