package internal

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// DefaultStateDir returns ~/.local/state/banglahindi, where the feedback
// database, corpus archive and refinement cache live by default.
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".banglahindi")
	}
	return filepath.Join(home, ".local", "state", "banglahindi")
}

// EnsureDir creates dir and its parents if they do not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}
	return nil
}
