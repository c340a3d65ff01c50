package dedup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Reclaimer removes (or reports) directories found empty. Removing a
// directory may leave its parent empty; the reclaimer prunes such parents
// upward, stopping at the scan root.
type Reclaimer struct {
	root    string
	execute bool
}

// NewReclaimer creates a Reclaimer bounded by root. With execute false,
// empty directories are reported but left in place.
func NewReclaimer(root string, execute bool) *Reclaimer {
	return &Reclaimer{root: filepath.Clean(root), execute: execute}
}

// Reclaim re-checks that dir is still empty and, in execute mode, removes
// it together with any ancestors its removal leaves empty. It returns the
// directories removed (or, in dry-run, reported), deepest first. A directory
// that is no longer empty, or already gone, yields an empty result.
func (r *Reclaimer) Reclaim(dir string) ([]string, error) {
	empty, err := isEmptyDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // removed by an earlier prune or an external actor
		}

		return nil, err
	}

	if !empty {
		return nil, nil
	}

	if !r.execute {
		return []string{dir}, nil
	}

	var removed []string

	for current := dir; current != r.root; current = filepath.Dir(current) {
		if current == "." || current == string(filepath.Separator) {
			break
		}

		if err := os.Remove(current); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				break
			}

			return removed, fmt.Errorf("remove dir %s: %w", current, err)
		}

		removed = append(removed, current)

		parent := filepath.Dir(current)
		if parent == current {
			break
		}

		empty, err := isEmptyDir(parent)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				break
			}

			return removed, fmt.Errorf("check dir %s: %w", parent, err)
		}

		if !empty {
			break
		}
	}

	return removed, nil
}

// isEmptyDir reports whether path is a directory with zero entries.
func isEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}

	return len(entries) == 0, nil
}
