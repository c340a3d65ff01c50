package dedup

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Walker enumerates candidate files and empty directories under a root,
// honoring the extension whitelist and path blacklist.
//
// Enumeration uses fastwalk's parallel traversal; results are sorted before
// being returned so that the resolution order is a total order independent
// of traversal scheduling.
type Walker struct {
	// Root is the directory to walk.
	Root string
	// Names filters candidate filenames.
	Names ExtensionFilter
	// Skip prunes whole directory subtrees.
	Skip BlacklistFilter
	// MinSize skips files smaller than this many bytes (0 = no minimum).
	MinSize int64
}

// Files returns every regular file under the root that passes the filters,
// in lexical path order.
func (w *Walker) Files() ([]string, error) {
	var (
		mu    sync.Mutex
		files []string
	)

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	err := fastwalk.Walk(conf, w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}

		if d.IsDir() {
			if w.Skip.Matches(path) {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if !w.Names.Matches(d.Name()) {
			return nil
		}

		if w.MinSize > 0 {
			info, err := d.Info()
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			if info.Size() < w.MinSize {
				return nil
			}
		}

		mu.Lock()
		files = append(files, path)
		mu.Unlock()

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	return files, nil
}

// EmptyDirs returns every directory under the root (excluding the root
// itself) that contains zero entries at enumeration time, deepest first.
// The blacklist prunes subtrees the same way it does for Files.
func (w *Walker) EmptyDirs() ([]string, error) {
	var (
		mu   sync.Mutex
		dirs []string
	)

	conf := &fastwalk.Config{
		Follow: false,
	}

	err := fastwalk.Walk(conf, w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}

		if !d.IsDir() {
			return nil
		}

		if w.Skip.Matches(path) {
			return filepath.SkipDir
		}

		if path == w.Root {
			return nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return fmt.Errorf("readdir %s: %w", path, err)
		}

		if len(entries) == 0 {
			mu.Lock()
			dirs = append(dirs, path)
			mu.Unlock()
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reverse lexical order places children before their parents, so removal
	// proceeds bottom-up.
	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))

	return dirs, nil
}
