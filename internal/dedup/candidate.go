package dedup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileCandidate identifies one file under duplicate consideration.
// It is immutable once constructed and owned by a single retention map entry.
type FileCandidate struct {
	// Path is the absolute path of the file.
	Path string
	// LastModified is the later of the content-change and metadata-change times.
	LastModified time.Time
	// Size is the file size in bytes.
	Size int64
}

// newCandidate stats path and builds a FileCandidate for it.
func newCandidate(path string) (FileCandidate, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileCandidate{}, fmt.Errorf("resolving absolute path for %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return FileCandidate{}, fmt.Errorf("stat %q: %w", abs, err)
	}

	modified := info.ModTime()
	if ctime := changeTime(info); ctime.After(modified) {
		modified = ctime
	}

	return FileCandidate{
		Path:         abs,
		LastModified: modified,
		Size:         info.Size(),
	}, nil
}

// String renders the candidate as size, path and modification time.
func (c FileCandidate) String() string {
	return fmt.Sprintf("%d\t%s\t%s", c.Size, c.Path, c.LastModified.Format(time.DateTime))
}
