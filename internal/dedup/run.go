package dedup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Run performs a full scan: enumerate candidate files, resolve duplicates,
// and optionally reclaim empty directories. The scan is a single pass; each
// file is hashed exactly once, sequentially.
//
// The root must exist and be a directory; this is validated before any
// traversal. Read and delete errors abort the run.
func Run(ctx context.Context, opts Options, hooks Hooks) (*Result, error) {
	if opts.Path == "" {
		opts.Path = "."
	}

	if opts.Policy == "" {
		opts.Policy = KeepOldest
	}

	if opts.Algorithm == "" {
		opts.Algorithm = SHA1
	}

	root, err := filepath.Abs(filepath.Clean(opts.Path))
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", root)
	}

	start := time.Now()

	result := &Result{
		Root:      root,
		ScannedAt: start,
		Policy:    opts.Policy,
		Algorithm: opts.Algorithm,
		Executed:  opts.Execute,
	}

	walker := &Walker{
		Root:    root,
		Names:   NewExtensionFilter(opts.Extensions),
		Skip:    NewBlacklistFilter(opts.Blacklist),
		MinSize: opts.MinSize,
	}

	files, err := walker.Files()
	if err != nil {
		return nil, err
	}

	if hooks.HashStart != nil {
		hooks.HashStart(len(files))
	}

	resolver := NewResolver(NewHasher(opts.Algorithm), opts.Policy, opts.Execute)

	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		decision, err := resolver.Add(path)
		if err != nil {
			return nil, err
		}

		if hooks.FileHashed != nil {
			hooks.FileHashed()
		}

		if decision == nil {
			continue
		}

		if hooks.Decision != nil {
			hooks.Decision(*decision)
		}
	}

	result.FilesHashed = resolver.Hashed()
	result.FreedBytes = resolver.FreedBytes()

	for _, d := range resolver.Decisions() {
		result.Duplicates = append(result.Duplicates, Duplicate{
			Kept:         d.Kept.Path,
			Discarded:    d.Discarded.Path,
			Size:         d.Discarded.Size,
			LastModified: d.Discarded.LastModified,
			Removed:      d.Removed,
		})
	}

	if opts.Empty {
		if err := reclaimEmpty(ctx, walker, root, opts.Execute, hooks, result); err != nil {
			return nil, err
		}
	}

	result.Elapsed = time.Since(start)

	return result, nil
}

// reclaimEmpty runs the empty-directory pass: enumerate directories empty at
// walk time, deepest first, and hand each to the reclaimer.
func reclaimEmpty(ctx context.Context, walker *Walker, root string, execute bool, hooks Hooks, result *Result) error {
	dirs, err := walker.EmptyDirs()
	if err != nil {
		return err
	}

	reclaimer := NewReclaimer(root, execute)

	for _, dir := range dirs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		reclaimed, err := reclaimer.Reclaim(dir)
		if err != nil {
			return err
		}

		for _, path := range reclaimed {
			result.EmptyDirs = append(result.EmptyDirs, path)

			if hooks.EmptyDir != nil {
				hooks.EmptyDir(path)
			}
		}
	}

	return nil
}
