package dedup

import "time"

// Options configures a scan.
type Options struct {
	// Path is the root directory to scan.
	Path string
	// Extensions is the filename whitelist (empty = all files).
	Extensions []string
	// Blacklist contains path substrings whose directories are skipped.
	Blacklist []string
	// Policy decides which copy of a duplicate pair survives.
	Policy Policy
	// Execute enables filesystem mutation; false means dry-run.
	Execute bool
	// Empty enables empty-directory reclamation after the duplicate pass.
	Empty bool
	// MinSize skips files smaller than this many bytes.
	MinSize int64
	// Algorithm selects the content digest.
	Algorithm Algorithm
}

// Duplicate is the reportable form of one duplicate decision.
type Duplicate struct {
	// Kept is the path of the retained copy.
	Kept string `json:"kept"`
	// Discarded is the path of the copy that lost the tie-break.
	Discarded string `json:"discarded"`
	// Size is the discarded file's size in bytes.
	Size int64 `json:"size"`
	// LastModified is the discarded file's modification time.
	LastModified time.Time `json:"last_modified"`
	// Removed reports whether the discarded file was deleted.
	Removed bool `json:"removed"`
}

// Result holds the outcome of a scan.
type Result struct {
	// Root is the absolute scan root.
	Root string `json:"root"`
	// ScannedAt is when the scan started.
	ScannedAt time.Time `json:"scanned_at"`
	// Policy is the retention policy used.
	Policy Policy `json:"policy"`
	// Algorithm is the digest algorithm used.
	Algorithm Algorithm `json:"algorithm"`
	// Executed reports whether deletions were performed (false = dry-run).
	Executed bool `json:"executed"`
	// FilesHashed is the number of candidate files hashed.
	FilesHashed int `json:"files_hashed"`
	// Duplicates lists every duplicate decision in resolution order.
	Duplicates []Duplicate `json:"duplicates"`
	// FreedBytes is the cumulative size of all discarded files.
	FreedBytes int64 `json:"freed_bytes"`
	// EmptyDirs lists directories reclaimed (or reported), deepest first.
	EmptyDirs []string `json:"empty_dirs"`
	// Elapsed is the total scan duration.
	Elapsed time.Duration `json:"elapsed"`
}

// Hooks receive scan progress as it happens. Any hook may be nil.
type Hooks struct {
	// HashStart is called once with the candidate file count before hashing.
	HashStart func(total int)
	// FileHashed is called after each file is hashed.
	FileHashed func()
	// Decision is called for each duplicate decision.
	Decision func(Decision)
	// EmptyDir is called for each empty directory reclaimed or reported.
	EmptyDir func(path string)
}
