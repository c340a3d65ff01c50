package dedup

import (
	"path/filepath"
	"strings"
)

// Matcher reports whether a string matches a filter rule.
type Matcher interface {
	Matches(s string) bool
}

// ExtensionFilter matches filenames whose extension is in a whitelist.
// Extensions are compared lower-cased and include the leading dot.
type ExtensionFilter struct {
	exts map[string]struct{}
}

// NewExtensionFilter builds a filter from a list of extensions. Entries are
// lower-cased and a leading dot is added if missing, so "JPG" and ".jpg" are
// equivalent. An empty list matches every filename.
func NewExtensionFilter(extensions []string) ExtensionFilter {
	exts := make(map[string]struct{}, len(extensions))

	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		exts[ext] = struct{}{}
	}

	return ExtensionFilter{exts: exts}
}

// Matches reports whether name passes the whitelist. With a non-empty
// whitelist, a filename without an extension never matches.
func (f ExtensionFilter) Matches(name string) bool {
	if len(f.exts) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || len(ext) == len(name) {
		// No extension, or a bare dotfile like ".bashrc".
		return false
	}

	_, ok := f.exts[ext]

	return ok
}

// BlacklistFilter matches paths containing any of a set of substrings.
// Matching is plain substring containment, not path-segment aware.
type BlacklistFilter struct {
	substrings []string
}

// NewBlacklistFilter builds a filter from a list of path substrings.
// An empty list matches nothing.
func NewBlacklistFilter(substrings []string) BlacklistFilter {
	subs := make([]string, 0, len(substrings))

	for _, sub := range substrings {
		if sub = strings.TrimSpace(sub); sub != "" {
			subs = append(subs, sub)
		}
	}

	return BlacklistFilter{substrings: subs}
}

// Matches reports whether any blacklisted substring occurs in path.
func (f BlacklistFilter) Matches(path string) bool {
	for _, sub := range f.substrings {
		if strings.Contains(path, sub) {
			return true
		}
	}

	return false
}
