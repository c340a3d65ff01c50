package dedup

import (
	"fmt"
	"os"
)

// Policy selects which copy of a duplicate pair survives.
type Policy string

// Retention policies.
const (
	// KeepOldest retains the file with the smallest modification time.
	KeepOldest Policy = "oldest"
	// KeepNewest retains the file with the largest modification time.
	KeepNewest Policy = "newest"
)

// ParsePolicy validates a user-supplied policy name.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case KeepOldest, KeepNewest:
		return Policy(name), nil
	case "":
		return KeepOldest, nil
	default:
		return "", fmt.Errorf("unknown retention policy %q: must be oldest or newest", name)
	}
}

// Decision records the outcome of resolving one duplicate pair.
type Decision struct {
	// Kept is the candidate retained for the digest.
	Kept FileCandidate
	// Discarded is the candidate that lost the tie-break.
	Discarded FileCandidate
	// Removed reports whether Discarded was deleted from the filesystem.
	Removed bool
}

// Resolver consumes candidate file paths one at a time, hashing each and
// retaining exactly one file per distinct digest. It is single-use: the
// retention map lives for one resolution pass.
type Resolver struct {
	hasher  *Hasher
	policy  Policy
	execute bool

	retained map[string]FileCandidate
	hashed   int
	freed    int64
	decided  []Decision
}

// NewResolver creates a Resolver. With execute false (dry-run), discarded
// files are reported but never touched.
func NewResolver(hasher *Hasher, policy Policy, execute bool) *Resolver {
	return &Resolver{
		hasher:   hasher,
		policy:   policy,
		execute:  execute,
		retained: make(map[string]FileCandidate),
	}
}

// Add hashes the file at path and resolves it against the retention map.
// The returned Decision is nil when the file's content has not been seen
// before. Read errors and deletion errors propagate and abort the pass.
func (r *Resolver) Add(path string) (*Decision, error) {
	digest, err := r.hasher.Sum(path)
	if err != nil {
		return nil, err
	}

	r.hashed++

	cand, err := newCandidate(path)
	if err != nil {
		return nil, err
	}

	prev, seen := r.retained[digest]
	if !seen {
		r.retained[digest] = cand

		return nil, nil
	}

	// Ties favor the previously kept file.
	discardIncoming := false

	switch r.policy {
	case KeepNewest:
		discardIncoming = !prev.LastModified.Before(cand.LastModified)
	default: // KeepOldest
		discardIncoming = !prev.LastModified.After(cand.LastModified)
	}

	decision := Decision{Kept: cand, Discarded: prev}
	if discardIncoming {
		decision = Decision{Kept: prev, Discarded: cand}
	} else {
		r.retained[digest] = cand
	}

	if r.execute {
		if err := os.Remove(decision.Discarded.Path); err != nil {
			return nil, fmt.Errorf("remove %s: %w", decision.Discarded.Path, err)
		}

		decision.Removed = true
	}

	r.freed += decision.Discarded.Size
	r.decided = append(r.decided, decision)

	return &decision, nil
}

// Hashed returns the number of files hashed so far.
func (r *Resolver) Hashed() int {
	return r.hashed
}

// Decisions returns every duplicate decision made so far, in input order.
func (r *Resolver) Decisions() []Decision {
	return r.decided
}

// FreedBytes returns the cumulative size of all discarded files.
func (r *Resolver) FreedBytes() int64 {
	return r.freed
}
