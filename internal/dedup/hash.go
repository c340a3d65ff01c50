package dedup

import (
	"crypto/md5"  //nolint:gosec // content identity, not security
	"crypto/sha1" //nolint:gosec // content identity, not security
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// blockSize is the read granularity for streaming hashing. Memory use per
// file is bounded by this regardless of file size.
const blockSize = 1 << 20

// Algorithm selects the digest function used for content identity.
type Algorithm string

// Supported digest algorithms.
const (
	SHA1   Algorithm = "sha1"
	MD5    Algorithm = "md5"
	BLAKE3 Algorithm = "blake3"
)

// ParseAlgorithm validates a user-supplied algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case SHA1, MD5, BLAKE3:
		return Algorithm(name), nil
	case "":
		return SHA1, nil
	default:
		return "", fmt.Errorf("unknown digest algorithm %q: must be one of sha1, md5, blake3", name)
	}
}

// New returns a fresh digest state for the algorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case MD5:
		return md5.New() //nolint:gosec // content identity, not security
	case BLAKE3:
		return blake3.New()
	default:
		return sha1.New() //nolint:gosec // content identity, not security
	}
}

// Hasher computes hex-encoded content digests of files, streaming them in
// fixed-size blocks. It is not safe for concurrent use: the read buffer is
// reused across calls.
type Hasher struct {
	algo Algorithm
	buf  []byte
}

// NewHasher creates a Hasher using the given algorithm.
func NewHasher(algo Algorithm) *Hasher {
	return &Hasher{
		algo: algo,
		buf:  make([]byte, blockSize),
	}
}

// Sum reads the file at path block by block and returns the hex-encoded
// digest of its full content. Open and read failures propagate to the caller.
func (h *Hasher) Sum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	digest := h.algo.New()
	if _, err := io.CopyBuffer(digest, f, h.buf); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
