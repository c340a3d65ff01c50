package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dedup/internal/dedup"
)

func sampleDecision() dedup.Decision {
	return dedup.Decision{
		Kept: dedup.FileCandidate{
			Path:         "/data/a.txt",
			LastModified: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			Size:         2048,
		},
		Discarded: dedup.FileCandidate{
			Path:         "/data/b.txt",
			LastModified: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
			Size:         2048,
		},
	}
}

func TestDecisionLine(t *testing.T) {
	line := DecisionLine(sampleDecision(), false)
	assert.Contains(t, line, "duplicate:")
	assert.Contains(t, line, "/data/b.txt")
	assert.Contains(t, line, "2.0 KiB")
	assert.Contains(t, line, "kept /data/a.txt")

	line = DecisionLine(sampleDecision(), true)
	assert.Contains(t, line, "removing:")
}

func TestEmptyDirLine(t *testing.T) {
	assert.Equal(t, "empty dir: /data/empty", EmptyDirLine("/data/empty", false))
	assert.Equal(t, "removing dir: /data/empty", EmptyDirLine("/data/empty", true))
}

func TestPrintSummary(t *testing.T) {
	result := &dedup.Result{
		Root:        "/data",
		FilesHashed: 10,
		Duplicates: []dedup.Duplicate{
			{Kept: "/data/a.txt", Discarded: "/data/b.txt", Size: 2048},
		},
		FreedBytes: 2048,
		EmptyDirs:  []string{"/data/empty"},
		Elapsed:    123 * time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(result, &buf))

	out := buf.String()
	assert.Contains(t, out, "Files hashed:")
	assert.Contains(t, out, "Duplicates found:")
	assert.Contains(t, out, "2.0 KiB (2048 bytes)")
	assert.Contains(t, out, "Empty directories found:")
}

func TestPrintSummaryExecuted(t *testing.T) {
	result := &dedup.Result{Executed: true}

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(result, &buf))

	out := buf.String()
	assert.Contains(t, out, "Duplicates removed:")
	assert.Contains(t, out, "Space freed:")
	assert.Contains(t, out, "Empty directories removed:")
}

func TestWriteReport(t *testing.T) {
	result := &dedup.Result{
		Root:      "/data",
		ScannedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Policy:    dedup.KeepOldest,
		Algorithm: dedup.SHA1,
		Duplicates: []dedup.Duplicate{
			{Kept: "/data/a.txt", Discarded: "/data/b.txt", Size: 2048, Removed: true},
		},
		FreedBytes: 2048,
	}

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteReport(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded dedup.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result.Root, decoded.Root)
	assert.Equal(t, result.Duplicates, decoded.Duplicates)
	assert.Equal(t, result.FreedBytes, decoded.FreedBytes)
}
