package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dedup/internal/dedup"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// DecisionLine renders a single duplicate decision for console output.
func DecisionLine(d dedup.Decision, execute bool) string {
	action := "duplicate:"
	if execute {
		action = "removing: "
	}

	return fmt.Sprintf("%s %s\t%s\t%s  (kept %s)",
		action,
		humanize.IBytes(uint64(d.Discarded.Size)), //nolint:gosec // Size is never negative
		d.Discarded.Path,
		d.Discarded.LastModified.Format(time.DateTime),
		d.Kept.Path,
	)
}

// EmptyDirLine renders a single empty-directory action for console output.
func EmptyDirLine(path string, execute bool) string {
	if execute {
		return fmt.Sprintf("removing dir: %s", path)
	}

	return fmt.Sprintf("empty dir: %s", path)
}

// PrintSummary outputs scan totals in human-readable form.
func PrintSummary(result *dedup.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	duplicates := "Duplicates found:"
	freed := "Space reclaimable:"
	emptyDirs := "Empty directories found:"

	if result.Executed {
		duplicates = "Duplicates removed:"
		freed = "Space freed:"
		emptyDirs = "Empty directories removed:"
	}

	fmt.Fprintln(w, "\nSummary:\t\t")
	fmt.Fprintf(w, "Files hashed:\t%d\n", result.FilesHashed)
	fmt.Fprintf(w, "%s\t%d\n", duplicates, len(result.Duplicates))
	fmt.Fprintf(w, "%s\t%s (%d bytes)\n",
		freed, humanize.IBytes(uint64(result.FreedBytes)), result.FreedBytes) //nolint:gosec // Size is never negative
	fmt.Fprintf(w, "%s\t%d\n", emptyDirs, len(result.EmptyDirs))
	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}

// WriteReport writes the full scan result to path as indented JSON.
func WriteReport(path string, result *dedup.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
