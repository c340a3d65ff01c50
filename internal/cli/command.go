// Package cli implements the dedup command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/dedup/internal/config"
	"github.com/idelchi/dedup/internal/dedup"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute parses flags and runs the scan.
func (c CLI) Execute() error {
	var (
		extensions  []string
		blacklist   []string
		keep        string
		execute     bool
		empty       bool
		minSizeStr  string
		algoStr     string
		reportPath  string
		noProgress  bool
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:   "dedup [flags] [path]",
		Short: "Find and remove duplicate files and empty directories",
		Long: heredoc.Doc(`
			dedup scans a directory tree, finds files with identical content by
			hashing them, and resolves each duplicate set down to one retained
			copy. By default it only reports; pass --delete to remove files.

			The survivor of a duplicate set is chosen by the retention policy:
			--keep oldest (default) keeps the least recently modified copy,
			--keep newest the most recent one. With --empty, directories left
			empty are removed as well, pruning parents that become empty.

			Examples:
			  # Report duplicated images and empty directories
			  dedup --ext jpg,png --empty ~/Pictures

			  # Remove them, keeping the newest copy of each
			  dedup --ext jpg,png --empty --delete --keep newest ~/Pictures
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(os.Stdout, c.version)

				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config file: %w", err)
			}

			applyConfigDefaults(cmd, cfg.Defaults, &algoStr, &keep, &minSizeStr)

			policy, err := dedup.ParsePolicy(keep)
			if err != nil {
				return err
			}

			algo, err := dedup.ParseAlgorithm(algoStr)
			if err != nil {
				return err
			}

			var minSize int64

			if minSizeStr != "" {
				size, err := humanize.ParseBytes(minSizeStr)
				if err != nil {
					return fmt.Errorf("invalid min-size: %w", err)
				}

				minSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
			}

			opts := dedup.Options{
				Path:       ".",
				Extensions: extensions,
				Blacklist:  blacklist,
				Policy:     policy,
				Execute:    execute,
				Empty:      empty,
				MinSize:    minSize,
				Algorithm:  algo,
			}

			if len(args) == 1 {
				opts.Path = args[0]
			}

			return logic(opts, reportPath, noProgress)
		},
	}

	cmd.Flags().StringSliceVarP(&extensions, "ext", "f", nil,
		"file extensions to include (e.g. jpg,png); empty means all files")
	cmd.Flags().StringSliceVarP(&blacklist, "blacklist", "b", nil,
		"path substrings whose directories are skipped entirely")
	cmd.Flags().StringVar(&keep, "keep", "oldest",
		"retention policy: oldest or newest")
	cmd.Flags().BoolVar(&execute, "delete", false,
		"delete duplicates and empty directories (default: report only)")
	cmd.Flags().BoolVarP(&empty, "empty", "e", false,
		"also reclaim directories left empty")
	cmd.Flags().StringVar(&minSizeStr, "min-size", "",
		"skip files smaller than SIZE (e.g. 10KB)")
	cmd.Flags().StringVar(&algoStr, "algo", "sha1",
		"digest algorithm: sha1, md5 or blake3")
	cmd.Flags().StringVar(&reportPath, "report", "",
		"write a JSON report of the scan to FILE")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"disable the progress bar")
	cmd.Flags().BoolVarP(&showVersion, "version", "v", false,
		"print version and exit")

	cmd.Flags().SortFlags = false

	return cmd.Execute()
}

// applyConfigDefaults applies config file defaults for flags not explicitly
// set on the command line.
func applyConfigDefaults(cmd *cobra.Command, defaults config.DefaultsConfig, algo, keep, minSize *string) {
	if !cmd.Flags().Changed("algo") && defaults.Algo != nil {
		*algo = *defaults.Algo
	}

	if !cmd.Flags().Changed("keep") && defaults.Keep != nil {
		*keep = *defaults.Keep
	}

	if !cmd.Flags().Changed("min-size") && defaults.MinSize != nil {
		*minSize = *defaults.MinSize
	}
}
