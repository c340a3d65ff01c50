package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/idelchi/dedup/internal/dedup"
)

func logic(opts dedup.Options, reportPath string, noProgress bool) error {
	enableProgress := !noProgress && isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	fmt.Fprintf(os.Stdout, "Searching for duplicates in: %s\n", opts.Path)

	var bar *progressbar.ProgressBar

	hooks := dedup.Hooks{
		HashStart: func(total int) {
			if !enableProgress {
				return
			}

			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("hashing"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(15),
				progressbar.OptionClearOnFinish(),
			)
		},
		FileHashed: func() {
			if bar != nil {
				_ = bar.Add(1)
			}
		},
		Decision: func(d dedup.Decision) {
			fmt.Fprintln(os.Stdout, DecisionLine(d, opts.Execute))
		},
		EmptyDir: func(path string) {
			fmt.Fprintln(os.Stdout, EmptyDirLine(path, opts.Execute))
		},
	}

	result, err := dedup.Run(ctx, opts, hooks)

	if bar != nil {
		_ = bar.Finish()
	}

	if err != nil {
		return err
	}

	if err := PrintSummary(result, os.Stdout); err != nil {
		return err
	}

	if reportPath != "" {
		if err := WriteReport(reportPath, result); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		fmt.Fprintf(os.Stdout, "Report saved to: %s\n", reportPath)
	}

	return nil
}
