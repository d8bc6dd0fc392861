// Command logtail-fixtures generates synthetic log files for exercising
// logtaild at scale, optionally archiving the result with zstd the way
// a daily log rotation would.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dball/logtail/internal/fixtures"
)

func main() {
	var cfg fixtures.Config
	var archive bool
	var count int

	cmd := &cobra.Command{
		Use:   "logtail-fixtures <output-file>",
		Short: "Generate one or more synthetic log fixtures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath := args[0]
			paths := []string{outPath}
			if count > 1 {
				paths = numberedPaths(outPath, count)
			}

			written, err := fixtures.GenerateBatch(paths, cfg)
			if err != nil {
				// GenerateBatch attempts every path even when some fail,
				// so report the accumulated failures but still archive
				// whatever did get written.
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Printf("wrote %d lines per file (%d bytes total) across %d file(s)\n", cfg.Lines, written, len(paths))

			if archive {
				for _, path := range paths {
					archivePath := path + ".zst"
					size, archErr := fixtures.Archive(path, archivePath)
					if archErr != nil {
						fmt.Fprintln(os.Stderr, archErr)
						continue
					}
					fmt.Printf("archived to %s (%s)\n", archivePath, size)
				}
			}
			return err
		},
	}

	cmd.Flags().IntVar(&cfg.Lines, "lines", 10_000, "number of lines to generate per file")
	cmd.Flags().StringVar(&cfg.Keyword, "keyword", "", "keyword to inject into a percentage of lines")
	cmd.Flags().IntVar(&cfg.KeywordRate, "keyword-rate", 5, "percentage of lines containing keyword (0-100)")
	cmd.Flags().IntVar(&cfg.LineBytes, "line-bytes", 0, "pad each line's message to approximately this many bytes")
	cmd.Flags().BoolVar(&archive, "archive", false, "also write a zstd-compressed copy of each file")
	cmd.Flags().IntVar(&count, "count", 1, "number of numbered fixture files to generate in one batch")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// numberedPaths expands base into count sibling paths, inserting a
// zero-based index before base's extension (fixture.log -> fixture-0.log,
// fixture-1.log, ...).
func numberedPaths(base string, count int) []string {
	ext := ""
	stem := base
	if i := strings.LastIndex(base, "."); i >= 0 {
		ext = base[i:]
		stem = base[:i]
	}
	paths := make([]string, count)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s-%d%s", stem, i, ext)
	}
	return paths
}
