// Package fixtures generates synthetic log files for exercising the
// reverse-tail engine at scale, and can archive a generated file with
// zstd the way a log rotation policy would.
package fixtures

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/DataDog/zstd"
	"github.com/dustin/go-humanize"

	"github.com/dball/logtail/internal/apperrors"
)

// Config describes one generated log file.
type Config struct {
	// Lines is the number of lines to write.
	Lines int
	// Keyword, when non-empty, is injected into KeywordRate percent of
	// lines so generated fixtures have a known, countable match set.
	Keyword string
	// KeywordRate is the percentage (0-100) of lines containing Keyword.
	KeywordRate int
	// LineBytes pads each line's message body to approximately this
	// many bytes, for exercising page-boundary behavior at scale.
	LineBytes int
}

var levels = []string{"INFO", "WARN", "ERROR", "DEBUG"}

// Generate writes cfg.Lines synthetic log lines to path, one per line,
// each formatted as "<RFC3339 timestamp> <level> <message>". It returns
// the number of bytes written.
func Generate(path string, cfg Config) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, apperrors.Wrapf(err, "creating fixture %s", path)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1<<16)
	now := time.Now()

	var written int64
	for i := 0; i < cfg.Lines; i++ {
		line := buildLine(cfg, i, now.Add(time.Duration(i)*time.Second))
		n, err := w.WriteString(line)
		if err != nil {
			return written, apperrors.Wrapf(err, "writing fixture %s", path)
		}
		written += int64(n)
	}
	if err := w.Flush(); err != nil {
		return written, apperrors.Wrapf(err, "flushing fixture %s", path)
	}
	return written, nil
}

func buildLine(cfg Config, index int, ts time.Time) string {
	level := levels[rand.Intn(len(levels))]
	message := fmt.Sprintf("message %d", index)
	if cfg.Keyword != "" && cfg.KeywordRate > 0 && rand.Intn(100) < cfg.KeywordRate {
		message = fmt.Sprintf("%s %s", message, cfg.Keyword)
	}
	for len(message) < cfg.LineBytes {
		message += " padding"
	}
	return fmt.Sprintf("%s %s %s\n", ts.Format(time.RFC3339), level, message)
}

// GenerateBatch generates one fixture per entry in paths, all with the
// same cfg. Unlike Generate, a failure on one path does not abort the
// rest of the batch: every path is attempted, and the accumulated
// per-file failures are returned together as a single error (nil if
// every file succeeded). written is the total bytes written across
// every fixture that did succeed.
func GenerateBatch(paths []string, cfg Config) (written int64, err error) {
	errs := apperrors.NewMultiError()
	for _, path := range paths {
		n, genErr := Generate(path, cfg)
		written += n
		if genErr != nil {
			errs.Add(genErr)
		}
	}
	return written, errs.ErrorOrNil()
}

// Archive zstd-compresses src into dst, as a daily rotation policy
// would for yesterday's log file, and reports the compressed size in
// human-readable form.
func Archive(src, dst string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", apperrors.Wrapf(err, "opening %s for archival", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", apperrors.Wrapf(err, "creating archive %s", dst)
	}
	defer out.Close()

	zw := zstd.NewWriterLevel(out, zstd.DefaultCompression)
	if _, err := io.Copy(zw, in); err != nil {
		zw.Close()
		return "", apperrors.Wrapf(err, "compressing %s", src)
	}
	if err := zw.Close(); err != nil {
		return "", apperrors.Wrapf(err, "finalizing archive %s", dst)
	}

	info, err := os.Stat(dst)
	if err != nil {
		return "", apperrors.Wrapf(err, "statting archive %s", dst)
	}
	return humanize.Bytes(uint64(info.Size())), nil
}
