package reversetail

import (
	"context"
	"strings"
	"testing"

	"github.com/dball/logtail/internal/apperrors"
	"github.com/dball/logtail/internal/io/pool"
	"github.com/dball/logtail/internal/testutil"
)

func writeLog(t *testing.T, dir, name string, lines []string) {
	t.Helper()
	testutil.WriteLines(t, dir, name, lines)
}

func drain(t *testing.T, f *Finder) ([]string, error) {
	t.Helper()
	var got []string
	for r := range f.Lines(context.Background()) {
		if r.Err != nil {
			return got, r.Err
		}
		got = append(got, strings.TrimSuffix(string(r.Line), "\n"))
	}
	return got, nil
}

func TestFinderReturnsMostRecentFirst(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "app.log", []string{"one", "two", "three", "four"})

	pages := pool.NewPagePool(8) // small page to force multiple reverse pages
	f, err := New(SearchRequest{File: "app.log", Total: Unlimited, LogsDir: dir, MaxLineLength: 1024}, pages)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := drain(t, f)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	want := []string{"four", "three", "two", "one"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFinderRespectsQuota(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "app.log", []string{"one", "two", "three", "four"})

	pages := pool.NewPagePool(4096)
	f, err := New(SearchRequest{File: "app.log", Total: 2, LogsDir: dir, MaxLineLength: 1024}, pages)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := drain(t, f)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	want := []string{"four", "three"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFinderFiltersByKeyword(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "app.log", []string{"alpha error", "beta ok", "gamma error panic", "delta ok"})

	pages := pool.NewPagePool(4096)
	f, err := New(SearchRequest{
		File:          "app.log",
		Total:         Unlimited,
		Keywords:      [][]byte{[]byte("error"), []byte("panic")},
		LogsDir:       dir,
		MaxLineLength: 1024,
	}, pages)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := drain(t, f)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	want := []string{"gamma error panic"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFinderStatsReportsScannedLinesAndBytes(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "app.log", []string{"alpha error", "beta ok", "gamma error panic", "delta ok"})

	pages := pool.NewPagePool(4096)
	f, err := New(SearchRequest{
		File:          "app.log",
		Total:         1,
		Keywords:      [][]byte{[]byte("error")},
		LogsDir:       dir,
		MaxLineLength: 1024,
	}, pages)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := drain(t, f)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %v", got)
	}

	stats := f.Stats()
	if stats.LinesScanned < 1 {
		t.Fatalf("expected at least 1 line scanned, got %d", stats.LinesScanned)
	}
	if stats.BytesRead == 0 {
		t.Fatal("expected non-zero bytes read")
	}
}

func TestFinderRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "app.log", []string{"one"})

	pages := pool.NewPagePool(4096)
	_, err := New(SearchRequest{File: "../secret", Total: 1, LogsDir: dir, MaxLineLength: 1024}, pages)
	if !apperrors.Is(err, apperrors.ErrPathEscape) {
		t.Fatalf("expected ErrPathEscape, got %v", err)
	}
}

func TestFinderRejectsMissingFile(t *testing.T) {
	dir := t.TempDir()

	pages := pool.NewPagePool(4096)
	_, err := New(SearchRequest{File: "nope.log", Total: 1, LogsDir: dir, MaxLineLength: 1024}, pages)
	if !apperrors.Is(err, apperrors.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestFinderRejectsInvalidTotal(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "app.log", []string{"one"})

	pages := pool.NewPagePool(4096)
	_, err := New(SearchRequest{File: "app.log", Total: -5, LogsDir: dir, MaxLineLength: 1024}, pages)
	if !apperrors.Is(err, apperrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestFinderSurfacesLineOverflow(t *testing.T) {
	dir := t.TempDir()
	huge := strings.Repeat("x", 200)
	writeLog(t, dir, "app.log", []string{"short", huge})

	pages := pool.NewPagePool(4096)
	f, err := New(SearchRequest{File: "app.log", Total: Unlimited, LogsDir: dir, MaxLineLength: 32}, pages)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = drain(t, f)
	if !apperrors.Is(err, apperrors.ErrLineOverflow) {
		t.Fatalf("expected ErrLineOverflow, got %v", err)
	}
}

func TestFinderCancellationStopsEarly(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "app.log", []string{"one", "two", "three"})

	pages := pool.NewPagePool(4096)
	f, err := New(SearchRequest{File: "app.log", Total: Unlimited, LogsDir: dir, MaxLineLength: 1024}, pages)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := f.Lines(ctx)
	<-ch
	cancel()

	// Draining to close should not hang or panic even after cancellation.
	for range ch {
	}
}
