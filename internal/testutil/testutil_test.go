package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteLinesCreatesFileWithTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := WriteLines(t, dir, "nested/app.log", []string{"one", "two"})

	if path != filepath.Join(dir, "nested/app.log") {
		t.Fatalf("unexpected path: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(content) != "one\ntwo\n" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestWriteLinesEmptyProducesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := WriteLines(t, dir, "empty.log", nil)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if len(content) != 0 {
		t.Fatalf("expected empty file, got %q", content)
	}
}

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertErrorContains(t *testing.T) {
	AssertErrorContains(t, fmt.Errorf("disk full"), "disk full")
}
