package lineextract

import (
	"bytes"
	"testing"
)

const maxLine = 64

func TestExtractSingleTerminatedLineEmptySuffix(t *testing.T) {
	res := Extract(maxLine, []byte("hello\n"), nil)
	if len(res.Lines) != 0 {
		t.Fatalf("expected no complete lines, got %v", res.Lines)
	}
	if string(res.Prefix) != "hello\n" {
		t.Fatalf("expected prefix %q, got %q", "hello\n", res.Prefix)
	}
	if res.Overflow {
		t.Fatal("unexpected overflow")
	}
}

func TestExtractSingleEmptyLine(t *testing.T) {
	res := Extract(maxLine, []byte("\n"), nil)
	if len(res.Lines) != 0 {
		t.Fatalf("expected no complete lines, got %v", res.Lines)
	}
	if string(res.Prefix) != "\n" {
		t.Fatalf("expected prefix %q, got %q", "\n", res.Prefix)
	}
}

func TestExtractNoNewlineAccumulates(t *testing.T) {
	res := Extract(maxLine, []byte("abc"), []byte("def"))
	if len(res.Lines) != 0 {
		t.Fatalf("expected no lines, got %v", res.Lines)
	}
	if string(res.Prefix) != "abcdef" {
		t.Fatalf("expected prefix %q, got %q", "abcdef", res.Prefix)
	}
	if res.Overflow {
		t.Fatal("unexpected overflow")
	}
}

func TestExtractNoNewlineOverflows(t *testing.T) {
	page := bytes.Repeat([]byte("x"), maxLine)
	res := Extract(maxLine, page, nil)
	if !res.Overflow {
		t.Fatal("expected overflow")
	}
	if res.Prefix != nil || res.Lines != nil {
		t.Fatalf("expected empty result on overflow, got %+v", res)
	}
}

// TestExtractMultiLineRoundTrip checks property #2: for B = l1 ∥ l2 ∥ ... ∥ lk
// with each li newline-terminated and an empty suffix, Lines comes back
// most-recent-first as lk..l2 and Prefix is l1.
func TestExtractMultiLineRoundTrip(t *testing.T) {
	l1, l2, l3 := []byte("one\n"), []byte("two\n"), []byte("three\n")
	page := concatAll(l1, l2, l3)

	res := Extract(maxLine, page, nil)

	wantLines := [][]byte{l3, l2}
	if len(res.Lines) != len(wantLines) {
		t.Fatalf("expected %d lines, got %d (%v)", len(wantLines), len(res.Lines), res.Lines)
	}
	for i, want := range wantLines {
		if !bytes.Equal(res.Lines[i], want) {
			t.Fatalf("line %d: expected %q, got %q", i, want, res.Lines[i])
		}
	}
	if !bytes.Equal(res.Prefix, l1) {
		t.Fatalf("expected prefix %q, got %q", l1, res.Prefix)
	}
	if res.Overflow {
		t.Fatal("unexpected overflow")
	}
}

func TestExtractMidLineSuffixJoins(t *testing.T) {
	// page ends mid-line ("tail"); suffix completes that line.
	page := []byte("first\nsecond-partial")
	suffix := []byte("-rest\n")

	res := Extract(maxLine, page, suffix)

	if len(res.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d (%v)", len(res.Lines), res.Lines)
	}
	if string(res.Lines[0]) != "second-partial-rest\n" {
		t.Fatalf("expected joined tail line, got %q", res.Lines[0])
	}
	if string(res.Prefix) != "first\n" {
		t.Fatalf("expected prefix %q, got %q", "first\n", res.Prefix)
	}
}

func TestExtractGarbageSuffixKeptNoNewlineInPage(t *testing.T) {
	// No newline anywhere in the page: per the formal property, the
	// suffix is always folded into the accumulating prefix regardless
	// of whether it ends in a newline.
	res := Extract(maxLine, []byte("abc"), []byte("garbage"))
	if string(res.Prefix) != "abcgarbage" {
		t.Fatalf("expected prefix %q, got %q", "abcgarbage", res.Prefix)
	}
	if len(res.Lines) != 0 {
		t.Fatalf("expected no lines, got %v", res.Lines)
	}
}

func TestExtractGarbageSuffixDiscardedWithTail(t *testing.T) {
	// Page has complete lines plus a non-newline-terminated tail, and a
	// garbage (non-newline-terminated) suffix: both tail and suffix are
	// dropped; the oldest complete line becomes the prefix.
	page := []byte("one\ntwo\npartial")
	res := Extract(maxLine, page, []byte("garbage"))

	if len(res.Lines) != 1 || string(res.Lines[0]) != "two\n" {
		t.Fatalf("expected [\"two\\n\"], got %v", res.Lines)
	}
	if string(res.Prefix) != "one\n" {
		t.Fatalf("expected prefix %q, got %q", "one\n", res.Prefix)
	}
}

func TestExtractOverflowInMiddleLine(t *testing.T) {
	huge := bytes.Repeat([]byte("y"), maxLine+1)
	huge = append(huge, '\n')
	page := concatAll([]byte("a\n"), huge, []byte("b\n"))

	res := Extract(maxLine, page, nil)
	if !res.Overflow {
		t.Fatal("expected overflow from the oversized middle line")
	}
}

func concatAll(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
