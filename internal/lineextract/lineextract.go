// Package lineextract implements the pure, page-at-a-time line
// reassembly step of the reverse-paged tail engine. It has no knowledge
// of files, offsets, or predicates: given one newly-read page (at a
// lower file offset than anything already processed) and the suffix
// carried over from the previous call, it returns the complete lines
// found in that page, most-recent first, plus a new candidate prefix
// that may still extend into an earlier page.
package lineextract

import "bytes"

const newline = '\n'

// Result is the outcome of one Extract call.
type Result struct {
	// Lines are the complete lines found in this page, most-recent-first
	// (highest file offset first). Each includes its trailing newline.
	// Entries may be views into page or suffix; copy before page's
	// buffer is reused.
	Lines [][]byte
	// Prefix is page's bytes up to and including its first newline (or,
	// when page has no newline, page followed by suffix), a candidate
	// that may still extend into an earlier page. May be a view into
	// page or suffix.
	Prefix []byte
	// Overflow is true when a line kept in Lines exceeds maxLineLength,
	// or when the accumulating prefix (with no newline yet found) would.
	Overflow bool
}

// Extract finds complete lines in page, carrying suffix forward as
// described in the package doc. maxLineLength bounds every line
// returned in Lines and, when page has no newline, the accumulated
// prefix; a Prefix taken from a page that has a newline is not checked
// against it.
func Extract(maxLineLength int, page []byte, suffix []byte) Result {
	idx := newlineIndices(page)
	if len(idx) == 0 {
		combined := concat(page, suffix)
		if len(combined) >= maxLineLength {
			return Result{Overflow: true}
		}
		return Result{Prefix: combined}
	}

	working := make([][]byte, 0, len(idx)+1)
	start := 0
	for _, nl := range idx {
		working = append(working, page[start:nl+1])
		start = nl + 1
	}
	tail := page[start:]

	suffixTerminated := len(suffix) > 0 && suffix[len(suffix)-1] == newline
	switch {
	case len(tail) == 0:
		if suffixTerminated {
			working = append(working, suffix)
		}
	default:
		if suffixTerminated {
			working = append(working, concat(tail, suffix))
		}
	}

	reverse(working)
	prefix := working[len(working)-1]
	lines := working[:len(working)-1]

	overflow := false
	for _, line := range lines {
		if len(line) > maxLineLength {
			overflow = true
			break
		}
	}

	return Result{Lines: lines, Prefix: prefix, Overflow: overflow}
}

// newlineIndices returns the positions of every newline byte in b, in
// increasing order.
func newlineIndices(b []byte) []int {
	var idx []int
	offset := 0
	for {
		i := bytes.IndexByte(b[offset:], newline)
		if i < 0 {
			return idx
		}
		idx = append(idx, offset+i)
		offset += i + 1
	}
}

func concat(a, b []byte) []byte {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func reverse(lines [][]byte) {
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
}
