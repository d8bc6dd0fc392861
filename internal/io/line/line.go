// Package line defines the wire representation of one matched log
// line returned from a search, independent of the JSON framing the
// HTTP layer wraps it in.
package line

import "fmt"

// Line is one line returned by a search, most-recent-first: Index 1 is
// the newest match, Index 2 the next, and so on.
type Line struct {
	// Content is the matched line's bytes, trailing newline stripped.
	Content []byte
	// Index is this line's 1-based position among the search's
	// results, in the order it was delivered.
	Index int
	// SourceFile is the name of the log file the line was read from,
	// as given in the request (not the resolved absolute path).
	SourceFile string
}

// String returns a human-readable representation, for logging.
func (l Line) String() string {
	return fmt.Sprintf("Line(SourceFile:%s,Index:%d,Content:%s)", l.SourceFile, l.Index, string(l.Content))
}
