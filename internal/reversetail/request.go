package reversetail

// Unlimited disables the match quota; it is never a valid value for a
// request arriving over HTTP (those must supply Total >= 0) but is used
// by tests that exercise the full reverse walk of a fixture.
const Unlimited = -1

// SearchRequest describes one reverse tail search. File is a name
// relative to LogsDir; the caller (the HTTP boundary) has already
// rejected structurally invalid requests (negative/non-integer total,
// empty file name) before a SearchRequest is built.
type SearchRequest struct {
	File          string
	Total         int
	Keywords      [][]byte
	LogsDir       string
	MaxLineLength int
}

// Validate checks the fields a Finder cannot itself recover from. It
// does not touch the filesystem; that happens in New.
func (r SearchRequest) Validate() error {
	if r.File == "" {
		return ErrMissingFile
	}
	if r.Total < 0 && r.Total != Unlimited {
		return ErrInvalidTotal
	}
	return nil
}
