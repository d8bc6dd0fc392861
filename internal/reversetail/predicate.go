package reversetail

import "bytes"

// Predicate reports whether a line (including its trailing newline, if
// any) satisfies a search.
type Predicate func(line []byte) bool

// AlwaysMatch is the predicate for a keywords-free request.
func AlwaysMatch(line []byte) bool { return true }

// NewPredicate returns the conjunction of "line contains keyword" tests.
// An empty keyword list yields AlwaysMatch. The keyword list is copied;
// callers may reuse or discard their slice afterwards.
func NewPredicate(keywords [][]byte) Predicate {
	if len(keywords) == 0 {
		return AlwaysMatch
	}
	kws := make([][]byte, len(keywords))
	copy(kws, keywords)
	return func(line []byte) bool {
		for _, kw := range kws {
			if !bytes.Contains(line, kw) {
				return false
			}
		}
		return true
	}
}
