// Package reversetail is the engine that walks a log file backward,
// page by page, handing the caller complete lines most-recent-first
// until a match quota is satisfied, the predicate space is exhausted,
// or the file's start is reached. It drives internal/pagereader for
// I/O and internal/lineextract for the pure reassembly step.
package reversetail

import (
	"context"

	"github.com/dball/logtail/internal/apperrors"
	"github.com/dball/logtail/internal/constants"
	"github.com/dball/logtail/internal/io/pool"
	"github.com/dball/logtail/internal/lineextract"
	"github.com/dball/logtail/internal/pagereader"
)

// LineResult is one element of a Finder's output stream: either a
// matched, independently-owned line, or a terminal error. A LineResult
// with a non-nil Err is always the last value sent before the channel
// closes.
type LineResult struct {
	Line []byte
	Err  error
}

// Finder drives one reverse tail search over one file.
type Finder struct {
	reader    *pagereader.PageReader
	pages     *pool.PagePool
	maxLine   int
	predicate Predicate
	total     int

	linesScanned int
	bytesRead    int64
}

// Stats summarizes one completed (or cancelled) search, for logging and
// diagnostics.
type Stats struct {
	LinesScanned int
	BytesRead    int64
}

// Stats returns the search's scan/byte counters. Only meaningful after
// the channel returned by Lines has been drained to closure: the
// channel close happens-after every write to these counters, so no
// further synchronization is needed.
func (f *Finder) Stats() Stats {
	return Stats{LinesScanned: f.linesScanned, BytesRead: f.bytesRead}
}

// New resolves req.File against req.LogsDir, opens it, and returns a
// Finder ready to stream matches. pages supplies (and reclaims) the
// fixed-size page buffer used to walk the file; it is shared across
// every Finder on a server to bound allocation under concurrent
// searches.
func New(req SearchRequest, pages *pool.PagePool) (*Finder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	path, err := resolveWithinRoot(req.LogsDir, req.File)
	if err != nil {
		return nil, err
	}
	reader, err := pagereader.Open(path)
	if err != nil {
		return nil, err
	}

	maxLine := req.MaxLineLength
	if maxLine <= 0 {
		maxLine = constants.DefaultMaxLineLength
	}

	return &Finder{
		reader:    reader,
		pages:     pages,
		maxLine:   maxLine,
		predicate: NewPredicate(req.Keywords),
		total:     req.Total,
	}, nil
}

// Lines starts the reverse walk in its own goroutine and returns a
// channel of matches. The goroutine exits, closing the channel and
// releasing the file handle and page buffer, when: the quota is met,
// the file start is reached, a terminal error occurs, or ctx is
// cancelled (the consumer walking away from an HTTP response is the
// common case of the latter).
func (f *Finder) Lines(ctx context.Context) <-chan LineResult {
	out := make(chan LineResult, constants.LineChannelSize)
	go func() {
		defer close(out)
		defer f.reader.Close()
		f.drive(ctx, out)
	}()
	return out
}

func (f *Finder) drive(ctx context.Context, out chan<- LineResult) {
	if f.total == 0 {
		return
	}

	page := f.pages.Get()
	defer f.pages.Put(page)

	position := f.reader.Size()
	matches := 0
	var carry []byte

	for position > 0 {
		select {
		case <-ctx.Done():
			return
		default:
		}

		length := len(page)
		if int64(length) > position {
			length = int(position)
		}
		readAt := position - int64(length)

		status, err := f.reader.ReadFull(page[:length], readAt, length)
		if err != nil {
			send(ctx, out, LineResult{Err: err})
			return
		}
		f.bytesRead += int64(length)
		if status == pagereader.StatusShort {
			return
		}

		res := lineextract.Extract(f.maxLine, page[:length], carry)
		if res.Overflow {
			send(ctx, out, LineResult{Err: apperrors.ErrLineOverflow})
			return
		}

		f.linesScanned += len(res.Lines)
		for _, line := range res.Lines {
			if !f.predicate(line) {
				continue
			}
			matches++
			if !send(ctx, out, LineResult{Line: copyLine(line)}) {
				return
			}
			if f.total != Unlimited && matches >= f.total {
				return
			}
		}

		// res.Prefix may be a view into page, which the next ReadFull
		// overwrites, so carry an independent copy.
		carry = append([]byte(nil), res.Prefix...)
		position = readAt
	}

	if len(carry) > 0 {
		f.linesScanned++
		if f.predicate(carry) {
			send(ctx, out, LineResult{Line: copyLine(carry)})
		}
	}
}

// send delivers r on out, honoring ctx cancellation. It reports whether
// the value was actually delivered (false means the caller should stop
// driving immediately).
func send(ctx context.Context, out chan<- LineResult, r LineResult) bool {
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

func copyLine(line []byte) []byte {
	capacity := len(line)
	if capacity < constants.MatchBufferInitialCapacity {
		capacity = constants.MatchBufferInitialCapacity
	}
	cp := make([]byte, len(line), capacity)
	copy(cp, line)
	return cp
}
