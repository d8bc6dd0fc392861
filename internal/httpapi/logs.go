package httpapi

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dball/logtail/internal/apperrors"
	"github.com/dball/logtail/internal/io/line"
	"github.com/dball/logtail/internal/io/pool"
	"github.com/dball/logtail/internal/logger"
	"github.com/dball/logtail/internal/reversetail"
)

// logEvent is one line of the newline-delimited JSON response body.
// Exactly one of Line or Error is set; Error, when present, is always
// the last event before the stream closes.
type logEvent struct {
	Line  string `json:"line,omitempty"`
	Index int    `json:"index,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleLogs serves GET /logs?file=&total=&keywords=&keywords=...
//
// file is required and resolved relative to the configured logs
// directory. total defaults to 10 and caps the number of matches
// returned; keywords may repeat, and every occurrence must match (AND
// semantics) for a line to be returned.
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	default:
		http.Error(w, "too many concurrent searches", http.StatusServiceUnavailable)
		return
	}

	req, err := parseSearchRequest(r, s.cfg.Get())
	if err != nil {
		writeRequestError(w, err)
		return
	}

	finder, err := reversetail.New(req, s.pages)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	searchID := uuid.NewString()
	started := time.Now()
	logger.Info("search started", searchID, req.File, "total="+strconv.Itoa(req.Total))

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("X-Search-Id", searchID)
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	bw := bufio.NewWriter(w)

	matches := 0
	for result := range finder.Lines(r.Context()) {
		if result.Err != nil {
			writeEvent(bw, logEvent{Error: errorMessage(result.Err)})
			bw.Flush()
			logger.Warn("search ended with error", searchID, result.Err)
			return
		}
		matches++
		matched := line.Line{Content: bytes.TrimSuffix(result.Line, []byte("\n")), Index: matches, SourceFile: req.File}
		writeEvent(bw, logEvent{Line: string(matched.Content), Index: matched.Index})
		bw.Flush()
		if flusher != nil {
			flusher.Flush()
		}
	}

	stats := finder.Stats()
	logger.Info("search completed", searchID, req.File,
		"lines_scanned="+strconv.Itoa(stats.LinesScanned),
		"matches="+strconv.Itoa(matches),
		"bytes_read="+strconv.FormatInt(stats.BytesRead, 10),
		time.Since(started).String())
}

// writeEvent marshals ev into a pooled scratch buffer and writes it,
// newline-terminated, to bw. The buffer is reused across every matched
// line in a search instead of letting json.Encoder allocate afresh
// per call.
func writeEvent(bw *bufio.Writer, ev logEvent) {
	buf := pool.GetBytesBuffer()
	defer pool.RecycleBytesBuffer(buf)

	if err := json.NewEncoder(buf).Encode(ev); err != nil {
		return
	}
	bw.Write(buf.Bytes())
}

// writeRequestError maps a rejected search request to a status code.
// file=missing.log and file=../escaping.log are both InvalidSearch
// per spec.md §7: a 404 here would mean "no such HTTP route", not
// "no such log file", so both are 422 like any other malformed
// request.
func writeRequestError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidRequest),
		apperrors.Is(err, apperrors.ErrPathEscape),
		apperrors.Is(err, apperrors.ErrFileNotFound):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func errorMessage(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrLineOverflow):
		return "line exceeded maximum length; search ended early"
	case apperrors.Is(err, apperrors.ErrIO):
		return "i/o error reading log file; search ended early"
	default:
		return "search ended with an unexpected error"
	}
}
