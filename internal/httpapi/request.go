package httpapi

import (
	"net/http"
	"strconv"

	"github.com/dball/logtail/internal/config"
	"github.com/dball/logtail/internal/constants"
	"github.com/dball/logtail/internal/reversetail"
)

// parseSearchRequest builds a reversetail.SearchRequest from r's query
// parameters, rejecting structurally invalid input before any file is
// touched.
func parseSearchRequest(r *http.Request, cfg *config.ServerConfig) (reversetail.SearchRequest, error) {
	q := r.URL.Query()

	file := q.Get("file")
	if file == "" {
		return reversetail.SearchRequest{}, reversetail.ErrMissingFile
	}

	total := constants.DefaultTotal
	if raw := q.Get("total"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > constants.MaxTotal {
			return reversetail.SearchRequest{}, reversetail.ErrInvalidTotal
		}
		total = n
	}

	var keywords [][]byte
	for _, kw := range q["keywords"] {
		if kw != "" {
			keywords = append(keywords, []byte(kw))
		}
	}

	req := reversetail.SearchRequest{
		File:          file,
		Total:         total,
		Keywords:      keywords,
		LogsDir:       cfg.LogsDir,
		MaxLineLength: cfg.MaxLineLength,
	}
	return req, req.Validate()
}
