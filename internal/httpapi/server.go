// Package httpapi is the HTTP boundary of the daemon: it parses and
// validates GET /logs requests, drives a reversetail.Finder, and
// streams matches back as newline-delimited JSON. GET /healthz reports
// liveness for load balancers and orchestrators.
package httpapi

import (
	"net/http"

	"github.com/dball/logtail/internal/config"
	"github.com/dball/logtail/internal/io/pool"
)

// Server holds the shared resources every request needs: the current
// config (hot-reloadable), the shared page buffer pool, and a
// connection-limiting semaphore.
type Server struct {
	cfg   *config.Store
	pages *pool.PagePool
	sem   chan struct{}
}

// NewServer builds a Server from cfg's current settings. The page pool
// is sized once, at startup, to cfg.Get().PageLength; a later
// hot-reload of page-length takes effect for new pools only, not this
// process's lifetime (buffers already on loan keep their original
// size).
func NewServer(cfg *config.Store) *Server {
	c := cfg.Get()
	return &Server{
		cfg:   cfg,
		pages: pool.NewPagePool(c.PageLength),
		sem:   make(chan struct{}, c.MaxConnections),
	}
}

// Routes returns the daemon's HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/logs", s.handleLogs)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}
