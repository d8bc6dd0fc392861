package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/dball/logtail/internal/version"
)

type healthResponse struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	LogsDirReadable bool   `json:"logs_dir_readable"`
}

// handleHealthz reports liveness plus whether the configured logs
// directory is currently readable, so an orchestrator can distinguish
// "process up" from "process up but every search will 422".
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:          "ok",
		Version:         version.Version,
		LogsDirReadable: logsDirReadable(s.cfg.Get().LogsDir),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// logsDirReadable reports whether dir exists, is a directory, and can
// be listed.
func logsDirReadable(dir string) bool {
	f, err := os.Open(dir)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = f.Readdirnames(1)
	return err == nil || errors.Is(err, io.EOF)
}
