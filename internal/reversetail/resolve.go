package reversetail

import (
	"path/filepath"
	"strings"

	"github.com/dball/logtail/internal/apperrors"
)

// resolveWithinRoot joins root and name, then verifies the resulting
// absolute path still falls within root by a component boundary (so
// "logs-archive" cannot be reached by requesting "../logs-archive" from
// a root of "logs", nor can a name that happens to share root's string
// prefix without being a genuine subdirectory).
func resolveWithinRoot(root, name string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrIO, err.Error())
	}
	joined := filepath.Join(absRoot, name)
	absJoined, err := filepath.Abs(joined)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrIO, err.Error())
	}

	rel, err := filepath.Rel(absRoot, absJoined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", apperrors.ErrPathEscape
	}
	return absJoined, nil
}
