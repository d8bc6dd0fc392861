package reversetail

import "github.com/dball/logtail/internal/apperrors"

// ErrMissingFile and ErrInvalidTotal are apperrors.ErrInvalidRequest,
// wrapped with enough context for a 422 response body to explain itself
// without the caller needing to inspect the request again.
var (
	ErrMissingFile  = apperrors.Wrap(apperrors.ErrInvalidRequest, "file is required")
	ErrInvalidTotal = apperrors.Wrap(apperrors.ErrInvalidRequest, "total must be a non-negative integer")
)
