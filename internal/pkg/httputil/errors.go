package httputil

import (
	"context"
	"errors"
	"net/http"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/ctxlog"
)

// ErrorMapping defines how a domain error maps to an HTTP response.
type ErrorMapping struct {
	Error   error
	Status  int
	Message string // if empty, uses err.Error()
}

// commonMappings apply to every module after its own mappings.
var commonMappings = []ErrorMapping{
	{Error: domain.ErrInvalidID, Status: http.StatusBadRequest, Message: "invalid id"},
	{Error: ErrInvalidPathParam, Status: http.StatusBadRequest, Message: "invalid path parameter"},
}

// HandleError maps a domain error to an HTTP response using provided mappings.
// If no mapping matches, logs the error and returns 500 Internal Server Error.
func HandleError(ctx context.Context, w http.ResponseWriter, err error, mappings []ErrorMapping) {
	for _, list := range [][]ErrorMapping{mappings, commonMappings} {
		for _, m := range list {
			if errors.Is(err, m.Error) {
				msg := m.Message
				if msg == "" {
					msg = err.Error()
				}
				Error(w, m.Status, msg)
				return
			}
		}
	}
	ctxlog.FromContext(ctx).Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, "internal error")
}
