package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// ErrInvalidPathParam is returned by PathParam for malformed escapes.
var ErrInvalidPathParam = errors.New("invalid path parameter")

// PathParam returns the decoded value of a route parameter. chi matches on
// the raw path when the client escaped it, so "%40" arrives undecoded.
func PathParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrInvalidPathParam, name, err)
	}
	return value, nil
}
