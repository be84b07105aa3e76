// Package identity exposes token issuance over HTTP.
package identity

import (
	"net/http"

	"github.com/bistroboss/bistro-api/internal/pkg/ctxlog"
	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// TokenIssuer signs a claim payload.
type TokenIssuer interface {
	Issue(payload map[string]any) (string, error)
}

// Handler handles HTTP requests for the identity module.
type Handler struct {
	issuer TokenIssuer
}

// NewHandler creates a new identity handler.
func NewHandler(issuer TokenIssuer) *Handler {
	return &Handler{issuer: issuer}
}

// RegisterRoutes registers identity routes. Issuance is public.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/jwt", h.IssueToken)
}

// TokenResponse carries a signed token.
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken handles POST /jwt. The body is signed as the token payload.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := httputil.DecodeJSON(r, &payload); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if payload == nil {
		payload = map[string]any{}
	}

	token, err := h.issuer.Issue(payload)
	if err != nil {
		ctxlog.FromContext(r.Context()).Error("failed to issue token", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httputil.JSON(w, http.StatusOK, TokenResponse{Token: token})
}
