package reviews

import (
	"net/http"

	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the reviews module.
type Handler struct {
	service *Service
}

// NewHandler creates a new reviews handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers review routes. All are public.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reviews", h.ListReviews)
}

// ListReviews handles GET /reviews.
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListReviews(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, list)
}
