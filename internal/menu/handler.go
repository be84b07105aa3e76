package menu

import (
	"net/http"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/ctxlog"
	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler handles HTTP requests for the menu module.
type Handler struct {
	service *Service
}

// NewHandler creates a new menu handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers routes that need no token.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/menu", h.ListMenuItems)
}

// RegisterAdminRoutes registers routes that require the admin role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/menu", h.CreateMenuItem)
	r.Delete("/menu/{id}", h.DeleteMenuItem)
}

// ListMenuItems handles GET /menu.
func (h *Handler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenuItems(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, items)
}

// CreateMenuItem handles POST /menu. The body is stored as submitted; only a
// client supplied _id is discarded so the store assigns one.
func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := httputil.DecodeJSON(r, &item); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	item.ID = primitive.NilObjectID

	res, err := h.service.CreateMenuItem(r.Context(), &item)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	ctxlog.FromContext(r.Context()).Info("menu item created", "id", res.InsertedID, "name", item.Fields["name"])
	httputil.JSON(w, http.StatusOK, res)
}

// DeleteMenuItem handles DELETE /menu/{id}.
func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathParam(r, "id")
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	res, err := h.service.DeleteMenuItem(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, res)
}
