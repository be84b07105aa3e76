package carts

import (
	"net/http"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrForbidden, Status: http.StatusForbidden, Message: "forbidden access"},
	{Error: ErrCartItemNotFound, Status: http.StatusNotFound, Message: "cart item not found"},
}

// Handler handles HTTP requests for the carts module.
type Handler struct {
	service *Service
}

// NewHandler creates a new carts handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers cart routes. They all require a token.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/carts", func(r chi.Router) {
		r.Get("/", h.ListCartItems)
		r.Post("/", h.AddToCart)
		r.Delete("/{id}", h.RemoveFromCart)
	})
}

// ListCartItems handles GET /carts?email=.
func (h *Handler) ListCartItems(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	items, err := h.service.ListCartItems(r.Context(), httputil.GetEmail(r.Context()), email)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.JSON(w, http.StatusOK, items)
}

// AddToCart handles POST /carts. The item is stored as given apart from its
// owner check and a discarded client _id.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := httputil.DecodeJSON(r, &item); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	item.ID = primitive.NilObjectID

	res, err := h.service.AddToCart(r.Context(), httputil.GetEmail(r.Context()), &item)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.JSON(w, http.StatusOK, res)
}

// RemoveFromCart handles DELETE /carts/{id}.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathParam(r, "id")
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	res, err := h.service.RemoveFromCart(r.Context(), httputil.GetEmail(r.Context()), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.JSON(w, http.StatusOK, res)
}
