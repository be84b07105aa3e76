package payments

import (
	"net/http"

	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrInvalidPrice, Status: http.StatusBadRequest},
}

// Handler handles HTTP requests for the payments module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new payments handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers payment routes. They require a token.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/create-payment-intent", h.CreatePaymentIntent)
}

// CreatePaymentIntentRequest represents the request body for a payment intent.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

// CreatePaymentIntentResponse carries the secret the client confirms the payment with.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentIntentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	secret, err := h.service.CreatePaymentIntent(r.Context(), httputil.GetEmail(r.Context()), req.Price)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.JSON(w, http.StatusOK, CreatePaymentIntentResponse{ClientSecret: secret})
}
