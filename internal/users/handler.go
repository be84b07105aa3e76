package users

import (
	"errors"
	"net/http"

	"github.com/bistroboss/bistro-api/internal/pkg/ctxlog"
	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrUserNotFound, Status: http.StatusNotFound, Message: "user not found"},
}

// Handler handles HTTP requests for the users module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new users handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterPublicRoutes registers routes that need no token.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/users", h.CreateUser)
}

// RegisterProtectedRoutes registers routes that require a token.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/users/admin/{email}", h.CheckAdmin)
}

// RegisterAdminRoutes registers routes that require the admin role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/users", h.ListUsers)
	r.Patch("/users/admin/{id}", h.PromoteToAdmin)
}

// CreateUserRequest represents the request body for a first sign-in.
// Unknown fields, including role, are ignored.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=255"`
	Photo string `json:"photo" validate:"omitempty,max=2048"`
}

// AdminStatusResponse is the body of GET /users/admin/{email}.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// MessageResponse carries an informational marker.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListUsers(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.JSON(w, http.StatusOK, list)
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	res, err := h.service.CreateUser(r.Context(), CreateUserInput(req))
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			httputil.JSON(w, http.StatusOK, MessageResponse{Message: "user already exists"})
			return
		}
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.JSON(w, http.StatusOK, res)
}

// CheckAdmin handles GET /users/admin/{email}.
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email, err := httputil.PathParam(r, "email")
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	admin, err := h.service.CheckAdmin(r.Context(), httputil.GetEmail(r.Context()), email)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.JSON(w, http.StatusOK, AdminStatusResponse{Admin: admin})
}

// PromoteToAdmin handles PATCH /users/admin/{id}.
func (h *Handler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathParam(r, "id")
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	res, err := h.service.PromoteToAdmin(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	ctxlog.FromContext(r.Context()).Info("user promoted to admin",
		"user_id", id,
		"matched", res.MatchedCount,
	)
	httputil.JSON(w, http.StatusOK, res)
}
