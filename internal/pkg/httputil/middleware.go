package httputil

import (
	"context"
	"net/http"
	"strings"

	"github.com/bistroboss/bistro-api/internal/pkg/ctxlog"
)

// CORSMiddleware creates CORS middleware that handles preflight requests
// and adds appropriate CORS headers to responses.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	originsSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originsSet[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && (originsSet[origin] || originsSet["*"]) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Max-Age", "86400")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type contextKey string

// EmailKey holds the email decoded from the bearer token.
const EmailKey contextKey = "email"

// TokenValidator verifies a bearer token and returns the email claim.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (email string, err error)
}

// AdminChecker reports whether the user with the given email holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AuthMiddleware requires a valid bearer token. Any failure ends the request with 401;
// on success the decoded email is stored in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				Error(w, http.StatusUnauthorized, "unauthorized access: no token provided")
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
				Error(w, http.StatusUnauthorized, "unauthorized access: invalid authorization header")
				return
			}

			email, err := validator.ValidateToken(r.Context(), strings.TrimSpace(token))
			if err != nil {
				ctxlog.FromContext(r.Context()).Debug("token rejected", "error", err)
				Error(w, http.StatusUnauthorized, "unauthorized access: invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), EmailKey, email)
			ctx = ctxlog.With(ctx, "email", email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must run after AuthMiddleware. It looks up the caller's stored role
// and rejects non-admins with 403.
func RequireAdmin(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetEmail(r.Context())
			if email == "" {
				Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), email)
			if err != nil {
				ctxlog.FromContext(r.Context()).Error("admin lookup failed", "error", err)
				Error(w, http.StatusInternalServerError, "internal error")
				return
			}

			if !isAdmin {
				Error(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetEmail extracts the authenticated email from context.
func GetEmail(ctx context.Context) string {
	if email, ok := ctx.Value(EmailKey).(string); ok {
		return email
	}
	return ""
}

// WithEmail returns a context carrying an authenticated email.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, EmailKey, email)
}
