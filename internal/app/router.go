package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bistroboss/bistro-api/internal/carts"
	"github.com/bistroboss/bistro-api/internal/identity"
	"github.com/bistroboss/bistro-api/internal/identity/jwt"
	"github.com/bistroboss/bistro-api/internal/menu"
	"github.com/bistroboss/bistro-api/internal/payments"
	"github.com/bistroboss/bistro-api/internal/pkg/ctxlog"
	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/bistroboss/bistro-api/internal/reviews"
	"github.com/bistroboss/bistro-api/internal/users"
	"github.com/bistroboss/bistro-api/internal/version"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// Greeting is the body of GET /.
const Greeting = "Hello Bistro Boss!"

// Dependencies is everything the router needs. Repositories and the payment
// processor are interfaces so tests can run the full router against fakes.
type Dependencies struct {
	Logger         *slog.Logger
	AllowedOrigins []string

	Users   users.Repository
	Menu    menu.Repository
	Reviews reviews.Repository
	Carts   carts.Repository

	Tokens    *jwt.Authenticator
	Processor payments.Processor
	Currency  string

	// PaymentLimiter bounds calls to the processor. Nil means unlimited.
	PaymentLimiter *rate.Limiter

	// Ready reports whether the store is reachable. Nil means always ready.
	Ready func(ctx context.Context) error
}

// NewRouter builds the HTTP handler tree.
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// Metrics middleware must be first to measure full request time
	r.Use(httputil.MetricsMiddleware)

	// CORS must be early to handle preflight requests before other middleware
	r.Use(httputil.CORSMiddleware(deps.AllowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLoggerMiddleware(logger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httputil.Text(w, http.StatusOK, Greeting)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.Text(w, http.StatusOK, "OK")
	})
	r.Get("/readyz", readyzHandler(deps.Ready))
	r.Get("/version", versionHandler)

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		http.ServeFile(w, r, "api/openapi/openapi.yaml")
	})

	usersService := users.NewService(deps.Users)
	usersHandler := users.NewHandler(usersService)
	menuHandler := menu.NewHandler(menu.NewService(deps.Menu))
	reviewsHandler := reviews.NewHandler(reviews.NewService(deps.Reviews))
	cartsHandler := carts.NewHandler(carts.NewService(deps.Carts))
	paymentsHandler := payments.NewHandler(payments.NewService(deps.Processor, deps.Currency))
	identityHandler := identity.NewHandler(deps.Tokens)

	identityHandler.RegisterRoutes(r)
	usersHandler.RegisterPublicRoutes(r)
	menuHandler.RegisterPublicRoutes(r)
	reviewsHandler.RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(httputil.AuthMiddleware(deps.Tokens))

		usersHandler.RegisterProtectedRoutes(r)
		cartsHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(httputil.RateLimitMiddleware(deps.PaymentLimiter))
			paymentsHandler.RegisterRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(httputil.RequireAdmin(usersService))
			usersHandler.RegisterAdminRoutes(r)
			menuHandler.RegisterAdminRoutes(r)
		})
	})

	return r
}

func readyzHandler(ready func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ready == nil {
			httputil.Text(w, http.StatusOK, "OK")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := ready(ctx); err != nil {
			ctxlog.FromContext(r.Context()).Error("readiness check failed", "error", err)
			httputil.Text(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}

		httputil.Text(w, http.StatusOK, "OK")
	}
}

func versionHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"version":    version.Version,
		"commit":     version.GitCommit,
		"build_date": version.BuildDate,
	})
}
