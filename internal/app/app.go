// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartsmongo "github.com/bistroboss/bistro-api/internal/carts/mongo"
	"github.com/bistroboss/bistro-api/internal/config"
	"github.com/bistroboss/bistro-api/internal/identity/jwt"
	menumongo "github.com/bistroboss/bistro-api/internal/menu/mongo"
	"github.com/bistroboss/bistro-api/internal/payments/stripe"
	"github.com/bistroboss/bistro-api/internal/pkg/mongodb"
	reviewsmongo "github.com/bistroboss/bistro-api/internal/reviews/mongo"
	usersmongo "github.com/bistroboss/bistro-api/internal/users/mongo"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/time/rate"
)

// App represents the application instance.
type App struct {
	config        *config.Config
	logger        *slog.Logger
	client        *mongo.Client
	server        *http.Server
	metricsServer *http.Server
}

// New creates a new application instance. It connects to MongoDB once and
// fails if the store is unreachable.
func New(cfg *config.Config) (*App, error) {
	logger := initLogger(cfg.Log)
	slog.SetDefault(logger)

	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer connectCancel()

	client, err := mongodb.Connect(connectCtx, mongodb.Config{
		URI:      cfg.Mongo.ConnectionURI(),
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Mongo.MigrationsPath != "" {
		if err := mongodb.Migrate(client, cfg.Mongo.Database, cfg.Mongo.MigrationsPath); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	db := client.Database(cfg.Mongo.Database)

	router := NewRouter(Dependencies{
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Users:          usersmongo.NewRepository(db),
		Menu:           menumongo.NewRepository(db),
		Reviews:        reviewsmongo.NewRepository(db),
		Carts:          cartsmongo.NewRepository(db),
		Tokens: jwt.NewAuthenticator(jwt.Config{
			SecretKey:     cfg.JWT.SecretKey,
			TokenDuration: cfg.JWT.TokenDuration,
		}),
		Processor: stripe.NewProcessor(stripe.Config{
			SecretKey: cfg.Payment.SecretKey,
			BaseURL:   cfg.Payment.APIURL,
		}),
		Currency:       cfg.Payment.Currency,
		PaymentLimiter: paymentLimiter(cfg.Payment),
		Ready: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
	})

	app := &App{
		config: cfg,
		logger: logger,
		client: client,
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Metrics server on separate port
	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	app.metricsServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MetricsPort),
		Handler:           metricsRouter,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return app, nil
}

// Run starts the HTTP servers and blocks until the main server stops.
func (a *App) Run() error {
	go func() {
		a.logger.Info("starting metrics server",
			"host", a.config.Server.Host,
			"port", a.config.Server.MetricsPort,
		)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server error", "error", err)
		}
	}()

	a.logger.Info("starting server",
		"host", a.config.Server.Host,
		"port", a.config.Server.Port,
	)

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully stops both servers, then closes the store client.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")

	var wg sync.WaitGroup
	var errs []error
	var mu sync.Mutex

	for name, srv := range map[string]*http.Server{"server": a.server, "metrics server": a.metricsServer} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Shutdown(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("shutdown %s: %w", name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if err := a.client.Disconnect(ctx); err != nil {
		errs = append(errs, fmt.Errorf("disconnect database: %w", err))
	}

	return errors.Join(errs...)
}

// Router returns the HTTP handler for testing.
func (a *App) Router() http.Handler {
	return a.server.Handler
}

func paymentLimiter(cfg config.PaymentConfig) *rate.Limiter {
	if cfg.RateLimit <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
}

func initLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
