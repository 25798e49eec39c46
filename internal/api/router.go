package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "ytworth/internal/api/docs"
	apimw "ytworth/internal/api/middleware"
	"ytworth/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handler interface {
	CreateEstimate(w http.ResponseWriter, r *http.Request)
	GetEstimate(w http.ResponseWriter, r *http.Request)
	ListTiers(w http.ResponseWriter, r *http.Request)
}

// Metrics is what the router reports to.
type Metrics interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
	RejectedByRateLimit()
}

// Router handles HTTP routing
type Router struct {
	server   *http.Server
	handlers Handler
}

func NewRouter(cfg *config.Config, handler Handler, logger apimw.Logger, metrics Metrics) *Router {
	r := chi.NewRouter()

	// middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.Instrument(metrics))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	limiter := apimw.NewRateLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.Burst,
		metrics.RejectedByRateLimit,
	)

	//chi router
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/estimates", handler.CreateEstimate)
		r.Get("/estimates", handler.GetEstimate)
		r.Get("/tiers", handler.ListTiers)
	})

	//server
	server := &http.Server{
		Addr:         cfg.HTTP.ListenAddr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	return &Router{
		server:   server,
		handlers: handler,
	}
}

// Handler exposes the routed handler, mainly for tests.
func (r *Router) Handler() http.Handler {
	return r.server.Handler
}

// Start starts the HTTP server
func (r *Router) Start() error {
	return r.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (r *Router) Shutdown(ctx context.Context) error {
	if err := r.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
