package router

import (
	"github.com/Shubham1613/FastAPI-Mongo/internal/handler"
	"github.com/Shubham1613/FastAPI-Mongo/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler        *handler.Handler
	ItemHandler    *handler.ItemHandler
	ClockInHandler *handler.ClockInHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Monitoring endpoints
	if cfg.Handler != nil {
		r.Get("/health", cfg.Handler.Health)
		r.Get("/status", cfg.Handler.Status)
	}

	// Item endpoints. The static /filter and /aggregate routes take
	// precedence over the {id} parameter route.
	if cfg.ItemHandler != nil {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", cfg.ItemHandler.Create)
			r.Get("/filter", cfg.ItemHandler.Filter)
			r.Get("/aggregate", cfg.ItemHandler.Aggregate)
			r.Get("/{id}", cfg.ItemHandler.Get)
			r.Put("/{id}", cfg.ItemHandler.Update)
			r.Delete("/{id}", cfg.ItemHandler.Delete)
		})
	}

	// Clock-in endpoints
	if cfg.ClockInHandler != nil {
		r.Route("/clock-in", func(r chi.Router) {
			r.Post("/", cfg.ClockInHandler.Create)
			r.Get("/filter", cfg.ClockInHandler.Filter)
			r.Get("/{id}", cfg.ClockInHandler.Get)
			r.Put("/{id}", cfg.ClockInHandler.Update)
			r.Delete("/{id}", cfg.ClockInHandler.Delete)
		})
	}

	return r
}
