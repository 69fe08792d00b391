package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot/dashboard/internal/http/handlers"
	rl "github.com/stockpilot/dashboard/internal/http/rate_limiter"
)

// NewRouter wires the dashboard API.
func NewRouter(registry *rl.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	if registry != nil {
		r.Use(RateLimitMiddleware(registry))
	}

	r.Get("/healthz", handlers.HealthHandler)

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/products", handlers.LoadProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Get("/alerts", handlers.AlertsHandler)
		r.Post("/recommendations", handlers.RecommendationsHandler)
		r.Post("/chat", handlers.ChatHandler)
		r.Post("/estimate", handlers.EstimateHandler)
		r.Get("/stats", handlers.StatsHandler)
	})

	r.Get("/outages/summary", handlers.OutageSummaryHandler)

	return r
}
