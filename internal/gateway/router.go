package gateway

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	HealthPath    = "/health"
	SummarizePath = "/summarize"

	corsMaxAgeSeconds = 300
)

type RouterOptions struct {
	AllowedOrigins []string
}

// NewRouter wires the health and summarize endpoints behind the common
// middleware stack.
func NewRouter(h *Handler, opts RouterOptions, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeSeconds,
	}))

	r.Get(HealthPath, h.Health)
	r.Post(SummarizePath, h.Summarize)

	return r
}
