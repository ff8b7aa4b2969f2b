// Package api is the HTTP boundary of the service: it routes requests,
// decodes and validates payloads, and maps core errors to responses.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mmynk/dailydiet/internal/metrics"
	"github.com/mmynk/dailydiet/internal/middleware"
	"github.com/mmynk/dailydiet/internal/service"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the HTTP layer dispatches to.
type Deps struct {
	Users  *service.UserService
	Meals  *service.MealService
	Tokens middleware.TokenValidator
	Health Pinger
	Logger *slog.Logger
}

type handler struct {
	users  *service.UserService
	meals  *service.MealService
	health Pinger
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &handler{users: d.Users, meals: d.Meals, health: d.Health}
	requireAuth := middleware.RequireAuth(d.Tokens)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, messageResponse{Message: "method not allowed"})
	})

	r.Get("/health", h.healthCheck)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.register)
		r.Post("/login", h.login)
		r.With(requireAuth).Get("/me", h.me)
	})

	r.Route("/meals", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", h.createMeal)
		r.Get("/", h.listMeals)
		r.Get("/summary", h.summary)
		r.Get("/{id}", h.getMeal)
		r.Put("/{id}", h.updateMeal)
		r.Delete("/{id}", h.deleteMeal)
	})

	return r
}

func (h *handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			slog.Error("Health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
