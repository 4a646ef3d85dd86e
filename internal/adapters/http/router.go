// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Startups *handlers.StartupHandler
	Phases   *handlers.PhaseHandler
	Tasks    *handlers.TaskHandler
	Health   *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/startups", h.Startups.ListStartups)
		r.Post("/startups", h.Startups.CreateStartup)

		r.Get("/startups/{startupId}/phases", h.Phases.ListPhases)
		r.Post("/startups/{startupId}/phases", h.Phases.CreatePhase)

		r.Get("/phases/{phaseId}/tasks", h.Tasks.ListTasks)
		r.Post("/phases/{phaseId}/tasks", h.Tasks.CreateTask)
		r.Post("/tasks/{taskId}/toggle", h.Tasks.ToggleTask)
	})

	return r
}

// NewHandlers builds the handler set over one service port.
func NewHandlers(svc ports.TrackerService, registry ports.HealthRegistry) Handlers {
	return Handlers{
		Startups: handlers.NewStartupHandler(svc),
		Phases:   handlers.NewPhaseHandler(svc),
		Tasks:    handlers.NewTaskHandler(svc),
		Health:   handlers.NewHealthHandler(registry),
	}
}
