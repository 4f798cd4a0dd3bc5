package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pacekeeper/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes spend ingestion, the
// administrative provisioning surface, and on-demand triggers for the four
// batch operations the periodic scheduler also runs.
type Handler struct {
	svc     port.Engine
	logger  *slog.Logger
	metrics http.Handler
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. The metrics
// handler is mounted at /metrics when non-nil.
func NewHandler(svc port.Engine, logger *slog.Logger, metrics http.Handler) *Handler {
	h := &Handler{svc: svc, logger: logger, metrics: metrics}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/brands", h.handleCreateBrand)
		r.Get("/brands/{id}", h.handleGetBrand)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Post("/campaigns/{id}/pause", h.handlePauseCampaign)
		r.Post("/campaigns/{id}/activate", h.handleActivateCampaign)
		r.Get("/campaigns/{id}/spends", h.handleListSpends)

		r.Post("/schedules", h.handleCreateSchedule)
		r.Post("/spends", h.handleRecordSpend)

		r.Post("/enforce/budgets", h.handleEnforceBudgets)
		r.Post("/enforce/dayparting", h.handleEnforceDayparting)
		r.Post("/reset/daily", h.handleResetDaily)
		r.Post("/reset/monthly", h.handleResetMonthly)
	})
	r.Get("/health", h.handleHealth)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
