package httpadapter

import "net/http"

// The four batch operations are triggerable on demand with the same
// semantics as their scheduled runs; each returns its structured summary
// for the health-check reporter.

func (h *Handler) handleEnforceBudgets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.EnforceBudgets(r.Context()))
}

func (h *Handler) handleEnforceDayparting(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.EnforceDayparting(r.Context()))
}

func (h *Handler) handleResetDaily(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.ResetDaily(r.Context()))
}

func (h *Handler) handleResetMonthly(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.ResetMonthly(r.Context()))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Healthy(r.Context()); err != nil {
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "store unreachable"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
