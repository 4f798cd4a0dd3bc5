package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
)

type createBrandRequest struct {
	Name          string `json:"name"`
	DailyBudget   int64  `json:"daily_budget"`
	MonthlyBudget int64  `json:"monthly_budget"`
}

type brandResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DailyBudget   int64     `json:"daily_budget"`
	MonthlyBudget int64     `json:"monthly_budget"`
	CreatedAt     time.Time `json:"created_at"`
}

func toBrandResponse(b *domain.Brand) brandResponse {
	return brandResponse{
		ID:            b.ID,
		Name:          b.Name,
		DailyBudget:   b.DailyBudget,
		MonthlyBudget: b.MonthlyBudget,
		CreatedAt:     b.CreatedAt,
	}
}

// handleCreateBrand creates a brand with its daily and monthly caps in cents.
func (h *Handler) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var req createBrandRequest
	if !h.decode(w, r, &req) {
		return
	}
	brand := &domain.Brand{
		Name:          req.Name,
		DailyBudget:   req.DailyBudget,
		MonthlyBudget: req.MonthlyBudget,
	}
	if err := h.svc.CreateBrand(r.Context(), brand); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toBrandResponse(brand))
}

func (h *Handler) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	brand, err := h.svc.GetBrand(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBrandResponse(brand))
}
