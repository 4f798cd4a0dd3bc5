package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
)

type createCampaignRequest struct {
	BrandID         uuid.UUID `json:"brand_id"`
	Name            string    `json:"name"`
	DefaultSchedule bool      `json:"default_schedule"`
}

type campaignResponse struct {
	ID           uuid.UUID  `json:"id"`
	BrandID      uuid.UUID  `json:"brand_id"`
	Name         string     `json:"name"`
	Status       string     `json:"status"`
	PauseReason  *string    `json:"pause_reason"`
	PausedAt     *time.Time `json:"paused_at"`
	DailySpend   int64      `json:"daily_spend"`
	MonthlySpend int64      `json:"monthly_spend"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:           c.ID,
		BrandID:      c.BrandID,
		Name:         c.Name,
		Status:       string(c.Status),
		PausedAt:     c.PausedAt,
		DailySpend:   c.DailySpend,
		MonthlySpend: c.MonthlySpend,
	}
	if c.PauseReason != nil {
		reason := string(*c.PauseReason)
		resp.PauseReason = &reason
	}
	return resp
}

// handleCreateCampaign provisions a campaign, optionally with a default 24/7
// schedule so it is eligible on the next dayparting pass.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	campaign := &domain.Campaign{BrandID: req.BrandID, Name: req.Name}
	if err := h.svc.CreateCampaign(r.Context(), campaign, req.DefaultSchedule); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(campaign))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	campaign, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

// handlePauseCampaign is the administrative manual pause.
func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.PauseManual(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	campaign, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

type activateResponse struct {
	Activated bool             `json:"activated"`
	Campaign  campaignResponse `json:"campaign"`
}

// handleActivateCampaign attempts the gated activation; ?force=true bypasses
// eligibility (the emergency escape hatch).
func (h *Handler) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	force := r.URL.Query().Get("force") == "true"
	activated, err := h.svc.Activate(r.Context(), id, force)
	if err != nil {
		h.writeError(w, err)
		return
	}
	campaign, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, activateResponse{
		Activated: activated,
		Campaign:  toCampaignResponse(campaign),
	})
}
