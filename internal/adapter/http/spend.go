package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
	"pacekeeper/internal/core/port"
)

type recordSpendRequest struct {
	CampaignID  uuid.UUID `json:"campaign_id"`
	Amount      int64     `json:"amount"`
	SpendDate   string    `json:"spend_date"` // YYYY-MM-DD, defaults to today
	SpendType   string    `json:"spend_type"` // DAILY or MONTHLY, defaults to DAILY
	Description string    `json:"description"`
}

type spendResponse struct {
	ID          uuid.UUID `json:"id"`
	CampaignID  uuid.UUID `json:"campaign_id"`
	Amount      int64     `json:"amount"`
	SpendDate   string    `json:"spend_date"`
	SpendType   string    `json:"spend_type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type recordSpendResponse struct {
	Spend       spendResponse `json:"spend"`
	Status      string        `json:"status"`
	PauseReason *string       `json:"pause_reason"`
}

func toSpendResponse(s *domain.Spend) spendResponse {
	return spendResponse{
		ID:          s.ID,
		CampaignID:  s.CampaignID,
		Amount:      s.Amount,
		SpendDate:   s.SpendDate.Format("2006-01-02"),
		SpendType:   string(s.SpendType),
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// handleRecordSpend ingests a spend event. The response carries the created
// ledger entry and the campaign status that resulted from the synchronous
// budget check, so callers can see a pause they just caused.
func (h *Handler) handleRecordSpend(w http.ResponseWriter, r *http.Request) {
	var req recordSpendRequest
	if !h.decode(w, r, &req) {
		return
	}
	in := port.RecordSpendInput{
		CampaignID:  req.CampaignID,
		Amount:      req.Amount,
		SpendType:   domain.SpendType(req.SpendType),
		Description: req.Description,
	}
	if req.SpendDate != "" {
		date, err := time.Parse("2006-01-02", req.SpendDate)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid spend_date"})
			return
		}
		in.Date = date
	}
	result, err := h.svc.RecordSpend(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := recordSpendResponse{
		Spend:  toSpendResponse(&result.Spend),
		Status: string(result.Status),
	}
	if result.PauseReason != nil {
		reason := string(*result.PauseReason)
		resp.PauseReason = &reason
	}
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleListSpends(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	spends, err := h.svc.ListSpends(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]spendResponse, 0, len(spends))
	for i := range spends {
		out = append(out, toSpendResponse(&spends[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}
