package httpadapter

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
)

type createScheduleRequest struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	DayOfWeek  int       `json:"day_of_week"` // 0 = Monday .. 6 = Sunday
	StartTime  string    `json:"start_time"`  // HH:MM or HH:MM:SS
	EndTime    string    `json:"end_time"`
	IsActive   *bool     `json:"is_active"` // defaults to true
}

type scheduleResponse struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	DayOfWeek  int       `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	IsActive   bool      `json:"is_active"`
}

func parseTimeOfDay(s string) (domain.TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.TimeOfDayOf(t), nil
		}
	}
	return domain.TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

func formatTimeOfDay(t domain.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// handleCreateSchedule adds a dayparting rule for a campaign.
func (h *Handler) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if !h.decode(w, r, &req) {
		return
	}
	start, err := parseTimeOfDay(req.StartTime)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid start_time"})
		return
	}
	end, err := parseTimeOfDay(req.EndTime)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid end_time"})
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	schedule := &domain.Schedule{
		CampaignID: req.CampaignID,
		DayOfWeek:  domain.Weekday(req.DayOfWeek),
		StartTime:  start,
		EndTime:    end,
		IsActive:   active,
	}
	if err := h.svc.CreateSchedule(r.Context(), schedule); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, scheduleResponse{
		ID:         schedule.ID,
		CampaignID: schedule.CampaignID,
		DayOfWeek:  int(schedule.DayOfWeek),
		StartTime:  formatTimeOfDay(schedule.StartTime),
		EndTime:    formatTimeOfDay(schedule.EndTime),
		IsActive:   schedule.IsActive,
	})
}
