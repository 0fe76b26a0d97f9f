package unblock_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/shvic/booking-service/internal/api/handlers"
	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/service/blackout"
	"github.com/shvic/booking-service/pkg/types"
)

const (
	msgMissingDate = "date query parameter is required"
	msgMissingTime = "time query parameter is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime = "invalid time format, expected HH:MM"
	msgNotBlocked  = "slot is not blocked"
)

type Handler struct {
	service BlackoutService
	logger  Logger
}

func NewHandler(service BlackoutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/blocked-slots?date={YYYY-MM-DD}&time={HH:MM}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("DELETE /admin/blocked-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("DELETE /admin/blocked-slots - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slotTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-slots - Invalid time %q: %v", timeStr, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.service.Unblock(r.Context(), date, slotTime); err != nil {
		switch {
		case errors.Is(err, blackout.ErrNotBlocked):
			h.logger.Warn("DELETE /admin/blocked-slots - Not blocked: date=%s, time=%s", dateStr, timeStr)
			handlers.RespondNotFound(w, msgNotBlocked)

		case errors.Is(err, blackout.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/blocked-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /admin/blocked-slots - Failed to unblock slot: date=%s, time=%s, error=%v",
				dateStr, timeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-slots - Slot unblocked: date=%s, time=%s", dateStr, timeStr)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
