package block_slot

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
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgAlreadyBlocked     = "slot is already blocked"
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

// Handle POST /api/v1/admin/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid time %q: %v", req.Time, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	slot, err := h.service.Block(r.Context(), date, slotTime)
	if err != nil {
		switch {
		case errors.Is(err, blackout.ErrAlreadyBlocked):
			h.logger.Warn("POST /admin/blocked-slots - Already blocked: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, blackout.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/blocked-slots - Failed to block slot: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-slots - Slot blocked: date=%s, time=%s", req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(slot))
}
