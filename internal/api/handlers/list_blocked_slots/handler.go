package list_blocked_slots

import (
	"net/http"
	"time"

	"github.com/shvic/booking-service/internal/api/handlers"
	"github.com/shvic/booking-service/internal/domain"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

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

// Handle GET /api/v1/admin/blocked-slots?date={YYYY-MM-DD}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/blocked-slots - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	slots, err := h.service.List(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/blocked-slots - Failed to list blocked slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blocked-slots - %d blocked slots listed", len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(slots))
}
