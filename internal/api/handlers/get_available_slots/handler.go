package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/shvic/booking-service/internal/api/handlers"
	"github.com/shvic/booking-service/internal/api/middleware"
	"github.com/shvic/booking-service/internal/domain"
	getAvailableSlots "github.com/shvic/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID = "serviceId query parameter is required"
	msgMissingDate      = "date query parameter is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgServiceNotFound  = "service not found"
	msgDateInPast       = "booking date must not be in the past"
	msgDateTooSoon      = "booking date is too soon"
	msgDateTooFar       = "booking date is too far in the future"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?serviceId={id}&date={YYYY-MM-DD}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := r.URL.Query().Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /available-slots - Missing serviceId")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Выдача слотов публичная, ID пользователя попадает только в логи
	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UserID:    userID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Date in past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooSoon):
			h.logger.Warn("GET /available-slots - Date too soon: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooSoon)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /available-slots - Date too far in future: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: service_id=%s, date=%s, error=%v",
				serviceID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots returned: service_id=%s, date=%s",
		len(result.Slots), serviceID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
