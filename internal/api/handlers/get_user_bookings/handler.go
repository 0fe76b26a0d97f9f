package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shvic/booking-service/internal/api/handlers"
	"github.com/shvic/booking-service/internal/api/middleware"
	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/service/bookings"
	"github.com/shvic/booking-service/pkg/ptr"
)

const (
	msgMissingUserID = "missing user id"
	msgForbidden     = "access denied"
	msgInvalidStatus = "invalid status, expected pending, confirmed or cancelled"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings?status={status}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetUserID := vars["userId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Свои бронирования видит владелец, чужие - только администратор
	if targetUserID != userID && !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: user_id=%s, target=%s", userID, targetUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var status *domain.BookingStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		s := domain.BookingStatus(statusStr)
		switch s {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
			status = ptr.Ptr(s)
		default:
			h.logger.Warn("GET /users/{id}/bookings - Invalid status: %s", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
	}

	list, err := h.service.GetUserBookings(r.Context(), targetUserID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%s, error=%v",
				targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - %d bookings returned: user_id=%s", len(list), targetUserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(targetUserID, list))
}
