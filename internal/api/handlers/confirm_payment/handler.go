package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shvic/booking-service/internal/api/handlers"
	"github.com/shvic/booking-service/internal/api/middleware"
	confirmPayment "github.com/shvic/booking-service/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user id"
	msgNotFound           = "booking not found"
	msgForbidden          = "access denied"
	msgAlreadyConfirmed   = "booking is already confirmed"
	msgBookingCancelled   = "booking is cancelled"
	msgBookingExpired     = "booking payment window has expired"
	msgSlotConflict       = "slot is already taken"
	msgSlotBlocked        = "slot is blocked by administrator"
	msgPaymentDeclined    = "payment was declined"
	msgPaymentUnavailable = "payment gateway is unavailable, try again later"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/confirm-payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/confirm-payment - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm-payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		UserID:        userID,
		BookingID:     bookingID,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPayment.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Access denied: booking_id=%s, user_id=%s",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmPayment.ErrAlreadyConfirmed):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Already confirmed: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, confirmPayment.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Booking cancelled: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, confirmPayment.ErrBookingExpired):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Payment window expired: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgBookingExpired)

		case errors.Is(err, confirmPayment.ErrSlotConflict):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Slot conflict: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, confirmPayment.ErrSlotBlocked):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Slot blocked: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotBlocked)

		case errors.Is(err, confirmPayment.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Payment declined: booking_id=%s, transaction=%s",
				bookingID, req.TransactionID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		case errors.Is(err, confirmPayment.ErrPaymentUnavailable):
			h.logger.Error("POST /bookings/{id}/confirm-payment - Payment gateway unavailable: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPaymentUnavailable)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/{id}/confirm-payment - Failed to confirm payment: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/confirm-payment - Payment confirmed: booking_id=%s, user_id=%s",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
