package cancel_booking

import (
	"time"

	"github.com/shvic/booking-service/internal/domain"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelledBookingResponse HTTP модель отмененного бронирования
type CancelledBookingResponse struct {
	ID                 string  `json:"id"`
	BookingCode        string  `json:"bookingCode"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CancelledBy        *string `json:"cancelledBy,omitempty"`
}

// FromDomain конвертирует отмененное бронирование в HTTP модель
func FromDomain(b *domain.Booking) *CancelledBookingResponse {
	resp := &CancelledBookingResponse{
		ID:                 b.ID,
		BookingCode:        b.BookingCode,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CancelledBy:        b.CancelledBy,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
