package get_booking

import (
	"time"

	"github.com/shvic/booking-service/internal/domain"
)

// BookingResponse HTTP модель бронирования
type BookingResponse struct {
	ID                 string  `json:"id"`
	BookingCode        string  `json:"bookingCode"`
	UserID             string  `json:"userId"`
	ServiceID          string  `json:"serviceId"`
	BookingDate        string  `json:"bookingDate"`
	StartTime          string  `json:"startTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"paymentStatus"`
	ServiceName        string  `json:"serviceName"`
	ServicePrice       float64 `json:"servicePrice"`
	Amount             float64 `json:"amount"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CancelledBy        *string `json:"cancelledBy,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain конвертирует бронирование в HTTP модель
func FromDomain(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		BookingCode:        b.BookingCode,
		UserID:             b.UserID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		Amount:             b.Amount,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledBy:        b.CancelledBy,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
