package get_user_bookings

import (
	"time"

	"github.com/shvic/booking-service/internal/domain"
)

// BookingResponse HTTP модель бронирования в списке
type BookingResponse struct {
	ID              string  `json:"id"`
	BookingCode     string  `json:"bookingCode"`
	ServiceID       string  `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	ServiceName     string  `json:"serviceName"`
	Amount          float64 `json:"amount"`
	CreatedAt       string  `json:"createdAt"`
}

// UserBookingsResponse HTTP модель ответа со списком бронирований
type UserBookingsResponse struct {
	UserID   string            `json:"userId"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomain конвертирует бронирования пользователя в HTTP модель
func FromDomain(userID string, list []*domain.Booking) *UserBookingsResponse {
	bookings := make([]BookingResponse, len(list))
	for i, b := range list {
		bookings[i] = BookingResponse{
			ID:              b.ID,
			BookingCode:     b.BookingCode,
			ServiceID:       b.ServiceID,
			BookingDate:     b.BookingDate.Format(domain.DateFormat),
			StartTime:       b.StartTime.String(),
			DurationMinutes: b.DurationMinutes,
			Status:          string(b.Status),
			PaymentStatus:   string(b.PaymentStatus),
			ServiceName:     b.ServiceName,
			Amount:          b.Amount,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		}
	}

	return &UserBookingsResponse{
		UserID:   userID,
		Bookings: bookings,
	}
}
