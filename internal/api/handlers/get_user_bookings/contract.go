package get_user_bookings

import (
	"context"

	"github.com/shvic/booking-service/internal/domain"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
