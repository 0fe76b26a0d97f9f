package cancel_booking

import (
	"context"

	"github.com/shvic/booking-service/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, userID string, isAdmin bool, bookingID string, reason string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
