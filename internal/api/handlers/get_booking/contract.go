package get_booking

import (
	"context"

	"github.com/shvic/booking-service/internal/domain"
)

type BookingService interface {
	GetByID(ctx context.Context, userID string, isAdmin bool, bookingID string) (*domain.Booking, error)
	GetByCode(ctx context.Context, userID string, isAdmin bool, code string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
