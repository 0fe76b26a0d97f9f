package list_blocked_slots

import (
	"context"
	"time"

	"github.com/shvic/booking-service/internal/domain"
)

type BlackoutService interface {
	List(ctx context.Context, date *time.Time) ([]*domain.BlockedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
