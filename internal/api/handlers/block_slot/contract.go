package block_slot

import (
	"context"
	"time"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/pkg/types"
)

type BlackoutService interface {
	Block(ctx context.Context, date time.Time, t types.TimeString) (*domain.BlockedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
