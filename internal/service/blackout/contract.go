package blackout

import (
	"context"
	"time"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/pkg/types"
)

// BlockedSlotRepository интерфейс репозитория заблокированных слотов
type BlockedSlotRepository interface {
	Block(ctx context.Context, date time.Time, t types.TimeString) (*domain.BlockedSlot, error)
	Unblock(ctx context.Context, date time.Time, t types.TimeString) error
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
	ListAll(ctx context.Context) ([]*domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
