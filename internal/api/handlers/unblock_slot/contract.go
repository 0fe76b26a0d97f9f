package unblock_slot

import (
	"context"
	"time"

	"github.com/shvic/booking-service/pkg/types"
)

type BlackoutService interface {
	Unblock(ctx context.Context, date time.Time, t types.TimeString) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
