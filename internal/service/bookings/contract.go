package bookings

import (
	"context"
	"time"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/integrations/notifyservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, reason string, cancelledBy string) error
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	NotifyCancelled(ctx context.Context, notification notifyservice.BookingNotification) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
