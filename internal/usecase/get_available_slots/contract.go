package get_available_slots

import (
	"context"
	"time"

	"github.com/shvic/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает бронирования на конкретную дату (без отмененных)
	GetByDate(ctx context.Context, filter domain.BookingsDateFilter) ([]*domain.Booking, error)
}

// BlockedSlotRepository интерфейс реестра заблокированных слотов
type BlockedSlotRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetByID(id string) (*domain.Service, error)
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
