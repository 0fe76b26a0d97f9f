package confirm_payment

import (
	"context"
	"time"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/integrations/notifyservice"
	"github.com/shvic/booking-service/internal/integrations/paymentservice"
	"github.com/shvic/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByDate(ctx context.Context, filter domain.BookingsDateFilter) ([]*domain.Booking, error)
	ConfirmPayment(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string, reason string, cancelledBy string) error
}

// BlockedSlotRepository интерфейс репозитория заблокированных слотов
type BlockedSlotRepository interface {
	IsBlocked(ctx context.Context, date time.Time, t types.TimeString) (bool, error)
}

// PaymentClient интерфейс клиента платежного шлюза
type PaymentClient interface {
	VerifyReceipt(ctx context.Context, receipt paymentservice.Receipt) error
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	NotifyConfirmed(ctx context.Context, notification notifyservice.BookingNotification) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
