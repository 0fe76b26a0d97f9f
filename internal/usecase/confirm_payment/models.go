package confirm_payment

import (
	"time"

	"github.com/shvic/booking-service/pkg/types"
)

// Request модель запроса на подтверждение оплаты
type Request struct {
	UserID        string // ID пользователя, владельца бронирования
	BookingID     string // ID бронирования
	TransactionID string // ID транзакции платежного шлюза
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	ID              string
	BookingCode     string
	UserID          string
	ServiceID       string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	PaymentStatus   string
	ServiceName     string
	Amount          float64
	UpdatedAt       time.Time
}
