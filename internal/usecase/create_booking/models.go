package create_booking

import (
	"time"

	"github.com/shvic/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    string           // ID пользователя (выдан коллаборатором аутентификации)
	ServiceID string           // ID услуги из каталога
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Дополнительные пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string           // ID созданного бронирования
	BookingCode     string           // Человекочитаемый код для клиента
	UserID          string           // ID пользователя
	ServiceID       string           // ID услуги
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус жизненного цикла
	PaymentStatus   string           // Статус оплаты

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64
	Amount       float64
	Notes        *string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
