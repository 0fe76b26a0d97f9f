package get_available_slots

import (
	"time"

	"github.com/shvic/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID    string    // ID пользователя (для логирования, не влияет на результат)
	ServiceID string    // ID услуги из каталога
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	ServiceID string    // ID услуги
	Slots     []Slot    // Список доступных слотов по возрастанию времени
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
}
