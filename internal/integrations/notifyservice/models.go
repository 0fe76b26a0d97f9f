package notifyservice

// BookingNotification данные бронирования для письма клиенту
type BookingNotification struct {
	BookingID   string  `json:"bookingId"`
	BookingCode string  `json:"bookingCode"`
	UserID      string  `json:"userId"`
	ServiceName string  `json:"serviceName"`
	Date        string  `json:"date"`      // YYYY-MM-DD
	StartTime   string  `json:"startTime"` // HH:MM
	Amount      float64 `json:"amount"`
	CancelledBy string  `json:"cancelledBy,omitempty"`
}
