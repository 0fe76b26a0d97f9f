package confirm_payment

import (
	"time"

	"github.com/shvic/booking-service/internal/domain"
	confirmPayment "github.com/shvic/booking-service/internal/usecase/confirm_payment"
)

// ConfirmPaymentRequest HTTP request model
type ConfirmPaymentRequest struct {
	TransactionID string `json:"transactionId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	BookingCode     string  `json:"bookingCode"`
	UserID          string  `json:"userId"`
	ServiceID       string  `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	ServiceName     string  `json:"serviceName"`
	Amount          float64 `json:"amount"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		BookingCode:     resp.BookingCode,
		UserID:          resp.UserID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		ServiceName:     resp.ServiceName,
		Amount:          resp.Amount,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
