package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(requestDate time.Time, now time.Time, minLeadDays, advanceBookingDays int) error {
	// Дата в прошлом недопустима
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	// Минимальный срок предзаписи
	if minLeadDays > 0 {
		minDate := today.AddDate(0, 0, minLeadDays)
		if requestDateOnly.Before(minDate) {
			return fmt.Errorf("%w: must book at least %d days in advance", ErrDateTooSoon, minLeadDays)
		}
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := today.AddDate(0, 0, advanceBookingDays)
	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
