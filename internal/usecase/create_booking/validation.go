package create_booking

import (
	"fmt"
	"time"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(requestDate time.Time, now time.Time, minLeadDays, advanceBookingDays int) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if minLeadDays > 0 {
		minDate := today.AddDate(0, 0, minLeadDays)
		if requestDateOnly.Before(minDate) {
			return fmt.Errorf("%w: must book at least %d days in advance", ErrDateTooSoon, minLeadDays)
		}
	}

	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := today.AddDate(0, 0, advanceBookingDays)
	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateTimeSlot проверяет, что слот лежит в рабочих часах и выровнен по
// сетке слотов услуги. Занятость слота здесь НЕ проверяется: авторитетная
// проверка пересечений выполняется при подтверждении оплаты
func validateTimeSlot(startTime types.TimeString, durationMinutes, openHour, closeHour int) error {
	openMinutes := openHour * 60
	closeMinutes := closeHour * 60

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if startMinutes < openMinutes {
		return fmt.Errorf("%w: start time %s is before opening hour", ErrInvalidTimeSlot, startTime)
	}

	endMinutes := startMinutes + durationMinutes
	if endMinutes > closeMinutes {
		return fmt.Errorf("%w: slot %s does not fit before closing hour", ErrInvalidTimeSlot, startTime)
	}

	// Начало должно совпадать с сеткой: open + k*duration
	if (startMinutes-openMinutes)%durationMinutes != 0 {
		return fmt.Errorf("%w: start time %s is not aligned to the slot grid", ErrInvalidTimeSlot, startTime)
	}

	return nil
}

// validateNotice проверяет минимальный срок до начала слота для сегодняшней даты
func validateNotice(requestDate time.Time, startTime types.TimeString, now time.Time, minBookingNoticeMinutes int) error {
	if !isSameDay(requestDate, now) {
		return nil
	}

	slotInstant, err := startTime.At(requestDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	cutoff := now.Add(time.Duration(minBookingNoticeMinutes) * time.Minute)
	if !slotInstant.After(cutoff) {
		return ErrTooLateToBook
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
