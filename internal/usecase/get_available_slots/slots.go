package get_available_slots

import (
	"fmt"
	"time"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/pkg/types"
)

// generateTimeSlots генерирует список кандидатов на день
// Слоты идут от часа открытия с фиксированным шагом в длительность услуги;
// кандидат не предлагается, если его окончание выходит за час закрытия
// Для текущего дня дополнительно отбрасываются слоты, начинающиеся не позже
// now + minBookingNoticeMinutes (строгое "позже": прошедшие и текущая минута
// не предлагаются)
func generateTimeSlots(
	openHour int,
	closeHour int,
	slotDuration int,
	requestDate time.Time,
	now time.Time,
	minBookingNoticeMinutes int,
) ([]types.TimeString, error) {
	// Дата в прошлом - слотов нет
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	openTime, err := types.NewTimeStringFromString(hourToTimeString(openHour))
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(hourToTimeString(closeHour))
	if err != nil {
		return nil, err
	}

	// Шаг 1: Генерируем ВСЕ слоты от открытия до закрытия с фиксированным шагом
	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		// Слот не должен выходить за время закрытия
		slotEnd, err := currentSlot.AddMinutes(slotDuration)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot = slotEnd
	}

	// Шаг 2: Если дата бронирования НЕ сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: Для сегодняшней даты фильтруем по моменту начала слота
	cutoff := now.Add(time.Duration(minBookingNoticeMinutes) * time.Minute)

	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		slotInstant, err := slot.At(requestDate)
		if err != nil {
			return nil, err
		}
		if slotInstant.After(cutoff) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// filterBlockedSlots убирает кандидатов, заблокированных администратором
// Блокировка имеет приоритет над любым состоянием бронирований
func filterBlockedSlots(slots []types.TimeString, blocked []*domain.BlockedSlot, date time.Time) []types.TimeString {
	if len(blocked) == 0 {
		return slots
	}

	result := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		isBlocked := false
		for _, b := range blocked {
			if b.Matches(date, slot) {
				isBlocked = true
				break
			}
		}
		if !isBlocked {
			result = append(result, slot)
		}
	}

	return result
}

// filterOverlappingSlots убирает кандидатов, пересекающихся с активными
// бронированиями. Пересечение интервалов проверяется честно, а не по
// равенству времени начала: 90-минутная услуга в 09:30 закрывает
// 60-минутный кандидат в 10:00
func filterOverlappingSlots(
	slots []types.TimeString,
	slotDuration int,
	bookings []*domain.Booking,
	now time.Time,
	pendingTTL time.Duration,
) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		if countOverlappingBookings(slot, slotDuration, bookings, now, pendingTTL) == 0 {
			result = append(result, slot)
		}
	}

	return result
}

// countOverlappingBookings подсчитывает количество активных бронирований,
// пересекающихся с указанным слотом
//
// Интервалы пересекаются, только если:
// - начало бронирования СТРОГО раньше конца слота И
// - конец бронирования СТРОГО позже начала слота
// Граничащие интервалы (конец одного == начало другого) НЕ пересекаются
func countOverlappingBookings(
	slotStart types.TimeString,
	slotDuration int,
	bookings []*domain.Booking,
	now time.Time,
	pendingTTL time.Duration,
) int {
	count := 0

	for _, booking := range bookings {
		// Пропускаем отмененные и просроченные pending бронирования
		if !booking.IsActiveAt(now, pendingTTL) {
			continue
		}

		overlaps, err := booking.Overlaps(slotStart, slotDuration)
		if err != nil {
			// Не можем вычислить интервал - пропускаем бронирование
			continue
		}

		if overlaps {
			count++
		}
	}

	return count
}

// hourToTimeString конвертирует час в "HH:00"
// Час 24 представляется как 23:59, поскольку TimeString не выходит за сутки
func hourToTimeString(hour int) string {
	if hour == 24 {
		return "23:59"
	}
	return fmt.Sprintf("%02d:00", hour)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
