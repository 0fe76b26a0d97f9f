package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/pkg/types"
)

func slotTimes(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerateTimeSlots_FullDay(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Рабочий день 9-19, услуга 60 минут: 10 слотов с 09:00 по 18:00
	slots, err := generateTimeSlots(9, 19, 60, date, now, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00", "18:00",
	}, slotTimes(slots))
}

func TestGenerateTimeSlots_SlotMustFitBeforeClose(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// 90-минутная услуга: последний слот 16:30, слот 18:00 не помещается
	slots, err := generateTimeSlots(9, 19, 90, date, now, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"09:00", "10:30", "12:00", "13:30", "15:00", "16:30",
	}, slotTimes(slots))
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	first, err := generateTimeSlots(9, 19, 120, date, now, 0)
	require.NoError(t, err)
	second, err := generateTimeSlots(9, 19, 120, date, now, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTimeSlots_PastDate(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(9, 19, 60, date, now, 0)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_TodayFiltersPassedSlots(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// 12:00 дня бронирования: слот 12:00 уже не предлагается (строго позже)
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(9, 19, 60, date, now, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"13:00", "14:00", "15:00", "16:00", "17:00", "18:00",
	}, slotTimes(slots))
}

func TestGenerateTimeSlots_TodayWithNotice(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 12, 30, 0, 0, time.UTC)

	// Минимум 60 минут до начала: 13:00 отсекается, 14:00 остается
	slots, err := generateTimeSlots(9, 19, 60, date, now, 60)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"14:00", "15:00", "16:00", "17:00", "18:00",
	}, slotTimes(slots))
}

func TestFilterBlockedSlots(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	slots := []types.TimeString{"09:00", "10:00", "11:00"}

	blocked := []*domain.BlockedSlot{
		{Date: date, Time: "10:00"},
		// Блокировка на другую дату не влияет
		{Date: date.AddDate(0, 0, 1), Time: "11:00"},
	}

	result := filterBlockedSlots(slots, blocked, date)
	assert.Equal(t, []string{"09:00", "11:00"}, slotTimes(result))
}

func TestFilterOverlappingSlots_StrictOverlap(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	// Подтвержденное бронирование 10:00-11:00
	bookings := []*domain.Booking{
		{
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	}

	slots := []types.TimeString{"09:00", "10:00", "11:00"}

	// Граничащие слоты 09:00-10:00 и 11:00-12:00 не считаются пересечением
	result := filterOverlappingSlots(slots, 60, bookings, now, ttl)
	assert.Equal(t, []string{"09:00", "11:00"}, slotTimes(result))
}

func TestFilterOverlappingSlots_DurationAware(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	// 90-минутное бронирование 09:30-11:00 закрывает 60-минутный слот 10:00
	bookings := []*domain.Booking{
		{
			StartTime:       "09:30",
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
		},
	}

	slots := []types.TimeString{"09:00", "10:00", "11:00"}

	result := filterOverlappingSlots(slots, 60, bookings, now, ttl)
	assert.Equal(t, []string{"11:00"}, slotTimes(result))
}

func TestFilterOverlappingSlots_IgnoresInactive(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	bookings := []*domain.Booking{
		// Отмененное бронирование освобождает слот
		{
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          domain.StatusCancelled,
		},
		// Просроченное pending тоже не занимает слот
		{
			StartTime:       "11:00",
			DurationMinutes: 60,
			Status:          domain.StatusPending,
			CreatedAt:       now.Add(-2 * time.Hour),
		},
		// Свежее pending занимает слот до истечения платежного окна
		{
			StartTime:       "12:00",
			DurationMinutes: 60,
			Status:          domain.StatusPending,
			CreatedAt:       now.Add(-10 * time.Minute),
		},
	}

	slots := []types.TimeString{"10:00", "11:00", "12:00"}

	result := filterOverlappingSlots(slots, 60, bookings, now, ttl)
	assert.Equal(t, []string{"10:00", "11:00"}, slotTimes(result))
}
