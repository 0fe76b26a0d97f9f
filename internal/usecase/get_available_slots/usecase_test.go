package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shvic/booking-service/internal/config"
	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/service/catalog"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ domain.BookingsDateFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeBlockedRepo struct {
	blocked []*domain.BlockedSlot
}

func (f *fakeBlockedRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.BlockedSlot, error) {
	return f.blocked, nil
}

type fakeCatalog struct {
	services map[string]*domain.Service
}

func (f *fakeCatalog) GetByID(id string) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalog.ErrServiceNotFound
	}
	return svc, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPolicy() config.BookingConfig {
	return config.BookingConfig{
		OpenHour:                9,
		CloseHour:               19,
		MinLeadDays:             0,
		AdvanceBookingDays:      60,
		MinBookingNoticeMinutes: 0,
		PendingTTLMinutes:       30,
	}
}

func newTestUseCase(bookings []*domain.Booking, blocked []*domain.BlockedSlot, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeBlockedRepo{blocked: blocked},
		&fakeCatalog{services: map[string]*domain.Service{
			"classic":   {ID: "classic", Name: "Classic", DurationMinutes: 60, Price: 3500},
			"signature": {ID: "signature", Name: "Signature", DurationMinutes: 90, Price: 6500},
		}},
		testPolicy(),
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func responseTimes(resp *Response) []string {
	out := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		out[i] = s.StartTime.String()
	}
	return out
}

func TestExecute_EmptyDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "classic", Date: date})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00", "18:00",
	}, responseTimes(resp))

	for _, slot := range resp.Slots {
		assert.Equal(t, 60, slot.DurationMinutes)
	}
}

func TestExecute_ConfirmedBookingExcludesSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{
			ID:              "b1",
			StartTime:       "11:00",
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
			BookingDate:     date,
		},
	}

	uc := newTestUseCase(bookings, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "classic", Date: date})
	require.NoError(t, err)

	times := responseTimes(resp)
	assert.NotContains(t, times, "11:00")
	assert.Contains(t, times, "10:00")
	assert.Contains(t, times, "12:00")
}

func TestExecute_BlockedSlotExcludedEvenWithoutBookings(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	blocked := []*domain.BlockedSlot{
		{Date: date, Time: "14:00"},
	}

	uc := newTestUseCase(nil, blocked, now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "classic", Date: date})
	require.NoError(t, err)

	assert.NotContains(t, responseTimes(resp), "14:00")
	assert.Len(t, resp.Slots, 9)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{
			ID:              "b1",
			StartTime:       "11:00",
			DurationMinutes: 60,
			Status:          domain.StatusCancelled,
			BookingDate:     date,
		},
	}

	uc := newTestUseCase(bookings, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "classic", Date: date})
	require.NoError(t, err)

	assert.Contains(t, responseTimes(resp), "11:00")
}

func TestExecute_LongerServiceOverlapsShorterGrid(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// 90-минутное бронирование 10:30-12:00 закрывает 60-минутные слоты 10:00, 11:00
	bookings := []*domain.Booking{
		{
			ID:              "b1",
			StartTime:       "10:30",
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
			BookingDate:     date,
		},
	}

	uc := newTestUseCase(bookings, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "classic", Date: date})
	require.NoError(t, err)

	times := responseTimes(resp)
	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "11:00")
	assert.Contains(t, times, "09:00")
	assert.Contains(t, times, "12:00")
}

func TestExecute_ExpiredPendingFreesSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		// pending, создано час назад при TTL 30 минут
		{
			ID:              "b1",
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          domain.StatusPending,
			BookingDate:     date,
			CreatedAt:       now.Add(-time.Hour),
		},
		// pending в пределах платежного окна
		{
			ID:              "b2",
			StartTime:       "11:00",
			DurationMinutes: 60,
			Status:          domain.StatusPending,
			BookingDate:     date,
			CreatedAt:       now.Add(-5 * time.Minute),
		},
	}

	uc := newTestUseCase(bookings, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "classic", Date: date})
	require.NoError(t, err)

	times := responseTimes(resp)
	assert.Contains(t, times, "10:00")
	assert.NotContains(t, times, "11:00")
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "unknown", Date: date})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_DateValidation(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: "classic",
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{
		ServiceID: "classic",
		Date:      time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_NinetyMinuteServiceGrid(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "signature", Date: date})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "10:30", "12:00", "13:30", "15:00", "16:30",
	}, responseTimes(resp))
}
