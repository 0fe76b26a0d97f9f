package blackout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/infra/storage/blockedslot"
	"github.com/shvic/booking-service/pkg/types"
)

type fakeBlockedRepo struct {
	slots map[string]*domain.BlockedSlot
	nexID int64
}

func newFakeBlockedRepo() *fakeBlockedRepo {
	return &fakeBlockedRepo{slots: make(map[string]*domain.BlockedSlot)}
}

func key(date time.Time, t types.TimeString) string {
	return date.Format(domain.DateFormat) + " " + t.String()
}

func (f *fakeBlockedRepo) Block(_ context.Context, date time.Time, t types.TimeString) (*domain.BlockedSlot, error) {
	k := key(date, t)
	if _, ok := f.slots[k]; ok {
		return nil, blockedslot.ErrAlreadyBlocked
	}
	f.nexID++
	slot := &domain.BlockedSlot{ID: f.nexID, Date: date, Time: t, CreatedAt: time.Now()}
	f.slots[k] = slot
	return slot, nil
}

func (f *fakeBlockedRepo) Unblock(_ context.Context, date time.Time, t types.TimeString) error {
	k := key(date, t)
	if _, ok := f.slots[k]; !ok {
		return blockedslot.ErrNotFound
	}
	delete(f.slots, k)
	return nil
}

func (f *fakeBlockedRepo) ListByDate(_ context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	result := make([]*domain.BlockedSlot, 0)
	for _, s := range f.slots {
		if s.Date.Equal(date) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeBlockedRepo) ListAll(_ context.Context) ([]*domain.BlockedSlot, error) {
	result := make([]*domain.BlockedSlot, 0, len(f.slots))
	for _, s := range f.slots {
		result = append(result, s)
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestBlockUnblockRoundTrip(t *testing.T) {
	svc := NewService(newFakeBlockedRepo(), nopLogger{})
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	slot, err := svc.Block(context.Background(), date, "10:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), slot.Time)

	// Повторная блокировка той же пары
	_, err = svc.Block(context.Background(), date, "10:00")
	assert.ErrorIs(t, err, ErrAlreadyBlocked)

	require.NoError(t, svc.Unblock(context.Background(), date, "10:00"))

	// Снятие блокировки с незаблокированной пары
	err = svc.Unblock(context.Background(), date, "10:00")
	assert.ErrorIs(t, err, ErrNotBlocked)
}

func TestList_ByDateAndAll(t *testing.T) {
	svc := NewService(newFakeBlockedRepo(), nopLogger{})
	date1 := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	date2 := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	_, err := svc.Block(context.Background(), date1, "10:00")
	require.NoError(t, err)
	_, err = svc.Block(context.Background(), date1, "11:00")
	require.NoError(t, err)
	_, err = svc.Block(context.Background(), date2, "10:00")
	require.NoError(t, err)

	byDate, err := svc.List(context.Background(), &date1)
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestValidation(t *testing.T) {
	svc := NewService(newFakeBlockedRepo(), nopLogger{})
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := svc.Block(context.Background(), time.Time{}, "10:00")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Block(context.Background(), date, "bad")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
