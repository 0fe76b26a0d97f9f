package confirm_payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shvic/booking-service/internal/config"
	"github.com/shvic/booking-service/internal/domain"
	storage "github.com/shvic/booking-service/internal/infra/storage/booking"
	"github.com/shvic/booking-service/internal/integrations/notifyservice"
	"github.com/shvic/booking-service/internal/integrations/paymentservice"
	"github.com/shvic/booking-service/pkg/types"
)

// fakeBookingRepo потокобезопасное in-memory хранилище бронирований
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		copied := *b
		m[b.ID] = &copied
	}
	return &fakeBookingRepo{bookings: m}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, filter domain.BookingsDateFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if !b.BookingDate.Equal(filter.Date) {
			continue
		}
		if !filter.IncludeInactive && b.Status == domain.StatusCancelled {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeBookingRepo) ConfirmPayment(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok || b.Status != domain.StatusPending {
		return storage.ErrBookingNotFound
	}
	b.Status = domain.StatusConfirmed
	b.PaymentStatus = domain.PaymentCompleted
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string, reason string, cancelledBy string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	b.CancelledBy = &cancelledBy
	return nil
}

func (f *fakeBookingRepo) get(id string) *domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *f.bookings[id]
	return &copied
}

type fakeBlockedRepo struct {
	blocked map[string]bool
}

func (f *fakeBlockedRepo) IsBlocked(_ context.Context, date time.Time, t types.TimeString) (bool, error) {
	return f.blocked[date.Format(domain.DateFormat)+" "+t.String()], nil
}

type fakePaymentClient struct {
	err   error
	calls int
}

func (f *fakePaymentClient) VerifyReceipt(_ context.Context, _ paymentservice.Receipt) error {
	f.calls++
	return f.err
}

type fakeNotifyClient struct {
	err      error
	notified chan notifyservice.BookingNotification
}

func newFakeNotifyClient(err error) *fakeNotifyClient {
	return &fakeNotifyClient{err: err, notified: make(chan notifyservice.BookingNotification, 10)}
}

func (f *fakeNotifyClient) NotifyConfirmed(_ context.Context, n notifyservice.BookingNotification) error {
	f.notified <- n
	return f.err
}

// serialTxManager сериализует транзакции глобальным мьютексом,
// имитируя поведение serializable изоляции с блокировкой строк
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
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
		AdvanceBookingDays:      60,
		MinBookingNoticeMinutes: 0,
		PendingTTLMinutes:       30,
	}
}

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func pendingBooking(id, userID string, start types.TimeString, createdAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		BookingCode:     "CODE" + id,
		UserID:          userID,
		ServiceID:       "classic",
		BookingDate:     testDate,
		StartTime:       start,
		DurationMinutes: 60,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		ServiceName:     "Classic",
		ServicePrice:    3500,
		Amount:          3500,
		CreatedAt:       createdAt,
	}
}

func newTestUseCase(
	repo *fakeBookingRepo,
	blocked *fakeBlockedRepo,
	payment *fakePaymentClient,
	notify *fakeNotifyClient,
	now time.Time,
) *UseCase {
	if blocked == nil {
		blocked = &fakeBlockedRepo{}
	}
	uc := NewUseCase(repo, blocked, payment, notify, &serialTxManager{}, testPolicy(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_ConfirmsPendingBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(pendingBooking("b1", "user-1", "10:00", now.Add(-5*time.Minute)))
	notify := newFakeNotifyClient(nil)

	uc := newTestUseCase(repo, nil, &fakePaymentClient{}, notify, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", BookingID: "b1", TransactionID: "tx-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "completed", resp.PaymentStatus)

	stored := repo.get("b1")
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.Equal(t, domain.PaymentCompleted, stored.PaymentStatus)

	// Уведомление отправляется после подтверждения
	select {
	case n := <-notify.notified:
		assert.Equal(t, "b1", n.BookingID)
	case <-time.After(time.Second):
		t.Fatal("expected confirmation notification")
	}
}

func TestExecute_SlotConflictWithConfirmed(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	confirmed := pendingBooking("b1", "user-1", "10:00", now.Add(-5*time.Minute))
	confirmed.Status = domain.StatusConfirmed
	confirmed.PaymentStatus = domain.PaymentCompleted

	repo := newFakeBookingRepo(
		confirmed,
		pendingBooking("b2", "user-2", "10:00", now.Add(-5*time.Minute)),
	)

	uc := newTestUseCase(repo, nil, &fakePaymentClient{}, newFakeNotifyClient(nil), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-2", BookingID: "b2", TransactionID: "tx-2",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, domain.StatusPending, repo.get("b2").Status)
}

func TestExecute_OverlapConflictAcrossDurations(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Подтвержденное 90-минутное 09:30-11:00 пересекается с 60-минутным 10:00
	confirmed := pendingBooking("b1", "user-1", "09:30", now.Add(-5*time.Minute))
	confirmed.DurationMinutes = 90
	confirmed.Status = domain.StatusConfirmed

	repo := newFakeBookingRepo(
		confirmed,
		pendingBooking("b2", "user-2", "10:00", now.Add(-5*time.Minute)),
	)

	uc := newTestUseCase(repo, nil, &fakePaymentClient{}, newFakeNotifyClient(nil), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-2", BookingID: "b2", TransactionID: "tx-2",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_AdjacentSlotsDoNotConflict(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	confirmed := pendingBooking("b1", "user-1", "09:00", now.Add(-5*time.Minute))
	confirmed.Status = domain.StatusConfirmed

	repo := newFakeBookingRepo(
		confirmed,
		// 10:00 начинается ровно в момент окончания 09:00-10:00
		pendingBooking("b2", "user-2", "10:00", now.Add(-5*time.Minute)),
	)

	uc := newTestUseCase(repo, nil, &fakePaymentClient{}, newFakeNotifyClient(nil), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-2", BookingID: "b2", TransactionID: "tx-2",
	})
	assert.NoError(t, err)
}

func TestExecute_ConcurrentConfirms_ExactlyOneWins(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Два pending на один слот: оба прошли createPending без проверки занятости
	repo := newFakeBookingRepo(
		pendingBooking("b1", "user-1", "10:00", now.Add(-5*time.Minute)),
		pendingBooking("b2", "user-2", "10:00", now.Add(-5*time.Minute)),
	)

	uc := newTestUseCase(repo, nil, &fakePaymentClient{}, newFakeNotifyClient(nil), now)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i, req := range []*Request{
		{UserID: "user-1", BookingID: "b1", TransactionID: "tx-1"},
		{UserID: "user-2", BookingID: "b2", TransactionID: "tx-2"},
	} {
		wg.Add(1)
		go func(i int, req *Request) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i, req)
	}
	wg.Wait()

	confirmed, conflicted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			confirmed++
		case errors.Is(err, ErrSlotConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, confirmed, "exactly one confirmation must win")
	assert.Equal(t, 1, conflicted, "the other must get a slot conflict")
}

func TestExecute_PaymentDeclined_StaysPending(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(pendingBooking("b1", "user-1", "10:00", now.Add(-5*time.Minute)))

	uc := newTestUseCase(repo, nil, &fakePaymentClient{err: paymentservice.ErrPaymentDeclined},
		newFakeNotifyClient(nil), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", BookingID: "b1", TransactionID: "tx-1",
	})
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	// Отказ шлюза не отменяет бронирование, клиент может повторить
	assert.Equal(t, domain.StatusPending, repo.get("b1").Status)
}

func TestExecute_PaymentGatewayUnavailable_StaysPending(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(pendingBooking("b1", "user-1", "10:00", now.Add(-5*time.Minute)))

	uc := newTestUseCase(repo, nil, &fakePaymentClient{err: paymentservice.ErrUnavailable},
		newFakeNotifyClient(nil), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", BookingID: "b1", TransactionID: "tx-1",
	})
	assert.ErrorIs(t, err, ErrPaymentUnavailable)
	assert.Equal(t, domain.StatusPending, repo.get("b1").Status)
}

func TestExecute_NotificationFailureDoesNotFailConfirmation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(pendingBooking("b1", "user-1", "10:00", now.Add(-5*time.Minute)))
	notify := newFakeNotifyClient(notifyservice.ErrDispatchFailed)

	uc := newTestUseCase(repo, nil, &fakePaymentClient{}, notify, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", BookingID: "b1", TransactionID: "tx-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	select {
	case <-notify.notified:
	case <-time.After(time.Second):
		t.Fatal("expected notification attempt")
	}
	assert.Equal(t, domain.StatusConfirmed, repo.get("b1").Status)
}

func TestExecute_ExpiredPending(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Создано час назад при TTL 30 минут
	repo := newFakeBookingRepo(pendingBooking("b1", "user-1", "10:00", now.Add(-time.Hour)))
	payment := &fakePaymentClient{}

	uc := newTestUseCase(repo, nil, payment, newFakeNotifyClient(nil), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", BookingID: "b1", TransactionID: "tx-1",
	})
	assert.ErrorIs(t, err, ErrBookingExpired)

	// Просроченное бронирование отменяется, шлюз не вызывается
	assert.Equal(t, domain.StatusCancelled, repo.get("b1").Status)
	assert.Equal(t, 0, payment.calls)
}

func TestExecute_BlockedSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(pendingBooking("b1", "user-1", "10:00", now.Add(-5*time.Minute)))
	blocked := &fakeBlockedRepo{blocked: map[string]bool{"2026-09-15 10:00": true}}

	uc := newTestUseCase(repo, blocked, &fakePaymentClient{}, newFakeNotifyClient(nil), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", BookingID: "b1", TransactionID: "tx-1",
	})
	assert.ErrorIs(t, err, ErrSlotBlocked)
}

func TestExecute_StatusChecks(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	confirmed := pendingBooking("b1", "user-1", "10:00", now.Add(-5*time.Minute))
	confirmed.Status = domain.StatusConfirmed

	cancelled := pendingBooking("b2", "user-1", "11:00", now.Add(-5*time.Minute))
	cancelled.Status = domain.StatusCancelled

	repo := newFakeBookingRepo(confirmed, cancelled)
	uc := newTestUseCase(repo, nil, &fakePaymentClient{}, newFakeNotifyClient(nil), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1", BookingID: "b1", TransactionID: "tx-1",
	})
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)

	_, err = uc.Execute(context.Background(), &Request{
		UserID: "user-1", BookingID: "b2", TransactionID: "tx-2",
	})
	assert.ErrorIs(t, err, ErrBookingCancelled)

	_, err = uc.Execute(context.Background(), &Request{
		UserID: "user-1", BookingID: "missing", TransactionID: "tx-3",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(pendingBooking("b1", "user-1", "10:00", now.Add(-5*time.Minute)))

	uc := newTestUseCase(repo, nil, &fakePaymentClient{}, newFakeNotifyClient(nil), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "intruder", BookingID: "b1", TransactionID: "tx-1",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
