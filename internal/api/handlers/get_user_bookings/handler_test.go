package get_user_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shvic/booking-service/internal/api/middleware"
	"github.com/shvic/booking-service/internal/domain"
)

type fakeBookingService struct {
	gotUserID string
	gotStatus *domain.BookingStatus
	list      []*domain.Booking
}

func (f *fakeBookingService) GetUserBookings(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.gotUserID = userID
	f.gotStatus = status
	return f.list, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(svc *fakeBookingService) *mux.Router {
	h := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(nopLogger{}), middleware.WithAdminFlag([]string{"admin-1"}))
	protected.HandleFunc("/users/{userId}/bookings", h.Handle).Methods(http.MethodGet)

	return r
}

func doRequest(t *testing.T, r *mux.Router, url, asUser string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	if asUser != "" {
		req.Header.Set(middleware.HeaderUserID, asUser)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_StatusFilter(t *testing.T) {
	svc := &fakeBookingService{list: []*domain.Booking{{
		ID:              "b1",
		BookingCode:     "CODEB1XYZ",
		UserID:          "user-1",
		ServiceID:       "classic",
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.PaymentCompleted,
		ServiceName:     "Classic",
		Amount:          3500,
	}}}
	r := newTestRouter(svc)

	rec := doRequest(t, r, "/api/v1/users/user-1/bookings?status=confirmed", "user-1")
	require.Equal(t, http.StatusOK, rec.Code)

	// Фильтр по статусу доходит до сервиса
	require.NotNil(t, svc.gotStatus)
	assert.Equal(t, domain.StatusConfirmed, *svc.gotStatus)
	assert.Equal(t, "user-1", svc.gotUserID)

	var resp UserBookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b1", resp.Bookings[0].ID)

	// Без параметра фильтр не передается
	rec = doRequest(t, r, "/api/v1/users/user-1/bookings", "user-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.gotStatus)
}

func TestHandle_InvalidStatus(t *testing.T) {
	r := newTestRouter(&fakeBookingService{})

	rec := doRequest(t, r, "/api/v1/users/user-1/bookings?status=done", "user-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Access(t *testing.T) {
	r := newTestRouter(&fakeBookingService{})

	// Без заголовка X-User-ID
	rec := doRequest(t, r, "/api/v1/users/user-1/bookings", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Чужая история недоступна обычному пользователю
	rec = doRequest(t, r, "/api/v1/users/user-1/bookings", "user-2")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Администратору доступна
	rec = doRequest(t, r, "/api/v1/users/user-1/bookings", "admin-1")
	assert.Equal(t, http.StatusOK, rec.Code)
}
