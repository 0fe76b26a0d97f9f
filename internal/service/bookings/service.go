package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/infra/storage/booking"
	"github.com/shvic/booking-service/internal/integrations/notifyservice"
)

// Таймаут отправки уведомления об отмене
const notifyTimeout = 10 * time.Second

// Service сервис чтения и отмены бронирований
//
// Владелец видит и отменяет только свои бронирования, администратор - любые.
// Отмена необратима: слот сразу возвращается в выдачу доступных
type Service struct {
	bookingRepo  BookingRepository
	notifyClient NotifyClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, notifyClient NotifyClient, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		notifyClient: notifyClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID возвращает бронирование по ID
// Доступно владельцу и администратору
func (s *Service) GetByID(ctx context.Context, userID string, isAdmin bool, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings.GetByID: failed to get booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !isAdmin && b.UserID != userID {
		s.logger.Warn("Bookings.GetByID: user=%s denied access to booking=%s", userID, bookingID)
		return nil, ErrAccessDenied
	}

	return b, nil
}

// GetByCode возвращает бронирование по человекочитаемому коду
// Доступно владельцу и администратору
func (s *Service) GetByCode(ctx context.Context, userID string, isAdmin bool, code string) (*domain.Booking, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: booking code is required", ErrInvalidInput)
	}

	b, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings.GetByCode: failed to get booking code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !isAdmin && b.UserID != userID {
		s.logger.Warn("Bookings.GetByCode: user=%s denied access to booking=%s", userID, b.ID)
		return nil, ErrAccessDenied
	}

	return b, nil
}

// GetUserBookings возвращает список бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	list, err := s.bookingRepo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("Bookings.GetUserBookings: failed to get bookings for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// Cancel отменяет бронирование
// Владелец отменяет свое бронирование, администратор - любое;
// в cancelled_by у администратора фиксируется "admin", а не его ID
func (s *Service) Cancel(ctx context.Context, userID string, isAdmin bool, bookingID string, reason string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings.Cancel: failed to get booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !isAdmin && b.UserID != userID {
		s.logger.Warn("Bookings.Cancel: user=%s denied access to booking=%s", userID, bookingID)
		return nil, ErrAccessDenied
	}

	if !b.CanBeCancelled() {
		return nil, ErrCannotBeCancelled
	}

	cancelledBy := userID
	if isAdmin {
		cancelledBy = domain.CancelledByAdmin
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, reason, cancelledBy); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings.Cancel: failed to cancel booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	b.CancelledBy = &cancelledBy
	b.UpdatedAt = now

	s.logger.Info("Bookings.Cancel: booking id=%s cancelled by %s", bookingID, cancelledBy)

	// Уведомление не влияет на результат отмены
	go s.sendCancellationNotification(b, cancelledBy)

	return b, nil
}

// sendCancellationNotification отправляет письмо об отмене
// Ошибка отправки только логируется
func (s *Service) sendCancellationNotification(b *domain.Booking, cancelledBy string) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	err := s.notifyClient.NotifyCancelled(ctx, notifyservice.BookingNotification{
		BookingID:   b.ID,
		BookingCode: b.BookingCode,
		UserID:      b.UserID,
		ServiceName: b.ServiceName,
		Date:        b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		Amount:      b.Amount,
		CancelledBy: cancelledBy,
	})
	if err != nil {
		s.logger.Error("Bookings.Cancel: failed to send cancellation notification for booking=%s: %v", b.ID, err)
	}
}
