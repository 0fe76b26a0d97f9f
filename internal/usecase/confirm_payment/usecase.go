package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shvic/booking-service/internal/config"
	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/infra/storage/booking"
	"github.com/shvic/booking-service/internal/integrations/notifyservice"
	"github.com/shvic/booking-service/internal/integrations/paymentservice"
)

// Таймаут отправки уведомления после подтверждения
const notifyTimeout = 10 * time.Second

// Причина отмены просроченного pending бронирования
const expiredCancellationReason = "payment window expired"

// UseCase use case подтверждения оплаты бронирования
//
// Авторитетная точка разрешения конфликтов: проверка пересечений и
// перевод в confirmed выполняются в одной serializable транзакции с
// блокировкой бронирований дня. Из двух конкурентных подтверждений
// одного слота ровно одно получает confirmed, второе - ErrSlotConflict
type UseCase struct {
	bookingRepo   BookingRepository
	blockedRepo   BlockedSlotRepository
	paymentClient PaymentClient
	notifyClient  NotifyClient
	txManager     TxManager
	policy        config.BookingConfig
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedRepo BlockedSlotRepository,
	paymentClient PaymentClient,
	notifyClient NotifyClient,
	txManager TxManager,
	policy config.BookingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		blockedRepo:   blockedRepo,
		paymentClient: paymentClient,
		notifyClient:  notifyClient,
		txManager:     txManager,
		policy:        policy,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case подтверждения оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: user=%s, booking=%s, transaction=%s",
		req.UserID, req.BookingID, req.TransactionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmPayment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	pendingTTL := time.Duration(uc.policy.PendingTTLMinutes) * time.Minute

	var confirmed *domain.Booking

	// 2. Проверка и подтверждение в одной serializable транзакции
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой строки
		current, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Подтвердить можно только свое бронирование
		if current.UserID != req.UserID {
			return ErrAccessDenied
		}

		// 2.3. Подтверждается только pending бронирование
		switch current.Status {
		case domain.StatusConfirmed:
			return ErrAlreadyConfirmed
		case domain.StatusCancelled:
			return ErrBookingCancelled
		}

		// 2.4. Просроченное платежное окно: отменяем и отказываем
		if current.IsExpired(now, pendingTTL) {
			if err := uc.bookingRepo.Cancel(ctx, current.ID, expiredCancellationReason, domain.CancelledBySystem); err != nil {
				return fmt.Errorf("%w: failed to cancel expired booking: %v", ErrInternal, err)
			}
			return ErrBookingExpired
		}

		// 2.5. Слот мог быть заблокирован администратором после создания
		blocked, err := uc.blockedRepo.IsBlocked(ctx, current.BookingDate, current.StartTime)
		if err != nil {
			return fmt.Errorf("%w: failed to check blocked slot: %v", ErrInternal, err)
		}
		if blocked {
			return ErrSlotBlocked
		}

		// 2.6. Проверяем чек у платежного шлюза
		// При отказе или недоступности шлюза бронирование остается pending
		if err := uc.paymentClient.VerifyReceipt(ctx, paymentservice.Receipt{
			TransactionID: req.TransactionID,
			Amount:        current.Amount,
		}); err != nil {
			switch {
			case errors.Is(err, paymentservice.ErrPaymentDeclined),
				errors.Is(err, paymentservice.ErrReceiptNotFound):
				return fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
			case errors.Is(err, paymentservice.ErrUnavailable):
				return fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
			default:
				return fmt.Errorf("%w: failed to verify receipt: %v", ErrInternal, err)
			}
		}

		// 2.7. Блокируем бронирования дня и проверяем пересечения
		dayBookings, err := uc.bookingRepo.GetByDate(ctx, domain.BookingsDateFilter{Date: current.BookingDate})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings for date: %v", ErrInternal, err)
		}

		// Конфликтом считается только подтвержденное бронирование:
		// два pending на один слот не блокируют друг друга, побеждает
		// тот, кто первым подтвердит оплату
		for _, other := range dayBookings {
			if other.ID == current.ID {
				continue
			}
			if other.Status != domain.StatusConfirmed {
				continue
			}
			overlaps, err := other.Overlaps(current.StartTime, current.DurationMinutes)
			if err != nil {
				return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
			}
			if overlaps {
				return ErrSlotConflict
			}
		}

		// 2.8. Переводим в confirmed/completed
		if err := uc.bookingRepo.ConfirmPayment(ctx, current.ID); err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				// Статус изменился между чтением и обновлением
				return ErrAlreadyConfirmed
			}
			return fmt.Errorf("%w: failed to confirm payment: %v", ErrInternal, err)
		}

		current.Status = domain.StatusConfirmed
		current.PaymentStatus = domain.PaymentCompleted
		current.UpdatedAt = now
		confirmed = current

		return nil
	})

	if err != nil {
		uc.logger.Warn("ConfirmPayment: booking=%s not confirmed: %v", req.BookingID, err)
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: booking id=%s, code=%s confirmed",
		confirmed.ID, confirmed.BookingCode)

	// 3. Уведомление отправляется после коммита и не влияет на результат
	go uc.sendConfirmationNotification(confirmed)

	return &Response{
		ID:              confirmed.ID,
		BookingCode:     confirmed.BookingCode,
		UserID:          confirmed.UserID,
		ServiceID:       confirmed.ServiceID,
		BookingDate:     confirmed.BookingDate,
		StartTime:       confirmed.StartTime,
		DurationMinutes: confirmed.DurationMinutes,
		Status:          string(confirmed.Status),
		PaymentStatus:   string(confirmed.PaymentStatus),
		ServiceName:     confirmed.ServiceName,
		Amount:          confirmed.Amount,
		UpdatedAt:       confirmed.UpdatedAt,
	}, nil
}

// sendConfirmationNotification отправляет письмо о подтверждении
// Ошибка отправки только логируется
func (uc *UseCase) sendConfirmationNotification(b *domain.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	err := uc.notifyClient.NotifyConfirmed(ctx, notifyservice.BookingNotification{
		BookingID:   b.ID,
		BookingCode: b.BookingCode,
		UserID:      b.UserID,
		ServiceName: b.ServiceName,
		Date:        b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		Amount:      b.Amount,
	})
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to send confirmation notification for booking=%s: %v", b.ID, err)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if req.TransactionID == "" {
		return fmt.Errorf("%w: transactionID is required", ErrInvalidInput)
	}
	return nil
}
