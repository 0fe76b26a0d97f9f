package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shvic/booking-service/internal/config"
	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/infra/storage/booking"
	"github.com/shvic/booking-service/internal/service/catalog"
)

// Количество попыток вставки при коллизии кода бронирования
const maxCodeAttempts = 3

// UseCase use case для создания бронирования
//
// Создает запись в статусе pending без проверки занятости слота:
// слот резервируется только при подтверждении оплаты. Неоплаченные
// записи перестают занимать слот по истечении платежного окна
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      ServiceCatalog
	policy       config.BookingConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceCatalog ServiceCatalog,
	policy config.BookingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      serviceCatalog,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, service=%s, date=%s, time=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу из каталога
	service, err := uc.catalog.GetByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Валидация даты с учетом политики бронирования
	if err := validateDate(req.Date, now, uc.policy.MinLeadDays, uc.policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 5. Валидация слота: рабочие часы, сетка, минимальный срок
	if err := validateTimeSlot(req.StartTime, service.DurationMinutes, uc.policy.OpenHour, uc.policy.CloseHour); err != nil {
		uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
		return nil, err
	}
	if err := validateNotice(req.Date, req.StartTime, now, uc.policy.MinBookingNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
		return nil, err
	}

	// 6. Создаем бронирование с денормализованными данными услуги
	// Код генерируется заново при коллизии уникального индекса
	var created *domain.Booking
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := generateBookingCode()
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate booking code: %v", err)
			return nil, fmt.Errorf("%w: failed to generate booking code: %v", ErrInternal, err)
		}

		newBooking := &domain.Booking{
			ID:              uuid.NewString(),
			BookingCode:     code,
			UserID:          req.UserID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			PaymentStatus:   domain.PaymentPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Amount:          service.Price,
			Notes:           req.Notes,
		}

		created, err = uc.bookingRepo.Create(ctx, newBooking)
		if err == nil {
			break
		}
		if errors.Is(err, booking.ErrDuplicateCode) {
			uc.logger.Warn("CreateBooking: booking code collision, attempt %d", attempt)
			created = nil
			continue
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
	if created == nil {
		uc.logger.Error("CreateBooking: booking code collision persisted after %d attempts", maxCodeAttempts)
		return nil, fmt.Errorf("%w: failed to allocate booking code", ErrInternal)
	}

	uc.logger.Info("CreateBooking: created booking id=%s, code=%s, user=%s",
		created.ID, created.BookingCode, created.UserID)

	return &Response{
		ID:              created.ID,
		BookingCode:     created.BookingCode,
		UserID:          created.UserID,
		ServiceID:       created.ServiceID,
		BookingDate:     created.BookingDate,
		StartTime:       created.StartTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		PaymentStatus:   string(created.PaymentStatus),
		ServiceName:     created.ServiceName,
		ServicePrice:    created.ServicePrice,
		Amount:          created.Amount,
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
