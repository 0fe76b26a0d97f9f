package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shvic/booking-service/internal/config"
	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/service/catalog"
)

// UseCase use case для получения доступных слотов для бронирования
//
// Результат - подсказка для UI: авторитетная проверка пересечений
// выполняется при подтверждении оплаты, здесь только read-only snapshot
type UseCase struct {
	bookingRepo  BookingRepository
	blockedRepo  BlockedSlotRepository
	catalog      ServiceCatalog
	policy       config.BookingConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedRepo BlockedSlotRepository,
	serviceCatalog ServiceCatalog,
	policy config.BookingConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockedRepo:  blockedRepo,
		catalog:      serviceCatalog,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s, service=%s, date=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу из каталога
	service, err := uc.catalog.GetByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Валидация даты с учетом политики бронирования
	if err := validateDate(req.Date, now, uc.policy.MinLeadDays, uc.policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Генерируем кандидатов
	candidates, err := generateTimeSlots(
		uc.policy.OpenHour,
		uc.policy.CloseHour,
		service.DurationMinutes,
		req.Date,
		now,
		uc.policy.MinBookingNoticeMinutes,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 6. Убираем заблокированные администратором слоты
	blocked, err := uc.blockedRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}
	candidates = filterBlockedSlots(candidates, blocked, req.Date)

	// 7. Убираем слоты, пересекающиеся с активными бронированиями
	bookings, err := uc.bookingRepo.GetByDate(ctx, domain.BookingsDateFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	pendingTTL := time.Duration(uc.policy.PendingTTLMinutes) * time.Minute
	candidates = filterOverlappingSlots(candidates, service.DurationMinutes, bookings, now, pendingTTL)

	// 8. Формируем ответ
	slots := make([]Slot, len(candidates))
	for i, c := range candidates {
		slots[i] = Slot{
			StartTime:       c,
			DurationMinutes: service.DurationMinutes,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for service=%s, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}
