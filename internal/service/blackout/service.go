package blackout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/internal/infra/storage/blockedslot"
	"github.com/shvic/booking-service/pkg/types"
)

// Service реестр заблокированных администратором слотов
//
// Блокировка пары (date, time) имеет приоритет над любым состоянием
// бронирований: заблокированный слот не выдается как доступный,
// даже если на него нет ни одной записи
type Service struct {
	repo   BlockedSlotRepository
	logger Logger
}

// NewService создает новый экземпляр реестра блокировок
func NewService(repo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Block блокирует слот (date, time)
func (s *Service) Block(ctx context.Context, date time.Time, t types.TimeString) (*domain.BlockedSlot, error) {
	if err := validateSlot(date, t); err != nil {
		return nil, err
	}

	slot, err := s.repo.Block(ctx, date, t)
	if err != nil {
		if errors.Is(err, blockedslot.ErrAlreadyBlocked) {
			return nil, ErrAlreadyBlocked
		}
		s.logger.Error("Blackout.Block: failed to block slot %s %s: %v", date.Format(domain.DateFormat), t, err)
		return nil, fmt.Errorf("%w: failed to block slot: %v", ErrInternal, err)
	}

	s.logger.Info("Blackout.Block: slot %s %s blocked", date.Format(domain.DateFormat), t)

	return slot, nil
}

// Unblock снимает блокировку со слота (date, time)
func (s *Service) Unblock(ctx context.Context, date time.Time, t types.TimeString) error {
	if err := validateSlot(date, t); err != nil {
		return err
	}

	err := s.repo.Unblock(ctx, date, t)
	if err != nil {
		if errors.Is(err, blockedslot.ErrNotFound) {
			return ErrNotBlocked
		}
		s.logger.Error("Blackout.Unblock: failed to unblock slot %s %s: %v", date.Format(domain.DateFormat), t, err)
		return fmt.Errorf("%w: failed to unblock slot: %v", ErrInternal, err)
	}

	s.logger.Info("Blackout.Unblock: slot %s %s unblocked", date.Format(domain.DateFormat), t)

	return nil
}

// List возвращает заблокированные слоты
// При нулевой дате возвращает все блокировки
func (s *Service) List(ctx context.Context, date *time.Time) ([]*domain.BlockedSlot, error) {
	var (
		slots []*domain.BlockedSlot
		err   error
	)

	if date != nil {
		slots, err = s.repo.ListByDate(ctx, *date)
	} else {
		slots, err = s.repo.ListAll(ctx)
	}

	if err != nil {
		s.logger.Error("Blackout.List: failed to list blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked slots: %v", ErrInternal, err)
	}

	return slots, nil
}

// validateSlot проверяет формат пары (date, time)
func validateSlot(date time.Time, t types.TimeString) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	return nil
}
