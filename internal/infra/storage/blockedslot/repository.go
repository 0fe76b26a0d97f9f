package blockedslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/shvic/booking-service/internal/domain"
	"github.com/shvic/booking-service/pkg/dbmetrics"
	"github.com/shvic/booking-service/pkg/psqlbuilder"
	"github.com/shvic/booking-service/pkg/types"
)

const pgUniqueViolation = "23505"

// Repository репозиторий реестра заблокированных слотов
//
// Пара (date, time) уникальна на уровне БД, поэтому конкурентные
// block/unblock одной и той же пары всегда сходятся к детерминированному
// результату без дополнительных блокировок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Block блокирует слот (date, time)
// Повторная блокировка той же пары возвращает ErrAlreadyBlocked
func (r *Repository) Block(ctx context.Context, date time.Time, t types.TimeString) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("blocked_date", "blocked_time").
		Values(date, t).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Block - build insert query: %v", ErrBuildQuery, err)
	}

	slot := &domain.BlockedSlot{
		Date: date,
		Time: t,
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: Block - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// Unblock снимает блокировку со слота (date, time)
// Возвращает ErrNotFound, если пара не была заблокирована
func (r *Repository) Unblock(ctx context.Context, date time.Time, t types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"blocked_date": date, "blocked_time": t}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Unblock - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Unblock - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Unblock - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// IsBlocked проверяет, заблокирована ли пара (date, time)
func (r *Repository) IsBlocked(ctx context.Context, date time.Time, t types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blocked_slots").
		Where(squirrel.Eq{"blocked_date": date, "blocked_time": t}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListByDate возвращает заблокированные слоты на конкретную дату
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	return r.list(ctx, &date)
}

// ListAll возвращает все заблокированные слоты
func (r *Repository) ListAll(ctx context.Context) ([]*domain.BlockedSlot, error) {
	return r.list(ctx, nil)
}

func (r *Repository) list(ctx context.Context, date *time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "blocked_date", "blocked_time", "created_at").
		From("blocked_slots").
		OrderBy("blocked_date ASC, blocked_time ASC")

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"blocked_date": *date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BlockedSlot, 0)

	for rows.Next() {
		var slot domain.BlockedSlot
		var createdAt sql.NullTime

		if err := rows.Scan(&slot.ID, &slot.Date, &slot.Time, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
