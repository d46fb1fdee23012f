package workinghours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	"github.com/faceoff2003/hairbnb-backend/pkg/dbmetrics"
	"github.com/faceoff2003/hairbnb-backend/pkg/psqlbuilder"
)

// Repository репозиторий для работы с рабочими часами стилистов.
// Таблица working_hours хранит не больше одной строки на пару (stylist_id, weekday) -
// уникальность обеспечивается constraint в БД, Upsert опирается на него.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStylistAndWeekday получает рабочее окно стилиста на день недели.
// Отсутствие строки означает, что стилист не работает в этот день -
// репозиторий возвращает ErrWorkingHoursNotFound, вызывающий код трактует
// это как "закрыто", а не как ошибку.
func (r *Repository) GetByStylistAndWeekday(ctx context.Context, stylistID int64, weekday time.Weekday) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"weekday",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"stylist_id": stylistID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	var weekdayInt int
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.StylistID,
		&weekdayInt,
		&wh.StartTime,
		&wh.EndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistAndWeekday - scan working hours: %v", ErrScanRow, err)
	}

	wh.Weekday = time.Weekday(weekdayInt)
	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return &wh, nil
}

// ListByStylist получает все рабочие окна стилиста, отсортированные по дню недели
func (r *Repository) ListByStylist(ctx context.Context, stylistID int64) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"weekday",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStylist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStylist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkingHours, 0)
	for rows.Next() {
		var wh domain.WorkingHours
		var weekdayInt int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&wh.ID,
			&wh.StylistID,
			&weekdayInt,
			&wh.StartTime,
			&wh.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStylist - scan row: %v", ErrScanRow, err)
		}

		wh.Weekday = time.Weekday(weekdayInt)
		wh.CreatedAt = createdAt.Time
		wh.UpdatedAt = updatedAt.Time
		result = append(result, &wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStylist - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Upsert создает или обновляет рабочее окно стилиста на день недели
func (r *Repository) Upsert(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns(
			"stylist_id",
			"weekday",
			"start_time",
			"end_time",
		).
		Values(
			wh.StylistID,
			int(wh.Weekday),
			wh.StartTime,
			wh.EndTime,
		).
		Suffix(`ON CONFLICT (stylist_id, weekday)
			DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return wh, nil
}

// DeleteByStylistAndWeekday удаляет рабочее окно стилиста на день недели.
// Используется, когда стилист помечает день как выходной.
func (r *Repository) DeleteByStylistAndWeekday(ctx context.Context, stylistID int64, weekday time.Weekday) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"stylist_id": stylistID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByStylistAndWeekday - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByStylistAndWeekday - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByStylistAndWeekday - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWorkingHoursNotFound
	}

	return nil
}
