package unavailability

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

// Repository репозиторий для работы с исключениями недоступности стилистов.
// На одну дату допускается ноль и больше интервалов, интервалы могут
// пересекаться между собой - uniqueness constraint отсутствует намеренно.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает исключение недоступности
func (r *Repository) Create(ctx context.Context, exc *domain.UnavailabilityException) (*domain.UnavailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("unavailability_exceptions").
		Columns(
			"stylist_id",
			"exception_date",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			exc.StylistID,
			exc.Date,
			exc.StartTime,
			exc.EndTime,
			exc.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&exc.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time

	return exc, nil
}

// ListByStylistAndDate получает все исключения стилиста на дату,
// отсортированные по времени начала
func (r *Repository) ListByStylistAndDate(ctx context.Context, stylistID int64, date time.Time) ([]*domain.UnavailabilityException, error) {
	return r.list(ctx, squirrel.Eq{"stylist_id": stylistID, "exception_date": date})
}

// ListByStylistAndRange получает исключения стилиста за период [from, to]
func (r *Repository) ListByStylistAndRange(ctx context.Context, stylistID int64, from, to time.Time) ([]*domain.UnavailabilityException, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"stylist_id": stylistID},
		squirrel.GtOrEq{"exception_date": from},
		squirrel.LtOrEq{"exception_date": to},
	})
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.UnavailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"exception_date",
		"start_time",
		"end_time",
		"reason",
		"created_at",
	).
		From("unavailability_exceptions").
		Where(where).
		OrderBy("exception_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.UnavailabilityException, 0)
	for rows.Next() {
		var exc domain.UnavailabilityException
		var createdAt sql.NullTime

		err := rows.Scan(
			&exc.ID,
			&exc.StylistID,
			&exc.Date,
			&exc.StartTime,
			&exc.EndTime,
			&exc.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}

		exc.CreatedAt = createdAt.Time
		result = append(result, &exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет исключение стилиста по ID.
// Условие по stylist_id гарантирует, что стилист не удалит чужое исключение.
func (r *Repository) Delete(ctx context.Context, id int64, stylistID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("unavailability_exceptions").
		Where(squirrel.Eq{"id": id, "stylist_id": stylistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}
