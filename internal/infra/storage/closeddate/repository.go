package closeddate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

const table = "closed_dates"

// Repository репозиторий закрытых для продажи дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create закрывает дату
func (r *Repository) Create(ctx context.Context, closed *domain.ClosedDate) (*domain.ClosedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("room_type_id", "date", "reason").
		Values(closed.RoomTypeID, closed.Date, closed.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&closed.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	closed.CreatedAt = createdAt.Time

	return closed, nil
}

// GetBetween возвращает закрытые даты в диапазоне [from, to] включительно
func (r *Repository) GetBetween(ctx context.Context, from, to time.Time) ([]*domain.ClosedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "room_type_id", "date", "reason", "created_at").
		From(table).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ClosedDate, 0)
	for rows.Next() {
		var (
			item       domain.ClosedDate
			roomTypeID sql.NullInt64
			reason     sql.NullString
			createdAt  sql.NullTime
		)

		if err := rows.Scan(&item.ID, &roomTypeID, &item.Date, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetBetween - scan row: %v", ErrScanRow, err)
		}

		if roomTypeID.Valid {
			item.RoomTypeID = &roomTypeID.Int64
		}
		if reason.Valid {
			item.Reason = &reason.String
		}
		item.CreatedAt = createdAt.Time

		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBetween - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete открывает дату обратно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
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
		return ErrClosedDateNotFound
	}

	return nil
}
