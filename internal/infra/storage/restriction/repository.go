package restriction

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

const table = "booking_restrictions"

// Repository репозиторий правил бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое правило.
// value сохраняется в JSONB в том же виде, что отдается по API
func (r *Repository) Create(ctx context.Context, restriction *domain.Restriction) (*domain.Restriction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(restriction.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal value: %v", ErrInvalidPayload, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"restriction_type",
			"room_type_id",
			"start_date",
			"end_date",
			"value",
		).
		Values(
			restriction.Type,
			restriction.RoomTypeID,
			restriction.StartDate,
			restriction.EndDate,
			payload,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&restriction.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	restriction.CreatedAt = createdAt.Time

	return restriction, nil
}

// GetAll возвращает все правила в порядке id ASC.
// Порядок важен: при проверке проживания берется первое подходящее правило каждого вида
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Restriction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restriction_type",
		"room_type_id",
		"start_date",
		"end_date",
		"value",
		"created_at",
	).
		From(table).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	restrictions := make([]*domain.Restriction, 0)
	for rows.Next() {
		var (
			item       domain.Restriction
			roomTypeID sql.NullInt64
			startDate  sql.NullTime
			endDate    sql.NullTime
			payload    []byte
			createdAt  sql.NullTime
		)

		if err := rows.Scan(
			&item.ID,
			&item.Type,
			&roomTypeID,
			&startDate,
			&endDate,
			&payload,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		if roomTypeID.Valid {
			item.RoomTypeID = &roomTypeID.Int64
		}
		if startDate.Valid {
			item.StartDate = &startDate.Time
		}
		if endDate.Valid {
			item.EndDate = &endDate.Time
		}
		item.CreatedAt = createdAt.Time

		value, err := parseRestrictionValue(item.Type, payload)
		if err != nil {
			return nil, fmt.Errorf("%w: restriction id=%d: %v", ErrInvalidPayload, item.ID, err)
		}
		item.Value = value

		restrictions = append(restrictions, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return restrictions, nil
}

// Delete удаляет правило
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
		return ErrRestrictionNotFound
	}

	return nil
}

// parseRestrictionValue разбирает JSONB payload и проверяет, что он соответствует типу правила.
// Ядро получает только провалидированные значения
func parseRestrictionValue(restrictionType domain.RestrictionType, payload []byte) (domain.RestrictionValue, error) {
	var value domain.RestrictionValue

	if !restrictionType.IsValid() {
		return value, fmt.Errorf("unknown restriction type %q", restrictionType)
	}
	if len(payload) == 0 {
		return value, fmt.Errorf("empty value")
	}
	if err := json.Unmarshal(payload, &value); err != nil {
		return value, fmt.Errorf("decode value: %v", err)
	}

	// Окно дат проверено при записи, здесь проверяем только payload
	probe := domain.Restriction{Type: restrictionType, Value: value}
	if err := probe.Validate(); err != nil {
		return value, err
	}

	return value, nil
}
