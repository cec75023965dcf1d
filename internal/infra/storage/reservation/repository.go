package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"booking_id",
	"room_id",
	"guest_id",
	"rate_plan_id",
	"check_in",
	"check_out",
	"status",
	"adults",
	"children",
	"custom_total",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет все номера одного бронирования одним INSERT.
// Вызывается внутри транзакции создания бронирования: либо вставляются все строки, либо ни одной.
// Возвращает бронирования с заполненными ID и временными метками
func (r *Repository) CreateBatch(ctx context.Context, reservations []*domain.Reservation) ([]*domain.Reservation, error) {
	if len(reservations) == 0 {
		return nil, ErrEmptyBatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert(table).
		Columns(
			"booking_id",
			"room_id",
			"guest_id",
			"rate_plan_id",
			"check_in",
			"check_out",
			"status",
			"adults",
			"children",
			"custom_total",
			"notes",
		)

	for _, res := range reservations {
		insert = insert.Values(
			res.BookingID,
			res.RoomID,
			res.GuestID,
			res.RatePlanID,
			res.CheckIn,
			res.CheckOut,
			res.Status,
			res.Adults,
			res.Children,
			res.CustomTotal,
			res.Notes,
		)
	}

	query, args, err := insert.Suffix("RETURNING id, room_id, created_at, updated_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// Номер уникален внутри бронирования, поэтому сопоставляем возвращенные строки по room_id
	byRoom := make(map[int64]*domain.Reservation, len(reservations))
	for _, res := range reservations {
		byRoom[res.RoomID] = res
	}

	returned := 0
	for rows.Next() {
		var (
			id, roomID           int64
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(&id, &roomID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan returning: %v", ErrScanRow, err)
		}
		if res, ok := byRoom[roomID]; ok {
			res.ID = id
			res.CreatedAt = createdAt.Time
			res.UpdatedAt = updatedAt.Time
			returned++
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}

	if returned != len(reservations) {
		return nil, fmt.Errorf("%w: inserted %d of %d rows", ErrPartialInsert, returned, len(reservations))
	}

	return reservations, nil
}

// GetByID получает бронирование номера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByBookingID получает все номера бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*domain.Reservation, error) {
	return r.GetWithFilter(ctx, domain.ReservationsFilter{
		BookingID:        &bookingID,
		IncludeCancelled: true,
	})
}

// GetWithFilter получает бронирования с фильтрацией.
//
// Период фильтра трактуется как полуоткрытый [From, To): возвращаются бронирования,
// у которых check_in < To и check_out > From. День выезда не считается занятым.
//
// Если вызов выполняется внутри транзакции и задан период, строки блокируются (FOR UPDATE):
// это закрывает гонку между проверкой доступности и вставкой нового бронирования
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if len(filter.RoomIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": filter.RoomIDs})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"check_in": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"check_out": *filter.From})
	}
	if filter.BookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_id": *filter.BookingID})
	}
	if filter.GuestID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"guest_id": *filter.GuestID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ExcludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"booking_id": *filter.ExcludeBookingID})
	}
	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	selectBuilder = selectBuilder.OrderBy("check_in ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования номера.
// Для отмены дополнительно проставляется cancelled_at
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	update := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCancelled {
		update = update.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// UpdateDates переносит даты проживания
func (r *Repository) UpdateDates(ctx context.Context, id int64, checkIn, checkOut time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("check_in", checkIn).
		Set("check_out", checkOut).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDates - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateDates", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                  domain.Reservation
		customTotal          sql.NullFloat64
		notes                sql.NullString
		cancelledAt          sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.BookingID,
		&res.RoomID,
		&res.GuestID,
		&res.RatePlanID,
		&res.CheckIn,
		&res.CheckOut,
		&res.Status,
		&res.Adults,
		&res.Children,
		&customTotal,
		&notes,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if customTotal.Valid {
		res.CustomTotal = &customTotal.Float64
	}
	if notes.Valid {
		res.Notes = &notes.String
	}
	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
