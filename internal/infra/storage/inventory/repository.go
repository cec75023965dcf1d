package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

const (
	roomTypesTable = "room_types"
	roomsTable     = "rooms"
)

var roomTypeColumns = []string{
	"id",
	"name",
	"min_occupancy",
	"max_occupancy",
	"max_children",
	"category_id",
}

var roomColumns = []string{
	"id",
	"room_type_id",
	"number",
	"housekeeping_status",
}

// Repository репозиторий типов номеров и физических номеров (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRoomTypes возвращает все типы номеров в порядке объявления
func (r *Repository) GetRoomTypes(ctx context.Context) ([]*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomTypeColumns...).
		From(roomTypesTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roomTypes := make([]*domain.RoomType, 0)
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRoomTypes - scan row: %v", ErrScanRow, err)
		}
		roomTypes = append(roomTypes, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomTypes - rows error: %v", ErrScanRow, err)
	}

	return roomTypes, nil
}

// GetRoomType получает тип номера по ID
func (r *Repository) GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomTypeColumns...).
		From(roomTypesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomType - build select query: %v", ErrBuildQuery, err)
	}

	rt, err := scanRoomType(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomType - scan room type: %v", ErrScanRow, err)
	}

	return rt, nil
}

// GetRooms возвращает все физические номера
func (r *Repository) GetRooms(ctx context.Context) ([]*domain.Room, error) {
	return r.selectRooms(ctx, "GetRooms", nil)
}

// GetRoomsByType возвращает номера одного типа
func (r *Repository) GetRoomsByType(ctx context.Context, roomTypeID int64) ([]*domain.Room, error) {
	return r.selectRooms(ctx, "GetRoomsByType", squirrel.Eq{"room_type_id": roomTypeID})
}

// GetRoomsByIDs возвращает номера по списку ID. Отсутствующие ID просто не попадают в результат
func (r *Repository) GetRoomsByIDs(ctx context.Context, ids []int64) ([]*domain.Room, error) {
	if len(ids) == 0 {
		return []*domain.Room{}, nil
	}
	return r.selectRooms(ctx, "GetRoomsByIDs", squirrel.Expr("id = ANY(?)", pq.Array(ids)))
}

// GetRoom получает номер по ID
func (r *Repository) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From(roomsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

func (r *Repository) selectRooms(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).From(roomsTable)
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rooms, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoomType(row rowScanner) (*domain.RoomType, error) {
	var (
		rt         domain.RoomType
		categoryID sql.NullInt64
	)

	if err := row.Scan(
		&rt.ID,
		&rt.Name,
		&rt.MinOccupancy,
		&rt.MaxOccupancy,
		&rt.MaxChildren,
		&categoryID,
	); err != nil {
		return nil, err
	}

	if categoryID.Valid {
		rt.CategoryID = &categoryID.Int64
	}

	return &rt, nil
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room   domain.Room
		status sql.NullString
	)

	if err := row.Scan(&room.ID, &room.RoomTypeID, &room.Number, &status); err != nil {
		return nil, err
	}

	room.HousekeepingStatus = domain.HousekeepingStatus(status.String)
	if !status.Valid {
		room.HousekeepingStatus = domain.HousekeepingClean
	}

	return &room, nil
}
