package inventory

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestGetRoomsByIDs(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	// массив уходит одним параметром
	mock.ExpectQuery(`SELECT id, room_type_id, number, housekeeping_status FROM rooms ` +
		`WHERE id = ANY\(\$1\) ORDER BY id ASC$`).
		WithArgs("{101,102,999}").
		WillReturnRows(sqlmock.NewRows(roomColumns).
			AddRow(int64(101), int64(1), "101", "dirty").
			AddRow(int64(102), int64(1), "102", nil))

	rooms, err := repo.GetRoomsByIDs(context.Background(), []int64{101, 102, 999})
	require.NoError(t, err)
	require.Len(t, rooms, 2, "missing ids are simply absent")
	assert.Equal(t, domain.HousekeepingDirty, rooms[0].HousekeepingStatus)
	assert.Equal(t, domain.HousekeepingClean, rooms[1].HousekeepingStatus)
	assert.Equal(t, "102", rooms[1].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoomsByIDs_Empty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	rooms, err := repo.GetRoomsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rooms)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query for an empty id list")
}

func TestGetRoomsByIDs_QueryError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`FROM rooms`).WillReturnError(errors.New("connection reset"))

	_, err := repo.GetRoomsByIDs(context.Background(), []int64{1})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestGetRoomType(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`FROM room_types WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(roomTypeColumns).AddRow(int64(1), "Double", int64(1), int64(2), int64(1), int64(3)))
	mock.ExpectQuery(`FROM room_types WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(roomTypeColumns))

	rt, err := repo.GetRoomType(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, rt.MaxOccupancy)
	require.NotNil(t, rt.CategoryID)
	assert.Equal(t, int64(3), *rt.CategoryID)

	_, err = repo.GetRoomType(context.Background(), 9)
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoom_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`FROM rooms WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(roomColumns))

	_, err := repo.GetRoom(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
