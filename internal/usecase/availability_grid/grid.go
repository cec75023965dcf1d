package availability_grid

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// BuildRoomTypeGrid строит ячейки занятости типа номера для каждой даты сетки.
// rooms - физические номера типа, reservations - бронирования этих номеров
func BuildRoomTypeGrid(
	roomTypeID int64,
	grid []time.Time,
	rooms []*domain.Room,
	reservations []*domain.Reservation,
	closed []*domain.ClosedDate,
) []domain.DayCell {
	ofType := make(map[int64]struct{}, len(rooms))
	for _, room := range rooms {
		ofType[room.ID] = struct{}{}
	}

	closedDays := make(map[time.Time]struct{})
	for _, c := range closed {
		if c.AppliesToRoomType(roomTypeID) {
			closedDays[dates.Normalize(c.Date)] = struct{}{}
		}
	}

	cells := make([]domain.DayCell, 0, len(grid))
	for _, day := range grid {
		d := dates.Normalize(day)
		_, isClosed := closedDays[d]

		cell := domain.DayCell{
			Date:           d,
			UnitsTotal:     len(rooms),
			IsClosed:       isClosed,
			ReservationIDs: make([]int64, 0),
		}

		for _, res := range reservations {
			if _, ok := ofType[res.RoomID]; !ok || !res.Blocks() {
				continue
			}

			if res.Stay().Contains(d) {
				cell.BookedCount++
				cell.ReservationIDs = append(cell.ReservationIDs, res.ID)
			}
			if dates.Normalize(res.CheckIn).Equal(d) {
				cell.HasCheckIn = true
			}
			if dates.Normalize(res.CheckOut).Equal(d) {
				cell.HasCheckOut = true
			}
		}

		cells = append(cells, cell)
	}

	return cells
}

// BuildRoomGrid строит развернутую сетку одного номера.
// Если на дату приходится больше одного действующего бронирования, возвращается ErrDataIntegrity
func BuildRoomGrid(roomID int64, grid []time.Time, reservations []*domain.Reservation) ([]domain.RoomDayCell, error) {
	cells := make([]domain.RoomDayCell, 0, len(grid))

	for _, day := range grid {
		d := dates.Normalize(day)

		res, err := occupyingReservation(roomID, d, reservations)
		if err != nil {
			return nil, err
		}

		cell := domain.RoomDayCell{Date: d}
		if res != nil {
			id := res.ID
			cell.ReservationID = &id
			cell.IsCheckIn = dates.Normalize(res.CheckIn).Equal(d)
		}

		cells = append(cells, cell)
	}

	return cells, nil
}

// occupyingReservation возвращает единственное действующее бронирование номера на дату или nil
func occupyingReservation(roomID int64, d time.Time, reservations []*domain.Reservation) (*domain.Reservation, error) {
	var found []*domain.Reservation
	for _, res := range reservations {
		if res.RoomID == roomID && res.OccupiesOn(d) {
			found = append(found, res)
		}
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		ids := make([]int64, 0, len(found))
		for _, res := range found {
			ids = append(ids, res.ID)
		}
		return nil, fmt.Errorf("%w: room=%d, date=%s, reservations=%v", ErrDataIntegrity, roomID, dates.Format(d), ids)
	}
}
