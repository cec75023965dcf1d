package search_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/service/restrictions"
	"github.com/m04kA/SMC-StayService/pkg/dates"
	"github.com/m04kA/SMC-StayService/pkg/ptr"
)

const (
	rt1 = int64(1)
	rt2 = int64(2)
)

func testRoomTypes() []*domain.RoomType {
	return []*domain.RoomType{
		{ID: rt1, Name: "Double", MinOccupancy: 1, MaxOccupancy: 2, MaxChildren: 1, CategoryID: ptr.Ptr(int64(10))},
		{ID: rt2, Name: "Dorm", MinOccupancy: 1, MaxOccupancy: 4, MaxChildren: 0, CategoryID: ptr.Ptr(int64(20))},
	}
}

func testRooms() []*domain.Room {
	return []*domain.Room{
		{ID: 101, RoomTypeID: rt1, Number: "101"},
		{ID: 201, RoomTypeID: rt2, Number: "201"},
		{ID: 202, RoomTypeID: rt2, Number: "202"},
	}
}

func reservation(id, roomID int64, checkIn, checkOut string, status domain.ReservationStatus) *domain.Reservation {
	in, _ := dates.Parse(checkIn)
	out, _ := dates.Parse(checkOut)
	return &domain.Reservation{ID: id, RoomID: roomID, CheckIn: in, CheckOut: out, Status: status}
}

func period(from, to string) dates.Range {
	f, _ := dates.Parse(from)
	t, _ := dates.Parse(to)
	return dates.NewRange(f, t)
}

func oneRoom(adults, children int) []domain.RoomOccupancy {
	return []domain.RoomOccupancy{{Adults: adults, Children: children}}
}

func ids(found []RoomTypeAvailability) []int64 {
	result := make([]int64, 0, len(found))
	for _, f := range found {
		result = append(result, f.RoomType.ID)
	}
	return result
}

func find(in Input) ([]RoomTypeAvailability, bool) {
	if in.RoomTypes == nil {
		in.RoomTypes = testRoomTypes()
	}
	if in.Rooms == nil {
		in.Rooms = testRooms()
	}
	return FindAvailable(in, restrictions.NewEvaluator(restrictions.WindowPolicyAlways))
}

func TestFindAvailable_AllFree(t *testing.T) {
	found, noInventory := find(Input{
		Range:       period("2024-03-04", "2024-03-06"),
		Occupancies: oneRoom(2, 0),
	})

	assert.False(t, noInventory)
	assert.Equal(t, []int64{rt1, rt2}, ids(found))
	assert.Equal(t, 1, found[0].AvailableUnits)
	assert.Equal(t, 2, found[1].UnitsTotal)
}

func TestFindAvailable_MinStay(t *testing.T) {
	rules := []*domain.Restriction{{
		Type:       domain.RestrictionMinStay,
		RoomTypeID: ptr.Ptr(rt1),
		Value:      domain.RestrictionValue{MinNights: ptr.Ptr(3)},
	}}

	twoNights, _ := find(Input{
		Range:        period("2024-03-04", "2024-03-06"),
		Occupancies:  oneRoom(1, 0),
		Restrictions: rules,
	})
	assert.NotContains(t, ids(twoNights), rt1)
	assert.Contains(t, ids(twoNights), rt2)

	threeNights, _ := find(Input{
		Range:        period("2024-03-04", "2024-03-07"),
		Occupancies:  oneRoom(1, 0),
		Restrictions: rules,
	})
	assert.Contains(t, ids(threeNights), rt1)
}

func TestFindAvailable_CheckInDays(t *testing.T) {
	rules := []*domain.Restriction{{
		Type:       domain.RestrictionCheckInDays,
		RoomTypeID: ptr.Ptr(rt1),
		Value:      domain.RestrictionValue{AllowedDays: []int{1, 2, 3, 4, 5}},
	}}

	// 2024-01-13 суббота
	found, _ := find(Input{
		Range:        period("2024-01-13", "2024-01-15"),
		Occupancies:  oneRoom(1, 0),
		Restrictions: rules,
	})
	assert.Equal(t, []int64{rt2}, ids(found))
}

func TestFindAvailable_OccupancyBounds(t *testing.T) {
	roomTypes := []*domain.RoomType{{ID: rt1, MinOccupancy: 2, MaxOccupancy: 2, MaxChildren: 1}}
	rooms := []*domain.Room{{ID: 101, RoomTypeID: rt1}}

	found, _ := find(Input{
		Range:       period("2024-03-04", "2024-03-05"),
		Occupancies: oneRoom(2, 1),
		RoomTypes:   roomTypes,
		Rooms:       rooms,
	})
	assert.Equal(t, []int64{rt1}, ids(found))

	found, _ = find(Input{
		Range:       period("2024-03-04", "2024-03-05"),
		Occupancies: oneRoom(1, 0),
		RoomTypes:   roomTypes,
		Rooms:       rooms,
	})
	assert.Empty(t, found)
}

func TestFindAvailable_EveryGroupMustFit(t *testing.T) {
	// Вторая группа не помещается в Double: номера не объединяются
	found, _ := find(Input{
		Range:       period("2024-03-04", "2024-03-05"),
		Occupancies: []domain.RoomOccupancy{{Adults: 1}, {Adults: 4}},
	})
	assert.Equal(t, []int64{rt2}, ids(found))
}

func TestFindAvailable_CapacityExhaustion(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(1, 201, "2024-03-01", "2024-03-10", domain.StatusConfirmed),
	}

	twoRooms, _ := find(Input{
		Range:        period("2024-03-04", "2024-03-06"),
		Occupancies:  []domain.RoomOccupancy{{Adults: 1}, {Adults: 1}},
		Reservations: reservations,
	})
	assert.NotContains(t, ids(twoRooms), rt2)

	oneRoomResult, _ := find(Input{
		Range:        period("2024-03-04", "2024-03-06"),
		Occupancies:  oneRoom(1, 0),
		Reservations: reservations,
	})
	require.Contains(t, ids(oneRoomResult), rt2)
	assert.Equal(t, 1, oneRoomResult[1].AvailableUnits)
}

func TestFindAvailable_NotEnoughPhysicalRooms(t *testing.T) {
	found, _ := find(Input{
		Range:       period("2024-03-04", "2024-03-05"),
		Occupancies: []domain.RoomOccupancy{{Adults: 1}, {Adults: 1}},
	})
	assert.Equal(t, []int64{rt2}, ids(found), "one Double room cannot host two groups")
}

func TestFindAvailable_CancelledDoesNotBlock(t *testing.T) {
	found, _ := find(Input{
		Range:       period("2024-03-04", "2024-03-06"),
		Occupancies: oneRoom(1, 0),
		Reservations: []*domain.Reservation{
			reservation(1, 101, "2024-03-01", "2024-03-10", domain.StatusCancelled),
		},
	})
	assert.Contains(t, ids(found), rt1)
}

func TestFindAvailable_NoShowStillBlocks(t *testing.T) {
	found, _ := find(Input{
		Range:       period("2024-03-04", "2024-03-06"),
		Occupancies: oneRoom(1, 0),
		Reservations: []*domain.Reservation{
			reservation(1, 101, "2024-03-01", "2024-03-10", domain.StatusNoShow),
		},
	})
	assert.NotContains(t, ids(found), rt1)
}

func TestFindAvailable_ExclusiveCheckout(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation(1, 101, "2024-01-10", "2024-01-13", domain.StatusConfirmed),
	}

	sameDayCheckIn, _ := find(Input{
		Range:        period("2024-01-13", "2024-01-15"),
		Occupancies:  oneRoom(1, 0),
		Reservations: reservations,
	})
	assert.Contains(t, ids(sameDayCheckIn), rt1)

	lastNight, _ := find(Input{
		Range:        period("2024-01-12", "2024-01-13"),
		Occupancies:  oneRoom(1, 0),
		Reservations: reservations,
	})
	assert.NotContains(t, ids(lastNight), rt1)

	// Выезд из поиска в день заезда бронирования
	before, _ := find(Input{
		Range:        period("2024-01-08", "2024-01-10"),
		Occupancies:  oneRoom(1, 0),
		Reservations: reservations,
	})
	assert.Contains(t, ids(before), rt1)
}

func TestFindAvailable_ClosedDates(t *testing.T) {
	found, _ := find(Input{
		Range:       period("2024-03-04", "2024-03-07"),
		Occupancies: oneRoom(1, 0),
		ClosedDates: []*domain.ClosedDate{
			{RoomTypeID: ptr.Ptr(rt1), Date: dates.Date(2024, 3, 5)},
			// день выезда не проверяется
			{RoomTypeID: ptr.Ptr(rt2), Date: dates.Date(2024, 3, 7)},
		},
	})
	assert.Equal(t, []int64{rt2}, ids(found))

	found, _ = find(Input{
		Range:       period("2024-03-04", "2024-03-07"),
		Occupancies: oneRoom(1, 0),
		ClosedDates: []*domain.ClosedDate{{Date: dates.Date(2024, 3, 4)}},
	})
	assert.Empty(t, found, "property-wide closure blocks every room type")
}

func TestFindAvailable_CategoryFilter(t *testing.T) {
	roomTypes := append(testRoomTypes(), &domain.RoomType{ID: 3, MinOccupancy: 1, MaxOccupancy: 2})
	rooms := append(testRooms(), &domain.Room{ID: 301, RoomTypeID: 3})

	found, _ := find(Input{
		Range:       period("2024-03-04", "2024-03-05"),
		Occupancies: oneRoom(1, 0),
		CategoryIDs: []int64{20},
		RoomTypes:   roomTypes,
		Rooms:       rooms,
	})
	assert.Equal(t, []int64{rt2, 3}, ids(found), "uncategorized room types pass the filter")
}

func TestFindAvailable_NoInventory(t *testing.T) {
	rules := []*domain.Restriction{{
		Type:  domain.RestrictionMinStay,
		Value: domain.RestrictionValue{MinNights: ptr.Ptr(10)},
	}}

	found, noInventory := FindAvailable(Input{
		Range:        period("2024-03-04", "2024-03-05"),
		Occupancies:  oneRoom(4, 0),
		RoomTypes:    testRoomTypes(),
		Rooms:        []*domain.Room{},
		Restrictions: rules,
	}, restrictions.NewEvaluator(restrictions.WindowPolicyAlways))

	assert.True(t, noInventory)
	assert.Equal(t, []int64{rt2}, ids(found), "only occupancy is checked")
	assert.Zero(t, found[0].AvailableUnits)
}
