package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayService/pkg/dates"
	"github.com/m04kA/SMC-StayService/pkg/ptr"
)

func TestReservationStatus_Transitions(t *testing.T) {
	assert.True(t, StatusTentative.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCheckedIn))
	assert.True(t, StatusCheckedIn.CanTransitionTo(StatusCheckedOut))
	assert.True(t, StatusCheckedIn.CanTransitionTo(StatusNoShow))
	assert.True(t, StatusTentative.CanTransitionTo(StatusCancelled))

	assert.False(t, StatusCheckedIn.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusTentative.CanTransitionTo(StatusCheckedOut))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))

	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCheckedOut.IsTerminal())
	assert.False(t, ReservationStatus("pending").IsValid())
}

func TestReservation_OccupiesOn(t *testing.T) {
	r := &Reservation{
		CheckIn:  dates.Date(2024, 1, 10),
		CheckOut: dates.Date(2024, 1, 13),
		Status:   StatusConfirmed,
	}

	assert.True(t, r.OccupiesOn(dates.Date(2024, 1, 12)))
	assert.False(t, r.OccupiesOn(dates.Date(2024, 1, 13)))

	r.Status = StatusCancelled
	assert.False(t, r.OccupiesOn(dates.Date(2024, 1, 11)))

	r.Status = StatusNoShow
	assert.True(t, r.Blocks())
}

func TestRoomType_CanHost(t *testing.T) {
	rt := &RoomType{ID: 1, MinOccupancy: 2, MaxOccupancy: 2, MaxChildren: 1}

	assert.True(t, rt.CanHost(RoomOccupancy{Adults: 2, Children: 1}))
	assert.False(t, rt.CanHost(RoomOccupancy{Adults: 1, Children: 0}))
	assert.False(t, rt.CanHost(RoomOccupancy{Adults: 2, Children: 2}))
}

func TestRoomType_Validate(t *testing.T) {
	assert.NoError(t, (&RoomType{MinOccupancy: 1, MaxOccupancy: 2}).Validate())
	assert.Error(t, (&RoomType{MinOccupancy: 0, MaxOccupancy: 2}).Validate())
	assert.Error(t, (&RoomType{MinOccupancy: 3, MaxOccupancy: 2}).Validate())
}

func TestRoomType_InCategories(t *testing.T) {
	rt := &RoomType{CategoryID: ptr.Ptr(int64(5))}
	assert.True(t, rt.InCategories(nil))
	assert.True(t, rt.InCategories([]int64{4, 5}))
	assert.False(t, rt.InCategories([]int64{4}))

	uncategorized := &RoomType{}
	assert.True(t, uncategorized.InCategories([]int64{4}))
}

func TestRestriction_Validate(t *testing.T) {
	minStay := &Restriction{Type: RestrictionMinStay, Value: RestrictionValue{MinNights: ptr.Ptr(3)}}
	assert.NoError(t, minStay.Validate())

	badDays := &Restriction{Type: RestrictionCheckInDays, Value: RestrictionValue{AllowedDays: []int{1, 7}}}
	assert.Error(t, badDays.Validate())

	badWindow := &Restriction{
		Type:      RestrictionMinStay,
		Value:     RestrictionValue{MinNights: ptr.Ptr(2)},
		StartDate: ptr.Ptr(dates.Date(2024, 5, 1)),
		EndDate:   ptr.Ptr(dates.Date(2024, 4, 1)),
	}
	assert.Error(t, badWindow.Validate())

	days := &Restriction{Type: RestrictionCheckInDays, Value: RestrictionValue{AllowedDays: []int{1, 2}}}
	assert.True(t, days.AllowsWeekday(time.Monday))
	assert.False(t, days.AllowsWeekday(time.Sunday))
}

func TestDayCell_Remaining(t *testing.T) {
	c := &DayCell{BookedCount: 3, UnitsTotal: 2}
	assert.Equal(t, 0, c.Remaining())
	assert.True(t, c.IsFull())
	assert.Equal(t, 100.0, c.OccupancyRate())

	c = &DayCell{BookedCount: 1, UnitsTotal: 4}
	assert.Equal(t, 3, c.Remaining())
	assert.Equal(t, 25.0, c.OccupancyRate())
}
