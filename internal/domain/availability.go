package domain

import "time"

// DayCell occupancy of one room type on one date (calendar cell).
// Derived per request, never persisted
type DayCell struct {
	Date           time.Time
	BookedCount    int
	UnitsTotal     int
	IsClosed       bool
	HasCheckIn     bool
	HasCheckOut    bool
	ReservationIDs []int64
}

// Remaining returns free units, never negative
func (c DayCell) Remaining() int {
	if c.BookedCount >= c.UnitsTotal {
		return 0
	}
	return c.UnitsTotal - c.BookedCount
}

// IsFull returns true if no units are left
func (c DayCell) IsFull() bool {
	return c.Remaining() == 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (c DayCell) OccupancyRate() float64 {
	if c.UnitsTotal == 0 {
		return 0
	}
	booked := c.BookedCount
	if booked > c.UnitsTotal {
		booked = c.UnitsTotal
	}
	return float64(booked) / float64(c.UnitsTotal) * 100
}

// RoomDayCell expanded per-room view: the reservation occupying the room on Date, if any
type RoomDayCell struct {
	Date          time.Time
	ReservationID *int64
	IsCheckIn     bool
}
