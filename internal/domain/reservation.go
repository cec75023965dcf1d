package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusTentative  ReservationStatus = "tentative"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// AllStatuses список всех статусов
var AllStatuses = []ReservationStatus{
	StatusTentative,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}

// allowedTransitions граф переходов статусов
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusTentative: {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut, StatusNoShow},
}

// IsValid returns true if the status is known
func (s ReservationStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s ReservationStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransitionTo returns true if the status machine allows s -> next
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation one room within a booking
type Reservation struct {
	ID         int64
	BookingID  uuid.UUID // общий для всех номеров одного бронирования
	RoomID     int64
	GuestID    int64
	RatePlanID int64
	CheckIn    time.Time
	CheckOut   time.Time // exclusive
	Status     ReservationStatus
	Adults     int
	Children   int

	CustomTotal *float64
	Notes       *string
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NumberOfGuests adults + children
func (r *Reservation) NumberOfGuests() int {
	return r.Adults + r.Children
}

// Stay returns the occupied half-open interval [CheckIn, CheckOut)
func (r *Reservation) Stay() dates.Range {
	return dates.NewRange(r.CheckIn, r.CheckOut)
}

// Blocks returns true if the reservation occupies inventory.
// Only cancelled reservations release the room
func (r *Reservation) Blocks() bool {
	return r.Status != StatusCancelled
}

// OccupiesOn returns true if the reservation blocks the room on date d
func (r *Reservation) OccupiesOn(d time.Time) bool {
	return r.Blocks() && r.Stay().Contains(d)
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status.CanTransitionTo(StatusCancelled)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	RoomIDs          []int64    // пусто - все номера
	From             *time.Time // пересечение с [From, To)
	To               *time.Time
	BookingID        *uuid.UUID
	GuestID          *int64
	Status           *ReservationStatus
	ExcludeBookingID *uuid.UUID // исключить бронирование (редактирование существующего)
	IncludeCancelled bool
}
