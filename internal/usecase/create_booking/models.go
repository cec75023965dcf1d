package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Request модель запроса на создание бронирования из нескольких номеров
type Request struct {
	GuestID          int64
	RatePlanID       int64
	CheckIn          time.Time
	CheckOut         time.Time
	RoomIDs          []int64                // выбранные номера
	Occupancies      []domain.RoomOccupancy // группа i по умолчанию заселяется в номер i
	Overrides        map[int]int64          // индекс группы -> номер из RoomIDs
	CustomRoomTotals map[int64]float64      // ручная цена по номеру
	Status           domain.ReservationStatus
	Notes            *string
}

// UpdateDatesRequest модель запроса на перенос дат бронирования
type UpdateDatesRequest struct {
	BookingID uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
}

// Response модель ответа с бронированием
type Response struct {
	BookingID    uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
	Reservations []*domain.Reservation
}
