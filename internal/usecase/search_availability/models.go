package search_availability

import (
	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// Request модель запроса поиска свободных типов номеров
type Request struct {
	DateRange       dates.Range            // [from, to), день выезда не занят
	RoomOccupancies []domain.RoomOccupancy // одна запись на каждый запрашиваемый номер
	CategoryIDs     []int64                // пусто - без фильтра
}

// Response модель ответа
type Response struct {
	RoomTypes      []RoomTypeAvailability
	HasNoInventory bool // в объекте нет ни одного номера: результат только по вместимости
}

// RoomTypeAvailability тип номера, способный принять весь запрос
type RoomTypeAvailability struct {
	RoomType       *domain.RoomType
	UnitsTotal     int
	AvailableUnits int // минимум свободных номеров по ночам периода
}

// Input все данные, нужные для поиска. Собирается usecase'ом из репозиториев
type Input struct {
	Range        dates.Range
	Occupancies  []domain.RoomOccupancy
	CategoryIDs  []int64
	RoomTypes    []*domain.RoomType
	Rooms        []*domain.Room
	Reservations []*domain.Reservation
	Restrictions []*domain.Restriction
	ClosedDates  []*domain.ClosedDate
}
