package availability_grid

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Request модель запроса сетки занятости за период [From, To] включительно
type Request struct {
	RoomTypeID int64
	From       time.Time
	To         time.Time
}

// RoomTypeGridResponse занятость типа номера по дням
type RoomTypeGridResponse struct {
	RoomType *domain.RoomType
	Days     []domain.DayCell
}

// RoomGridResponse развернутая занятость: по каждому номеру типа
type RoomGridResponse struct {
	RoomType *domain.RoomType
	Rooms    []RoomRow
}

// RoomRow строка сетки для одного номера
type RoomRow struct {
	Room *domain.Room
	Days []domain.RoomDayCell
}
