package get_room_availability

import (
	availabilityGrid "github.com/m04kA/SMC-StayService/internal/usecase/availability_grid"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// RoomDayResponse ячейка развернутого календаря
type RoomDayResponse struct {
	Date          string `json:"date"`
	ReservationID *int64 `json:"reservationId,omitempty"`
	IsCheckIn     bool   `json:"isCheckIn"`
}

// RoomRowResponse строка календаря одного номера
type RoomRowResponse struct {
	RoomID             int64             `json:"roomId"`
	Number             string            `json:"number"`
	HousekeepingStatus string            `json:"housekeepingStatus"`
	Days               []RoomDayResponse `json:"days"`
}

// RoomAvailabilityResponse HTTP response model
type RoomAvailabilityResponse struct {
	RoomTypeID int64             `json:"roomTypeId"`
	Name       string            `json:"name"`
	Rooms      []RoomRowResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *availabilityGrid.RoomGridResponse) *RoomAvailabilityResponse {
	result := &RoomAvailabilityResponse{
		RoomTypeID: resp.RoomType.ID,
		Name:       resp.RoomType.Name,
		Rooms:      make([]RoomRowResponse, 0, len(resp.Rooms)),
	}

	for _, row := range resp.Rooms {
		days := make([]RoomDayResponse, 0, len(row.Days))
		for _, cell := range row.Days {
			days = append(days, RoomDayResponse{
				Date:          dates.Format(cell.Date),
				ReservationID: cell.ReservationID,
				IsCheckIn:     cell.IsCheckIn,
			})
		}

		result.Rooms = append(result.Rooms, RoomRowResponse{
			RoomID:             row.Room.ID,
			Number:             row.Room.Number,
			HousekeepingStatus: string(row.Room.HousekeepingStatus),
			Days:               days,
		})
	}

	return result
}
