package get_room_type_availability

import (
	availabilityGrid "github.com/m04kA/SMC-StayService/internal/usecase/availability_grid"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// DayResponse ячейка календаря
type DayResponse struct {
	Date           string  `json:"date"`
	BookedCount    int     `json:"bookedCount"`
	UnitsTotal     int     `json:"unitsTotal"`
	Remaining      int     `json:"remaining"`
	OccupancyRate  float64 `json:"occupancyRate"`
	IsClosed       bool    `json:"isClosed"`
	HasCheckIn     bool    `json:"hasCheckIn"`
	HasCheckOut    bool    `json:"hasCheckOut"`
	ReservationIDs []int64 `json:"reservationIds"`
}

// RoomTypeAvailabilityResponse HTTP response model
type RoomTypeAvailabilityResponse struct {
	RoomTypeID int64         `json:"roomTypeId"`
	Name       string        `json:"name"`
	Days       []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *availabilityGrid.RoomTypeGridResponse) *RoomTypeAvailabilityResponse {
	result := &RoomTypeAvailabilityResponse{
		RoomTypeID: resp.RoomType.ID,
		Name:       resp.RoomType.Name,
		Days:       make([]DayResponse, 0, len(resp.Days)),
	}

	for i := range resp.Days {
		cell := &resp.Days[i]
		result.Days = append(result.Days, DayResponse{
			Date:           dates.Format(cell.Date),
			BookedCount:    cell.BookedCount,
			UnitsTotal:     cell.UnitsTotal,
			Remaining:      cell.Remaining(),
			OccupancyRate:  cell.OccupancyRate(),
			IsClosed:       cell.IsClosed,
			HasCheckIn:     cell.HasCheckIn,
			HasCheckOut:    cell.HasCheckOut,
			ReservationIDs: cell.ReservationIDs,
		})
	}

	return result
}
