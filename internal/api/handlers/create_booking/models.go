package create_booking

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
	createBooking "github.com/m04kA/SMC-StayService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// RoomOccupancyRequest состав гостей одного номера
type RoomOccupancyRequest struct {
	Adults   int `json:"adults" validate:"gte=1,lte=20"`
	Children int `json:"children" validate:"gte=0,lte=20"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestID          int64                  `json:"guestId" validate:"required,gt=0"`
	RatePlanID       int64                  `json:"ratePlanId" validate:"required,gt=0"`
	CheckIn          string                 `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut         string                 `json:"checkOut" validate:"required,datetime=2006-01-02"`
	RoomIDs          []int64                `json:"roomIds" validate:"required,min=1,max=20,dive,gt=0"`
	RoomOccupancies  []RoomOccupancyRequest `json:"roomOccupancies" validate:"required,min=1,max=20,dive"`
	Overrides        map[string]int64       `json:"overrides,omitempty"`        // индекс группы -> номер
	CustomRoomTotals map[string]float64     `json:"customRoomTotals,omitempty"` // номер -> цена
	Status           string                 `json:"status,omitempty" validate:"omitempty,oneof=tentative confirmed"`
	Notes            *string                `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID    string                       `json:"bookingId"`
	CheckIn      string                       `json:"checkIn"`
	CheckOut     string                       `json:"checkOut"`
	Reservations []models.ReservationResponse `json:"reservations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := dates.Parse(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := dates.Parse(r.CheckOut)
	if err != nil {
		return nil, err
	}

	occupancies := make([]domain.RoomOccupancy, 0, len(r.RoomOccupancies))
	for _, o := range r.RoomOccupancies {
		occupancies = append(occupancies, domain.RoomOccupancy{Adults: o.Adults, Children: o.Children})
	}

	// ключи JSON объектов - строки
	overrides := make(map[int]int64, len(r.Overrides))
	for key, roomID := range r.Overrides {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("override key %q is not a group index", key)
		}
		overrides[idx] = roomID
	}

	totals := make(map[int64]float64, len(r.CustomRoomTotals))
	for key, total := range r.CustomRoomTotals {
		roomID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("custom total key %q is not a room id", key)
		}
		totals[roomID] = total
	}

	return &createBooking.Request{
		GuestID:          r.GuestID,
		RatePlanID:       r.RatePlanID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		RoomIDs:          r.RoomIDs,
		Occupancies:      occupancies,
		Overrides:        overrides,
		CustomRoomTotals: totals,
		Status:           domain.ReservationStatus(r.Status),
		Notes:            r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	result := &BookingResponse{
		BookingID:    resp.BookingID.String(),
		CheckIn:      dates.Format(resp.CheckIn),
		CheckOut:     dates.Format(resp.CheckOut),
		Reservations: make([]models.ReservationResponse, 0, len(resp.Reservations)),
	}
	for _, r := range resp.Reservations {
		result.Reservations = append(result.Reservations, models.FromDomainReservation(r))
	}
	return result
}
