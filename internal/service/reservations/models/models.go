package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса номера в бронировании
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListReservationsRequest запрос на список бронирований номеров.
// Период [From, To] включительно, как в календаре
type ListReservationsRequest struct {
	GuestID          *int64
	RoomID           *int64
	From             *time.Time
	To               *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		GuestID:          r.GuestID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.RoomID != nil {
		filter.RoomIDs = []int64{*r.RoomID}
	}

	if r.From != nil && r.To != nil {
		from := dates.Normalize(*r.From)
		to := dates.Normalize(*r.To).AddDate(0, 0, 1)
		if !to.After(from) {
			return filter, errors.New("'to' is before 'from'")
		}
		filter.From = &from
		filter.To = &to
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
		if status == domain.StatusCancelled {
			filter.IncludeCancelled = true
		}
	}

	return filter, nil
}

// Response модели

// ReservationResponse номер в составе бронирования
type ReservationResponse struct {
	ID          int64    `json:"id"`
	BookingID   string   `json:"bookingId"`
	RoomID      int64    `json:"roomId"`
	GuestID     int64    `json:"guestId"`
	RatePlanID  int64    `json:"ratePlanId"`
	CheckIn     string   `json:"checkIn"`  // "2024-01-10"
	CheckOut    string   `json:"checkOut"` // дата выезда, ночь не входит
	Nights      int      `json:"nights"`
	Status      string   `json:"status"`
	Adults      int      `json:"adults"`
	Children    int      `json:"children"`
	CustomTotal *float64 `json:"customTotal,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	CancelledAt *string  `json:"cancelledAt,omitempty"` // RFC3339
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// BookingResponse бронирование целиком
type BookingResponse struct {
	BookingID    string                `json:"bookingId"`
	GuestID      int64                 `json:"guestId"`
	CheckIn      string                `json:"checkIn"`
	CheckOut     string                `json:"checkOut"`
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservationList конвертирует список бронирований номеров
func FromDomainReservationList(list []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return result
}

// ToDomainReservationStatus конвертирует строку в статус
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:          r.ID,
		BookingID:   r.BookingID.String(),
		RoomID:      r.RoomID,
		GuestID:     r.GuestID,
		RatePlanID:  r.RatePlanID,
		CheckIn:     dates.Format(r.CheckIn),
		CheckOut:    dates.Format(r.CheckOut),
		Nights:      r.Stay().Nights(),
		Status:      string(r.Status),
		Adults:      r.Adults,
		Children:    r.Children,
		CustomTotal: r.CustomTotal,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}

	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBooking собирает бронирование из его номеров.
// Даты бронирования - самый ранний заезд и самый поздний выезд
func FromDomainBooking(bookingID uuid.UUID, reservations []*domain.Reservation) *BookingResponse {
	resp := &BookingResponse{
		BookingID:    bookingID.String(),
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	var checkIn, checkOut time.Time
	for i, r := range reservations {
		if i == 0 || r.CheckIn.Before(checkIn) {
			checkIn = r.CheckIn
		}
		if i == 0 || r.CheckOut.After(checkOut) {
			checkOut = r.CheckOut
		}
		resp.GuestID = r.GuestID
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r))
	}

	if len(reservations) > 0 {
		resp.CheckIn = dates.Format(checkIn)
		resp.CheckOut = dates.Format(checkOut)
	}

	return resp
}
