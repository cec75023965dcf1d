package models

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Request модели

// CreateRestrictionRequest запрос на создание правила бронирования
type CreateRestrictionRequest struct {
	Type        string     `json:"restrictionType"`
	RoomTypeID  *int64     `json:"roomTypeId,omitempty"` // nil = для всех типов
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	MinNights   *int       `json:"minNights,omitempty"`
	AllowedDays []int      `json:"allowedDays,omitempty"`
}

// ToDomain конвертирует запрос в доменную модель
func (r *CreateRestrictionRequest) ToDomain() *domain.Restriction {
	return &domain.Restriction{
		Type:       domain.RestrictionType(r.Type),
		RoomTypeID: r.RoomTypeID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Value: domain.RestrictionValue{
			MinNights:   r.MinNights,
			AllowedDays: r.AllowedDays,
		},
	}
}

// CreateClosedDateRequest запрос на закрытие продаж на дату
type CreateClosedDateRequest struct {
	RoomTypeID *int64    `json:"roomTypeId,omitempty"` // nil = весь объект
	Date       time.Time `json:"date"`
	Reason     *string   `json:"reason,omitempty"`
}

// Response модели

// RestrictionValueResponse полезная нагрузка правила
type RestrictionValueResponse struct {
	MinNights   *int  `json:"minNights,omitempty"`
	AllowedDays []int `json:"allowedDays,omitempty"`
}

// RestrictionResponse правило бронирования
type RestrictionResponse struct {
	ID              int64                    `json:"id"`
	RestrictionType string                   `json:"restrictionType"`
	RoomTypeID      *int64                   `json:"roomTypeId,omitempty"`
	StartDate       *string                  `json:"startDate,omitempty"`
	EndDate         *string                  `json:"endDate,omitempty"`
	Value           RestrictionValueResponse `json:"value"`
}

// ClosedDateResponse закрытая дата
type ClosedDateResponse struct {
	ID         int64   `json:"id"`
	RoomTypeID *int64  `json:"roomTypeId,omitempty"`
	Date       string  `json:"date"`
	Reason     *string `json:"reason,omitempty"`
}

// FromDomainRestriction конвертирует domain модель в DTO
func FromDomainRestriction(r *domain.Restriction) RestrictionResponse {
	return RestrictionResponse{
		ID:              r.ID,
		RestrictionType: string(r.Type),
		RoomTypeID:      r.RoomTypeID,
		StartDate:       formatDatePtr(r.StartDate),
		EndDate:         formatDatePtr(r.EndDate),
		Value: RestrictionValueResponse{
			MinNights:   r.Value.MinNights,
			AllowedDays: r.Value.AllowedDays,
		},
	}
}

// FromDomainRestrictionList конвертирует список правил
func FromDomainRestrictionList(list []*domain.Restriction) []RestrictionResponse {
	result := make([]RestrictionResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainRestriction(r))
	}
	return result
}

// FromDomainClosedDate конвертирует domain модель в DTO
func FromDomainClosedDate(c *domain.ClosedDate) ClosedDateResponse {
	return ClosedDateResponse{
		ID:         c.ID,
		RoomTypeID: c.RoomTypeID,
		Date:       c.Date.Format(domain.DateFormat),
		Reason:     c.Reason,
	}
}

// FromDomainClosedDateList конвертирует список закрытых дат
func FromDomainClosedDateList(list []*domain.ClosedDate) []ClosedDateResponse {
	result := make([]ClosedDateResponse, 0, len(list))
	for _, c := range list {
		result = append(result, FromDomainClosedDate(c))
	}
	return result
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
