package update_restrictions

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/service/restrictions/models"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// CreateRestrictionRequest HTTP request model
type CreateRestrictionRequest struct {
	RestrictionType string  `json:"restrictionType" validate:"required,oneof=min_stay checkin_days"`
	RoomTypeID      *int64  `json:"roomTypeId,omitempty" validate:"omitempty,gt=0"`
	StartDate       *string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate         *string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MinNights       *int    `json:"minNights,omitempty" validate:"omitempty,gte=1"`
	AllowedDays     []int   `json:"allowedDays,omitempty" validate:"omitempty,dive,gte=0,lte=6"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateRestrictionRequest) ToServiceRequest() (*models.CreateRestrictionRequest, error) {
	startDate, err := parseDatePtr(r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.CreateRestrictionRequest{
		Type:        r.RestrictionType,
		RoomTypeID:  r.RoomTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		MinNights:   r.MinNights,
		AllowedDays: r.AllowedDays,
	}, nil
}

// CreateClosedDateRequest HTTP request model
type CreateClosedDateRequest struct {
	RoomTypeID *int64  `json:"roomTypeId,omitempty" validate:"omitempty,gt=0"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Reason     *string `json:"reason,omitempty" validate:"omitempty,max=255"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateClosedDateRequest) ToServiceRequest() (*models.CreateClosedDateRequest, error) {
	date, err := dates.Parse(r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateClosedDateRequest{
		RoomTypeID: r.RoomTypeID,
		Date:       date,
		Reason:     r.Reason,
	}, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := dates.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
