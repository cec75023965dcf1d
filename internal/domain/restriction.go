package domain

import (
	"fmt"
	"time"
)

// RestrictionType вид ограничения бронирования
type RestrictionType string

const (
	RestrictionMinStay     RestrictionType = "min_stay"
	RestrictionCheckInDays RestrictionType = "checkin_days"
)

// IsValid returns true if the restriction type is known
func (t RestrictionType) IsValid() bool {
	return t == RestrictionMinStay || t == RestrictionCheckInDays
}

// RestrictionValue полезная нагрузка правила: {minNights} или {allowedDays}
type RestrictionValue struct {
	MinNights   *int  `json:"minNights,omitempty"`
	AllowedDays []int `json:"allowedDays,omitempty"` // 0=воскресенье..6=суббота
}

// Restriction правило, ограничивающее допустимые проживания.
// Область действия: тип номера (nil - все типы) и окно дат [StartDate, EndDate]
type Restriction struct {
	ID         int64
	Type       RestrictionType
	RoomTypeID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Value      RestrictionValue
	CreatedAt  time.Time
}

// HasWindow returns true if both window bounds are set
func (r *Restriction) HasWindow() bool {
	return r.StartDate != nil && r.EndDate != nil
}

// HasPartialWindow returns true if exactly one window bound is set
func (r *Restriction) HasPartialWindow() bool {
	return (r.StartDate == nil) != (r.EndDate == nil)
}

// AppliesToRoomType returns true if the rule is global or scoped to roomTypeID
func (r *Restriction) AppliesToRoomType(roomTypeID int64) bool {
	return r.RoomTypeID == nil || *r.RoomTypeID == roomTypeID
}

// AllowsWeekday returns true if check-in on weekday is permitted
func (r *Restriction) AllowsWeekday(weekday time.Weekday) bool {
	for _, d := range r.Value.AllowedDays {
		if time.Weekday(d) == weekday {
			return true
		}
	}
	return false
}

// Validate проверяет согласованность правила
func (r *Restriction) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("unknown restriction type %q", r.Type)
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return fmt.Errorf("restriction window end %s is before start %s",
			r.EndDate.Format(DateFormat), r.StartDate.Format(DateFormat))
	}

	switch r.Type {
	case RestrictionMinStay:
		if r.Value.MinNights == nil || *r.Value.MinNights < 1 {
			return fmt.Errorf("min_stay restriction requires minNights >= 1")
		}
	case RestrictionCheckInDays:
		if len(r.Value.AllowedDays) == 0 {
			return fmt.Errorf("checkin_days restriction requires at least one allowed day")
		}
		for _, d := range r.Value.AllowedDays {
			if d < 0 || d > 6 {
				return fmt.Errorf("allowed day %d is out of range 0..6", d)
			}
		}
	}

	return nil
}

// ClosedDate stop-sell на конкретную дату. RoomTypeID == nil - закрыт весь объект
type ClosedDate struct {
	ID         int64
	RoomTypeID *int64
	Date       time.Time
	Reason     *string
	CreatedAt  time.Time
}

// AppliesToRoomType returns true if the closure covers the room type
func (c *ClosedDate) AppliesToRoomType(roomTypeID int64) bool {
	return c.RoomTypeID == nil || *c.RoomTypeID == roomTypeID
}
