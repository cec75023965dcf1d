package search_availability

import (
	"github.com/m04kA/SMC-StayService/internal/domain"
	searchAvailability "github.com/m04kA/SMC-StayService/internal/usecase/search_availability"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// DateRangeRequest период проживания: from - заезд, to - выезд
type DateRangeRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

// RoomOccupancyRequest состав гостей одного номера
type RoomOccupancyRequest struct {
	Adults   int `json:"adults" validate:"gte=1,lte=20"`
	Children int `json:"children" validate:"gte=0,lte=20"`
}

// SearchRequest HTTP request model
type SearchRequest struct {
	DateRange       DateRangeRequest       `json:"dateRange"`
	RoomOccupancies []RoomOccupancyRequest `json:"roomOccupancies" validate:"required,min=1,max=20,dive"`
	CategoryIDs     []int64                `json:"categoryIds,omitempty" validate:"omitempty,dive,gt=0"`
}

// RoomTypeResponse тип номера с числом свободных номеров
type RoomTypeResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CategoryID     *int64 `json:"categoryId,omitempty"`
	MinOccupancy   int    `json:"minOccupancy"`
	MaxOccupancy   int    `json:"maxOccupancy"`
	MaxChildren    int    `json:"maxChildren"`
	UnitsTotal     int    `json:"unitsTotal"`
	AvailableUnits int    `json:"availableUnits"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	RoomTypes      []RoomTypeResponse `json:"roomTypes"`
	HasNoInventory bool               `json:"hasNoInventory"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SearchRequest) ToUseCaseRequest() (*searchAvailability.Request, error) {
	from, err := dates.Parse(r.DateRange.From)
	if err != nil {
		return nil, err
	}
	to, err := dates.Parse(r.DateRange.To)
	if err != nil {
		return nil, err
	}

	occupancies := make([]domain.RoomOccupancy, 0, len(r.RoomOccupancies))
	for _, o := range r.RoomOccupancies {
		occupancies = append(occupancies, domain.RoomOccupancy{Adults: o.Adults, Children: o.Children})
	}

	return &searchAvailability.Request{
		DateRange:       dates.NewRange(from, to),
		RoomOccupancies: occupancies,
		CategoryIDs:     r.CategoryIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchAvailability.Response) *SearchResponse {
	result := &SearchResponse{
		RoomTypes:      make([]RoomTypeResponse, 0, len(resp.RoomTypes)),
		HasNoInventory: resp.HasNoInventory,
	}

	for _, rt := range resp.RoomTypes {
		result.RoomTypes = append(result.RoomTypes, RoomTypeResponse{
			ID:             rt.RoomType.ID,
			Name:           rt.RoomType.Name,
			CategoryID:     rt.RoomType.CategoryID,
			MinOccupancy:   rt.RoomType.MinOccupancy,
			MaxOccupancy:   rt.RoomType.MaxOccupancy,
			MaxChildren:    rt.RoomType.MaxChildren,
			UnitsTotal:     rt.UnitsTotal,
			AvailableUnits: rt.AvailableUnits,
		})
	}

	return result
}
