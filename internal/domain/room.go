package domain

import "fmt"

// HousekeepingStatus состояние уборки номера. Не зависит от бронирований
type HousekeepingStatus string

const (
	HousekeepingClean        HousekeepingStatus = "clean"
	HousekeepingDirty        HousekeepingStatus = "dirty"
	HousekeepingInspected    HousekeepingStatus = "inspected"
	HousekeepingOutOfService HousekeepingStatus = "out_of_service"
)

// RoomType категория размещения с общими ограничениями по вместимости
type RoomType struct {
	ID           int64
	Name         string
	MinOccupancy int
	MaxOccupancy int // максимум взрослых
	MaxChildren  int
	CategoryID   *int64
}

// Validate проверяет инвариант MaxOccupancy >= MinOccupancy >= 1
func (rt *RoomType) Validate() error {
	if rt.MinOccupancy < 1 {
		return fmt.Errorf("room type %d: min occupancy must be at least 1", rt.ID)
	}
	if rt.MaxOccupancy < rt.MinOccupancy {
		return fmt.Errorf("room type %d: max occupancy %d is less than min occupancy %d",
			rt.ID, rt.MaxOccupancy, rt.MinOccupancy)
	}
	if rt.MaxChildren < 0 {
		return fmt.Errorf("room type %d: max children must not be negative", rt.ID)
	}
	return nil
}

// CanHost returns true if one room of this type can host the given occupancy:
// MinOccupancy <= adults+children <= MaxOccupancy+MaxChildren
func (rt *RoomType) CanHost(o RoomOccupancy) bool {
	total := o.Total()
	return total >= rt.MinOccupancy && total <= rt.MaxOccupancy+rt.MaxChildren
}

// InCategories returns true if the room type passes a category filter.
// An empty filter, or a room type without category, always passes
func (rt *RoomType) InCategories(categoryIDs []int64) bool {
	if len(categoryIDs) == 0 || rt.CategoryID == nil {
		return true
	}
	for _, id := range categoryIDs {
		if id == *rt.CategoryID {
			return true
		}
	}
	return false
}

// Room физический номер
type Room struct {
	ID                 int64
	RoomTypeID         int64
	Number             string
	HousekeepingStatus HousekeepingStatus
}

// RoomsByType группирует номера по типу
func RoomsByType(rooms []*Room) map[int64][]*Room {
	result := make(map[int64][]*Room)
	for _, room := range rooms {
		result[room.RoomTypeID] = append(result[room.RoomTypeID], room)
	}
	return result
}
