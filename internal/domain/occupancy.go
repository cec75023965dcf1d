package domain

// RoomOccupancy desired composition of one room in a multi-room request
type RoomOccupancy struct {
	Adults   int
	Children int
}

// Total number of guests
func (o RoomOccupancy) Total() int {
	return o.Adults + o.Children
}

// Assignment результат распределения: конкретный номер для конкретной группы гостей
type Assignment struct {
	RoomID      int64
	Adults      int
	Children    int
	CustomTotal *float64 // ручная цена за номер, не влияет на распределение
}

// Occupancy returns the guest composition of the assignment
func (a Assignment) Occupancy() RoomOccupancy {
	return RoomOccupancy{Adults: a.Adults, Children: a.Children}
}
