package search_availability

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// FindAvailable возвращает типы номеров, способные принять весь запрос, в порядке объявления.
// Второе значение - признак отсутствия номеров в объекте: тогда проверяются только
// категория и вместимость, а результат носит рекомендательный характер
func FindAvailable(in Input, evaluator RestrictionEvaluator) ([]RoomTypeAvailability, bool) {
	result := make([]RoomTypeAvailability, 0)

	// Вырожденный случай: нет ни одного физического номера
	if len(in.Rooms) == 0 {
		for _, rt := range in.RoomTypes {
			if !rt.InCategories(in.CategoryIDs) {
				continue
			}
			if !canHostAll(rt, in.Occupancies) {
				continue
			}
			result = append(result, RoomTypeAvailability{RoomType: rt})
		}
		return result, true
	}

	roomsByType := domain.RoomsByType(in.Rooms)
	nights := in.Range.Days()
	bookedByType := countBookedByType(in.Range, in.Rooms, in.Reservations)
	requested := len(in.Occupancies)

	for _, rt := range in.RoomTypes {
		// Шаг 1: категория
		if !rt.InCategories(in.CategoryIDs) {
			continue
		}

		// Шаг 2: правила бронирования
		if !evaluator.Evaluate(in.Range.From, in.Range.To, rt.ID, in.Restrictions).IsValid {
			continue
		}

		// Шаг 2b: закрытые даты
		if isClosedOnAny(rt.ID, nights, in.ClosedDates) {
			continue
		}

		// Шаг 3: каждый запрошенный номер по отдельности укладывается во вместимость типа
		if !canHostAll(rt, in.Occupancies) {
			continue
		}

		// Шаг 4: физических номеров не меньше, чем запрошено
		units := len(roomsByType[rt.ID])
		if units < requested {
			continue
		}

		// Шаг 5: на каждую ночь периода свободных номеров не меньше, чем запрошено
		available, ok := minRemaining(units, nights, bookedByType[rt.ID], requested)
		if !ok {
			continue
		}

		result = append(result, RoomTypeAvailability{
			RoomType:       rt,
			UnitsTotal:     units,
			AvailableUnits: available,
		})
	}

	return result, false
}

// canHostAll каждая группа гостей должна помещаться в один номер типа.
// Номера не объединяются между группами
func canHostAll(rt *domain.RoomType, occupancies []domain.RoomOccupancy) bool {
	for _, occ := range occupancies {
		if !rt.CanHost(occ) {
			return false
		}
	}
	return true
}

// countBookedByType считает занятые номера по типу и дате внутри периода поиска.
// Бронирование учитывается на каждой дате [checkIn, checkOut), отмененные не учитываются
func countBookedByType(period dates.Range, rooms []*domain.Room, reservations []*domain.Reservation) map[int64]map[time.Time]int {
	typeByRoom := make(map[int64]int64, len(rooms))
	for _, room := range rooms {
		typeByRoom[room.ID] = room.RoomTypeID
	}

	result := make(map[int64]map[time.Time]int)
	for _, res := range reservations {
		if !res.Blocks() {
			continue
		}
		roomTypeID, ok := typeByRoom[res.RoomID]
		if !ok {
			continue
		}
		if !res.Stay().Overlaps(period) {
			continue
		}

		byDate, ok := result[roomTypeID]
		if !ok {
			byDate = make(map[time.Time]int)
			result[roomTypeID] = byDate
		}

		for _, d := range res.Stay().Days() {
			if period.Contains(d) {
				byDate[d]++
			}
		}
	}

	return result
}

// minRemaining минимальное число свободных номеров по ночам.
// false - хотя бы в одну ночь свободных меньше, чем requested
func minRemaining(units int, nights []time.Time, booked map[time.Time]int, requested int) (int, bool) {
	available := units
	for _, d := range nights {
		remaining := units - booked[d]
		if remaining < requested {
			return 0, false
		}
		if remaining < available {
			available = remaining
		}
	}
	return available, true
}

func isClosedOnAny(roomTypeID int64, nights []time.Time, closed []*domain.ClosedDate) bool {
	for _, c := range closed {
		if !c.AppliesToRoomType(roomTypeID) {
			continue
		}
		day := dates.Normalize(c.Date)
		for _, d := range nights {
			if d.Equal(day) {
				return true
			}
		}
	}
	return false
}
