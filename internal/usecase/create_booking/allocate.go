package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Allocate распределяет группы гостей по выбранным номерам 1:1.
// По умолчанию группа i заселяется в номер roomIDs[i]; overrides[i] переназначает группу
// на другой выбранный номер. customTotals копируются в назначения после распределения.
// Любое нарушение контракта (разная длина, повтор номера, переназначение или цена
// для невыбранного номера, два назначения в один номер) - ErrAllocationMismatch
func Allocate(
	roomIDs []int64,
	occupancies []domain.RoomOccupancy,
	overrides map[int]int64,
	customTotals map[int64]float64,
) ([]domain.Assignment, error) {
	if len(roomIDs) == 0 {
		return nil, fmt.Errorf("%w: no rooms selected", ErrAllocationMismatch)
	}

	if len(roomIDs) != len(occupancies) {
		return nil, fmt.Errorf("%w: %d rooms for %d occupancy groups", ErrAllocationMismatch, len(roomIDs), len(occupancies))
	}

	selected := make(map[int64]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		if _, dup := selected[id]; dup {
			return nil, fmt.Errorf("%w: room %d selected twice", ErrAllocationMismatch, id)
		}
		selected[id] = struct{}{}
	}

	for idx, roomID := range overrides {
		if idx < 0 || idx >= len(occupancies) {
			return nil, fmt.Errorf("%w: override for unknown group %d", ErrAllocationMismatch, idx)
		}
		if _, ok := selected[roomID]; !ok {
			return nil, fmt.Errorf("%w: group %d overridden to unselected room %d", ErrAllocationMismatch, idx, roomID)
		}
	}

	for roomID := range customTotals {
		if _, ok := selected[roomID]; !ok {
			return nil, fmt.Errorf("%w: custom total for unselected room %d", ErrAllocationMismatch, roomID)
		}
	}

	assignments := make([]domain.Assignment, 0, len(occupancies))
	used := make(map[int64]int, len(roomIDs))

	for i, occ := range occupancies {
		roomID := roomIDs[i]
		if override, ok := overrides[i]; ok {
			roomID = override
		}

		if prev, taken := used[roomID]; taken {
			return nil, fmt.Errorf("%w: room %d assigned to groups %d and %d", ErrAllocationMismatch, roomID, prev, i)
		}
		used[roomID] = i

		assignment := domain.Assignment{
			RoomID:   roomID,
			Adults:   occ.Adults,
			Children: occ.Children,
		}
		if total, ok := customTotals[roomID]; ok {
			t := total
			assignment.CustomTotal = &t
		}

		assignments = append(assignments, assignment)
	}

	return assignments, nil
}
