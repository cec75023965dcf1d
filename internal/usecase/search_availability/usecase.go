package search_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// Значения метки result счетчика поисков
const (
	resultAvailable   = "available"
	resultNone        = "none"
	resultNoInventory = "no_inventory"
	resultInvalid     = "invalid"
	resultError       = "error"
)

// UseCase use case поиска свободных типов номеров
type UseCase struct {
	inventoryRepo   InventoryRepository
	reservationRepo ReservationRepository
	restrictions    RestrictionSource
	closedDateRepo  ClosedDateRepository
	evaluator       RestrictionEvaluator
	metrics         MetricsCollector
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	inventoryRepo InventoryRepository,
	reservationRepo ReservationRepository,
	restrictions RestrictionSource,
	closedDateRepo ClosedDateRepository,
	evaluator RestrictionEvaluator,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		inventoryRepo:   inventoryRepo,
		reservationRepo: reservationRepo,
		restrictions:    restrictions,
		closedDateRepo:  closedDateRepo,
		evaluator:       evaluator,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет поиск
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchAvailability: validation failed: %v", err)
		uc.count(resultInvalid)
		return nil, err
	}

	period := dates.NewRange(req.DateRange.From, req.DateRange.To)
	uc.logger.Info("SearchAvailability: period=%s, rooms=%d, categories=%v",
		period, len(req.RoomOccupancies), req.CategoryIDs)

	// 2. Типы номеров и физические номера
	roomTypes, err := uc.inventoryRepo.GetRoomTypes(ctx)
	if err != nil {
		uc.logger.Error("SearchAvailability: failed to get room types: %v", err)
		uc.count(resultError)
		return nil, fmt.Errorf("%w: failed to get room types: %v", ErrInternal, err)
	}

	rooms, err := uc.inventoryRepo.GetRooms(ctx)
	if err != nil {
		uc.logger.Error("SearchAvailability: failed to get rooms: %v", err)
		uc.count(resultError)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	in := Input{
		Range:       period,
		Occupancies: req.RoomOccupancies,
		CategoryIDs: req.CategoryIDs,
		RoomTypes:   roomTypes,
		Rooms:       rooms,
	}

	// 3. Без номеров занятость и правила не проверяются
	if len(rooms) == 0 {
		found, _ := FindAvailable(in, uc.evaluator)
		uc.logger.Warn("SearchAvailability: no rooms configured, returning %d room types by occupancy only", len(found))
		uc.count(resultNoInventory)
		return &Response{RoomTypes: found, HasNoInventory: true}, nil
	}

	// 4. Бронирования, пересекающиеся с периодом. Ошибку нельзя трактовать как "все свободно"
	in.Reservations, err = uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		From: &period.From,
		To:   &period.To,
	})
	if err != nil {
		uc.logger.Error("SearchAvailability: failed to get reservations: %v", err)
		uc.count(resultError)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Правила и закрытые даты: при ошибке продолжаем без них
	in.Restrictions, err = uc.restrictions.GetAll(ctx)
	if err != nil {
		uc.logger.Warn("SearchAvailability: failed to get restrictions, continuing without them: %v", err)
		in.Restrictions = nil
	}

	lastNight := period.To.AddDate(0, 0, -1)
	in.ClosedDates, err = uc.closedDateRepo.GetBetween(ctx, period.From, lastNight)
	if err != nil {
		uc.logger.Warn("SearchAvailability: failed to get closed dates, continuing without them: %v", err)
		in.ClosedDates = nil
	}

	// 6. Поиск
	found, _ := FindAvailable(in, uc.evaluator)

	uc.logger.Info("SearchAvailability: period=%s, %d of %d room types available",
		period, len(found), len(roomTypes))

	if len(found) == 0 {
		uc.count(resultNone)
	} else {
		uc.count(resultAvailable)
	}

	return &Response{RoomTypes: found}, nil
}

func (uc *UseCase) count(result string) {
	if uc.metrics != nil {
		uc.metrics.IncAvailabilitySearch(result)
	}
}
