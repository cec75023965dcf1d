package availability_grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// UseCase use case построения сетки занятости для календаря
type UseCase struct {
	inventoryRepo   InventoryRepository
	reservationRepo ReservationRepository
	closedDateRepo  ClosedDateRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	inventoryRepo InventoryRepository,
	reservationRepo ReservationRepository,
	closedDateRepo ClosedDateRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		inventoryRepo:   inventoryRepo,
		reservationRepo: reservationRepo,
		closedDateRepo:  closedDateRepo,
		logger:          logger,
	}
}

// RoomTypeGrid возвращает занятость типа номера по дням [From, To]
func (uc *UseCase) RoomTypeGrid(ctx context.Context, req *Request) (*RoomTypeGridResponse, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RoomTypeGrid: validation failed: %v", err)
		return nil, err
	}

	grid := dates.Grid(req.From, req.To)
	first, last := grid[0], grid[len(grid)-1]

	roomType, rooms, err := uc.loadRoomType(ctx, "RoomTypeGrid", req.RoomTypeID)
	if err != nil {
		return nil, err
	}

	reservations, err := uc.loadReservations(ctx, "RoomTypeGrid", roomIDs(rooms), first, last)
	if err != nil {
		return nil, err
	}

	closed, err := uc.closedDateRepo.GetBetween(ctx, first, last)
	if err != nil {
		uc.logger.Warn("RoomTypeGrid: failed to get closed dates, continuing without them: %v", err)
		closed = nil
	}

	cells := BuildRoomTypeGrid(roomType.ID, grid, rooms, reservations, closed)

	uc.logger.Info("RoomTypeGrid: roomType=%d, %s..%s, units=%d, reservations=%d",
		roomType.ID, dates.Format(first), dates.Format(last), len(rooms), len(reservations))

	return &RoomTypeGridResponse{RoomType: roomType, Days: cells}, nil
}

// RoomGrid возвращает развернутую занятость каждого номера типа
func (uc *UseCase) RoomGrid(ctx context.Context, req *Request) (*RoomGridResponse, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RoomGrid: validation failed: %v", err)
		return nil, err
	}

	grid := dates.Grid(req.From, req.To)
	first, last := grid[0], grid[len(grid)-1]

	roomType, rooms, err := uc.loadRoomType(ctx, "RoomGrid", req.RoomTypeID)
	if err != nil {
		return nil, err
	}

	reservations, err := uc.loadReservations(ctx, "RoomGrid", roomIDs(rooms), first, last)
	if err != nil {
		return nil, err
	}

	rows := make([]RoomRow, 0, len(rooms))
	for _, room := range rooms {
		cells, err := BuildRoomGrid(room.ID, grid, reservations)
		if err != nil {
			uc.logger.Error("RoomGrid: %v", err)
			return nil, err
		}
		rows = append(rows, RoomRow{Room: room, Days: cells})
	}

	return &RoomGridResponse{RoomType: roomType, Rooms: rows}, nil
}

// RoomDay возвращает бронирование, занимающее номер в дату, или nil, если номер свободен
func (uc *UseCase) RoomDay(ctx context.Context, roomID int64, date time.Time) (*domain.Reservation, error) {
	if roomID <= 0 || date.IsZero() {
		return nil, fmt.Errorf("%w: roomID and date are required", ErrInvalidInput)
	}

	if _, err := uc.inventoryRepo.GetRoom(ctx, roomID); err != nil {
		if errors.Is(err, inventoryRepo.ErrRoomNotFound) {
			uc.logger.Warn("RoomDay: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("RoomDay: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	d := dates.Normalize(date)
	next := d.AddDate(0, 0, 1)
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		RoomIDs: []int64{roomID},
		From:    &d,
		To:      &next,
	})
	if err != nil {
		uc.logger.Error("RoomDay: failed to get reservations for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	res, err := occupyingReservation(roomID, d, reservations)
	if err != nil {
		uc.logger.Error("RoomDay: %v", err)
		return nil, err
	}

	return res, nil
}

func (uc *UseCase) loadRoomType(ctx context.Context, op string, roomTypeID int64) (*domain.RoomType, []*domain.Room, error) {
	roomType, err := uc.inventoryRepo.GetRoomType(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrRoomTypeNotFound) {
			uc.logger.Warn("%s: room type id=%d not found", op, roomTypeID)
			return nil, nil, ErrRoomTypeNotFound
		}
		uc.logger.Error("%s: failed to get room type id=%d: %v", op, roomTypeID, err)
		return nil, nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	rooms, err := uc.inventoryRepo.GetRoomsByType(ctx, roomTypeID)
	if err != nil {
		uc.logger.Error("%s: failed to get rooms of type id=%d: %v", op, roomTypeID, err)
		return nil, nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	return roomType, rooms, nil
}

// loadReservations загружает бронирования номеров, касающиеся сетки [first, last].
// Окно расширено на день назад, чтобы попали выезды в первый день сетки
func (uc *UseCase) loadReservations(ctx context.Context, op string, ids []int64, first, last time.Time) ([]*domain.Reservation, error) {
	if len(ids) == 0 {
		return []*domain.Reservation{}, nil
	}

	from := first.AddDate(0, 0, -1)
	to := last.AddDate(0, 0, 1)

	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		RoomIDs: ids,
		From:    &from,
		To:      &to,
	})
	if err != nil {
		uc.logger.Error("%s: failed to get reservations: %v", op, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	return reservations, nil
}

func roomIDs(rooms []*domain.Room) []int64 {
	ids := make([]int64, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}
	return ids
}
