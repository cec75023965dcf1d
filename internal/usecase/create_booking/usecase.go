package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-StayService/internal/integrations/guestservice"
	"github.com/m04kA/SMC-StayService/internal/usecase/validate_booking"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// UseCase use case для создания бронирования из нескольких номеров
type UseCase struct {
	inventoryRepo   InventoryRepository
	reservationRepo ReservationRepository
	validator       BookingValidator
	guests          GuestDirectory
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. guests может быть nil - проверка гостя отключена
func NewUseCase(
	inventoryRepo InventoryRepository,
	reservationRepo ReservationRepository,
	validator BookingValidator,
	guests GuestDirectory,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		inventoryRepo:   inventoryRepo,
		reservationRepo: reservationRepo,
		validator:       validator,
		guests:          guests,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка номеров и запись выполняются в одной сериализуемой транзакции:
// либо создаются все номера бронирования, либо ни один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%d, rooms=%v, %s..%s",
		req.GuestID, req.RoomIDs, dates.Format(req.CheckIn), dates.Format(req.CheckOut))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Распределяем группы гостей по номерам
	assignments, err := Allocate(req.RoomIDs, req.Occupancies, req.Overrides, req.CustomRoomTotals)
	if err != nil {
		uc.logger.Warn("CreateBooking: allocation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем гостя
	if err := uc.checkGuest(ctx, req.GuestID); err != nil {
		return nil, err
	}

	stay := dates.NewRange(req.CheckIn, req.CheckOut)
	status := req.Status
	if status == "" {
		status = domain.StatusTentative
	}
	bookingID := uuid.New()

	var created []*domain.Reservation

	// 4. Проверка и запись в транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Номера и вместимость
		if err := uc.checkRooms(txCtx, assignments); err != nil {
			return err
		}

		// 4.2. Повторная проверка каждого номера под блокировкой
		for _, a := range assignments {
			if err := uc.revalidate(txCtx, &validate_booking.Request{
				CheckIn:  stay.From,
				CheckOut: stay.To,
				RoomID:   a.RoomID,
				Adults:   a.Adults,
				Children: a.Children,
			}); err != nil {
				return err
			}
		}

		// 4.3. Запись всех номеров одной пачкой
		reservations := make([]*domain.Reservation, 0, len(assignments))
		for _, a := range assignments {
			reservations = append(reservations, &domain.Reservation{
				BookingID:   bookingID,
				RoomID:      a.RoomID,
				GuestID:     req.GuestID,
				RatePlanID:  req.RatePlanID,
				CheckIn:     stay.From,
				CheckOut:    stay.To,
				Status:      status,
				Adults:      a.Adults,
				Children:    a.Children,
				CustomTotal: a.CustomTotal,
				Notes:       req.Notes,
			})
		}

		result, err := uc.reservationRepo.CreateBatch(txCtx, reservations)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create reservations: %v", err)
			return fmt.Errorf("%w: failed to create reservations: %v", ErrInternal, err)
		}

		created = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking=%s created, rooms=%d", bookingID, len(created))

	return &Response{
		BookingID:    bookingID,
		CheckIn:      stay.From,
		CheckOut:     stay.To,
		Reservations: created,
	}, nil
}

// UpdateDates переносит даты всех действующих номеров бронирования.
// Номер не конфликтует с собственным бронированием
func (uc *UseCase) UpdateDates(ctx context.Context, req *UpdateDatesRequest) (*Response, error) {
	uc.logger.Info("UpdateBookingDates: booking=%s, %s..%s",
		req.BookingID, dates.Format(req.CheckIn), dates.Format(req.CheckOut))

	if req.BookingID == uuid.Nil {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if err := validateStay(req.CheckIn, req.CheckOut); err != nil {
		uc.logger.Warn("UpdateBookingDates: validation failed: %v", err)
		return nil, err
	}

	stay := dates.NewRange(req.CheckIn, req.CheckOut)
	var updated []*domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Номера бронирования
		reservations, err := uc.reservationRepo.GetByBookingID(txCtx, req.BookingID)
		if err != nil {
			uc.logger.Error("UpdateBookingDates: failed to get booking %s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if len(reservations) == 0 {
			uc.logger.Warn("UpdateBookingDates: booking %s not found", req.BookingID)
			return ErrBookingNotFound
		}

		// 2. Переносить можно только до заезда
		active := make([]*domain.Reservation, 0, len(reservations))
		for _, res := range reservations {
			if res.IsCancelled() {
				continue
			}
			if res.Status != domain.StatusTentative && res.Status != domain.StatusConfirmed {
				uc.logger.Warn("UpdateBookingDates: reservation id=%d has status %s", res.ID, res.Status)
				return fmt.Errorf("%w: reservation %d is %s", ErrBookingLocked, res.ID, res.Status)
			}
			active = append(active, res)
		}
		if len(active) == 0 {
			return fmt.Errorf("%w: all rooms are cancelled", ErrBookingLocked)
		}

		// 3. Проверка новых дат без учета самого бронирования
		bookingID := req.BookingID
		for _, res := range active {
			if err := uc.revalidate(txCtx, &validate_booking.Request{
				CheckIn:          stay.From,
				CheckOut:         stay.To,
				RoomID:           res.RoomID,
				Adults:           res.Adults,
				Children:         res.Children,
				ExcludeBookingID: &bookingID,
			}); err != nil {
				return err
			}
		}

		// 4. Запись
		for _, res := range active {
			if err := uc.reservationRepo.UpdateDates(txCtx, res.ID, stay.From, stay.To); err != nil {
				uc.logger.Error("UpdateBookingDates: failed to update reservation id=%d: %v", res.ID, err)
				return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
			}
			res.CheckIn = stay.From
			res.CheckOut = stay.To
		}

		updated = active
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		BookingID:    req.BookingID,
		CheckIn:      stay.From,
		CheckOut:     stay.To,
		Reservations: updated,
	}, nil
}

// checkGuest проверяет гостя в справочнике. Недоступность справочника не блокирует бронирование
func (uc *UseCase) checkGuest(ctx context.Context, guestID int64) error {
	if uc.guests == nil {
		return nil
	}

	guest, err := uc.guests.GetGuestWithGracefulDegradation(ctx, guestID)
	if err != nil {
		switch {
		case errors.Is(err, guestservice.ErrGuestNotFound):
			uc.logger.Warn("CreateBooking: guest id=%d not found", guestID)
			return ErrGuestNotFound
		case errors.Is(err, guestservice.ErrServiceDegraded):
			uc.logger.Warn("CreateBooking: guest directory degraded, skipping guest check: %v", err)
			return nil
		default:
			uc.logger.Error("CreateBooking: failed to get guest id=%d: %v", guestID, err)
			return fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
		}
	}

	if guest.IsBlocked {
		uc.logger.Warn("CreateBooking: guest id=%d is blocked", guestID)
		return ErrGuestBlocked
	}

	return nil
}

// checkRooms проверяет существование номеров и вместимость их типов
func (uc *UseCase) checkRooms(ctx context.Context, assignments []domain.Assignment) error {
	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.RoomID)
	}

	rooms, err := uc.inventoryRepo.GetRoomsByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get rooms %v: %v", ids, err)
		return fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	byID := make(map[int64]*domain.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}

	roomTypes := make(map[int64]*domain.RoomType)
	for _, a := range assignments {
		room, ok := byID[a.RoomID]
		if !ok {
			uc.logger.Warn("CreateBooking: room id=%d not found", a.RoomID)
			return fmt.Errorf("%w: room %d", ErrRoomNotFound, a.RoomID)
		}

		roomType, ok := roomTypes[room.RoomTypeID]
		if !ok {
			roomType, err = uc.inventoryRepo.GetRoomType(ctx, room.RoomTypeID)
			if err != nil {
				if errors.Is(err, inventoryRepo.ErrRoomTypeNotFound) {
					uc.logger.Error("CreateBooking: room id=%d references missing room type id=%d", room.ID, room.RoomTypeID)
				}
				return fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
			}
			roomTypes[room.RoomTypeID] = roomType
		}

		if !roomType.CanHost(a.Occupancy()) {
			uc.logger.Warn("CreateBooking: %d adults + %d children do not fit room id=%d (type id=%d)",
				a.Adults, a.Children, room.ID, roomType.ID)
			return fmt.Errorf("%w: room %d", ErrOccupancyExceeded, room.ID)
		}
	}

	return nil
}

// revalidate прогоняет проверку номера и переводит отказ в ошибку
func (uc *UseCase) revalidate(ctx context.Context, req *validate_booking.Request) error {
	result, err := uc.validator.Execute(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, validate_booking.ErrRoomNotFound):
			return fmt.Errorf("%w: room %d", ErrRoomNotFound, req.RoomID)
		case errors.Is(err, validate_booking.ErrInvalidInput):
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			return fmt.Errorf("%w: failed to validate room %d: %v", ErrInternal, req.RoomID, err)
		}
	}

	if result.IsValid {
		return nil
	}

	rejection := &RejectionError{RoomID: req.RoomID, Message: result.Message, Err: ErrRestrictionViolated}
	switch result.Reason {
	case validate_booking.ReasonOverlap:
		rejection.Err = ErrRoomNotAvailable
	case validate_booking.ReasonOccupancy:
		rejection.Err = ErrOccupancyExceeded
	}

	uc.logger.Warn("CreateBooking: %v", rejection)
	return rejection
}
