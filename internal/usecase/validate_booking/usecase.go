package validate_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

const resultValid = "valid"

// UseCase повторная проверка номера непосредственно перед записью бронирования.
// Повторяет проверки вместимости, правил и пересечений из поиска, но для конкретного номера
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	restrictions    RestrictionSource
	evaluator       RestrictionEvaluator
	metrics         MetricsCollector
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	restrictions RestrictionSource,
	evaluator RestrictionEvaluator,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		restrictions:    restrictions,
		evaluator:       evaluator,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute проверяет запрос. Бизнес-отказ возвращается как Result с IsValid=false.
// Если в ctx есть транзакция, бронирования номера читаются с блокировкой строк
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateBooking: validation failed: %v", err)
		uc.count("error")
		return nil, err
	}

	stay := dates.NewRange(req.CheckIn, req.CheckOut)

	// 1. Даты
	if !stay.IsValid() {
		return uc.reject(req, ReasonInvalidDates, domain.MsgInvalidDateRange), nil
	}

	// 2. Номер
	room, err := uc.roomRepo.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrRoomNotFound) {
			uc.logger.Warn("ValidateBooking: room id=%d not found", req.RoomID)
			uc.count("error")
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("ValidateBooking: failed to get room id=%d: %v", req.RoomID, err)
		uc.count("error")
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Вместимость типа номера
	roomType, err := uc.roomRepo.GetRoomType(ctx, room.RoomTypeID)
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrRoomTypeNotFound) {
			uc.logger.Error("ValidateBooking: room id=%d references missing room type id=%d", room.ID, room.RoomTypeID)
		} else {
			uc.logger.Error("ValidateBooking: failed to get room type id=%d: %v", room.RoomTypeID, err)
		}
		uc.count("error")
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	if !roomType.CanHost(domain.RoomOccupancy{Adults: req.Adults, Children: req.Children}) {
		return uc.reject(req, ReasonOccupancy, domain.MsgOccupancyExceeded), nil
	}

	// 4. Пересечения с действующими бронированиями номера
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationsFilter{
		RoomIDs:          []int64{room.ID},
		From:             &stay.From,
		To:               &stay.To,
		ExcludeBookingID: req.ExcludeBookingID,
	})
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to get reservations for room id=%d: %v", room.ID, err)
		uc.count("error")
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	for _, res := range reservations {
		if req.ExcludeBookingID != nil && res.BookingID == *req.ExcludeBookingID {
			continue
		}
		if res.Blocks() && res.Stay().Overlaps(stay) {
			uc.logger.Info("ValidateBooking: room id=%d, %s overlaps reservation id=%d (%s)",
				room.ID, stay, res.ID, res.Stay())
			return uc.reject(req, ReasonOverlap, domain.MsgRoomAlreadyBooked), nil
		}
	}

	// 5. Правила бронирования. Ошибка загрузки - работаем без правил
	list, err := uc.restrictions.GetAll(ctx)
	if err != nil {
		uc.logger.Warn("ValidateBooking: failed to get restrictions, continuing without them: %v", err)
		list = nil
	}

	if verdict := uc.evaluator.Evaluate(stay.From, stay.To, room.RoomTypeID, list); !verdict.IsValid {
		return uc.reject(req, ReasonRestriction, verdict.Message), nil
	}

	uc.count(resultValid)
	return valid(), nil
}

func (uc *UseCase) reject(req *Request, reason, message string) *Result {
	uc.logger.Info("ValidateBooking: room id=%d, %s..%s rejected: %s",
		req.RoomID, dates.Format(req.CheckIn), dates.Format(req.CheckOut), message)
	uc.count(reason)
	return rejected(reason, message)
}

func (uc *UseCase) count(result string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingValidation(result)
	}
}
