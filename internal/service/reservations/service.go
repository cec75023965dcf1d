package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StayService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetBooking получает бронирование со всеми номерами, включая отмененные
func (s *Service) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetBooking: fetching booking %s", bookingID)

	reservations, err := s.reservationRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		s.logger.Error("GetBooking: repository error for booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetBooking - repository error: %v", ErrInternal, err)
	}

	if len(reservations) == 0 {
		s.logger.Warn("GetBooking: booking %s not found", bookingID)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(bookingID, reservations), nil
}

// ListReservations возвращает бронирования номеров по фильтру.
// По умолчанию только действующие, отмененные - по IncludeCancelled или status=cancelled
//
// Примеры использования:
// - Заезды гостя: GuestID
// - Занятость номера за период: RoomID, From и To
// - Все подтвержденные: Status = "confirmed"
func (s *Service) ListReservations(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListReservations: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListReservations: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// UpdateStatus меняет статус номера по графу переходов
// tentative -> confirmed -> checked_in -> checked_out, отмена и no_show до выезда
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: reservation id=%d -> %s", id, req.Status)

	next, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var updated *domain.Reservation
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.getReservation(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		if !res.Status.CanTransitionTo(next) {
			s.logger.Warn("UpdateStatus: reservation id=%d cannot move from %s to %s", id, res.Status, next)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, next)
		}

		if err := s.setStatus(txCtx, "UpdateStatus", res.ID, next); err != nil {
			return err
		}

		updated, err = s.getReservation(txCtx, "UpdateStatus", id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: reservation id=%d is now %s", id, updated.Status)
	resp := models.FromDomainReservation(updated)
	return &resp, nil
}

// CancelBooking отменяет все номера бронирования, которые еще можно отменить.
// Отмененный номер сразу освобождает инвентарь
func (s *Service) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("CancelBooking: cancelling booking %s", bookingID)

	var result []*domain.Reservation
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservations, err := s.reservationRepo.GetByBookingID(txCtx, bookingID)
		if err != nil {
			s.logger.Error("CancelBooking: repository error for booking %s: %v", bookingID, err)
			return fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
		}
		if len(reservations) == 0 {
			s.logger.Warn("CancelBooking: booking %s not found", bookingID)
			return ErrBookingNotFound
		}

		cancelled := 0
		for _, res := range reservations {
			if !res.CanBeCancelled() {
				continue
			}
			if err := s.setStatus(txCtx, "CancelBooking", res.ID, domain.StatusCancelled); err != nil {
				return err
			}
			cancelled++
		}

		if cancelled == 0 {
			s.logger.Warn("CancelBooking: booking %s has nothing to cancel", bookingID)
			return ErrCannotCancel
		}

		result, err = s.reservationRepo.GetByBookingID(txCtx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CancelBooking: booking %s cancelled", bookingID)
	return models.FromDomainBooking(bookingID, result), nil
}

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}

func (s *Service) setStatus(ctx context.Context, op string, id int64, status domain.ReservationStatus) error {
	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("%s: failed to update reservation id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
