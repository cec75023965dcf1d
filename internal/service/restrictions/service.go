package restrictions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	closedDateRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/closeddate"
	inventoryRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/inventory"
	restrictionRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/restriction"
	"github.com/m04kA/SMC-StayService/internal/service/restrictions/models"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// Service сервис администрирования правил бронирования и закрытых дат
type Service struct {
	restrictionRepo RestrictionRepository
	closedDateRepo  ClosedDateRepository
	roomTypes       RoomTypeReader
	cache           CacheInvalidator
	logger          Logger
}

// NewService создает новый экземпляр сервиса. cache может быть nil
func NewService(
	restrictionRepo RestrictionRepository,
	closedDateRepo ClosedDateRepository,
	roomTypes RoomTypeReader,
	cache CacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		restrictionRepo: restrictionRepo,
		closedDateRepo:  closedDateRepo,
		roomTypes:       roomTypes,
		cache:           cache,
		logger:          logger,
	}
}

// List возвращает все правила в порядке применения
func (s *Service) List(ctx context.Context) ([]models.RestrictionResponse, error) {
	list, err := s.restrictionRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d restrictions", len(list))
	return models.FromDomainRestrictionList(list), nil
}

// Create создает правило бронирования.
// Проверяет payload по типу правила и существование типа номера (если указан)
func (s *Service) Create(ctx context.Context, req *models.CreateRestrictionRequest) (*models.RestrictionResponse, error) {
	s.logger.Info("Create: creating restriction type=%s, roomType=%v", req.Type, req.RoomTypeID)

	restriction := req.ToDomain()
	if restriction.StartDate != nil {
		restriction.StartDate = ptrDate(*restriction.StartDate)
	}
	if restriction.EndDate != nil {
		restriction.EndDate = ptrDate(*restriction.EndDate)
	}

	if err := restriction.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkRoomType(ctx, restriction.RoomTypeID); err != nil {
		return nil, err
	}

	created, err := s.restrictionRepo.Create(ctx, restriction)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)

	s.logger.Info("Create: successfully created restriction id=%d", created.ID)
	resp := models.FromDomainRestriction(created)
	return &resp, nil
}

// Delete удаляет правило
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting restriction id=%d", id)

	if err := s.restrictionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, restrictionRepo.ErrRestrictionNotFound) {
			s.logger.Warn("Delete: restriction id=%d not found", id)
			return ErrRestrictionNotFound
		}
		s.logger.Error("Delete: repository error for restriction id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)
	return nil
}

// ListClosedDates возвращает закрытые даты в диапазоне [from, to]
func (s *Service) ListClosedDates(ctx context.Context, from, to time.Time) ([]models.ClosedDateResponse, error) {
	from, to = dates.Normalize(from), dates.Normalize(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	list, err := s.closedDateRepo.GetBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("ListClosedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClosedDates - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClosedDateList(list), nil
}

// CreateClosedDate закрывает продажи на дату для типа номера или всего объекта
func (s *Service) CreateClosedDate(ctx context.Context, req *models.CreateClosedDateRequest) (*models.ClosedDateResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.checkRoomType(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}

	created, err := s.closedDateRepo.Create(ctx, &domain.ClosedDate{
		RoomTypeID: req.RoomTypeID,
		Date:       dates.Normalize(req.Date),
		Reason:     req.Reason,
	})
	if err != nil {
		s.logger.Error("CreateClosedDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateClosedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateClosedDate: closed %s for roomType=%v", dates.Format(created.Date), created.RoomTypeID)
	resp := models.FromDomainClosedDate(created)
	return &resp, nil
}

// DeleteClosedDate снова открывает продажи на дату
func (s *Service) DeleteClosedDate(ctx context.Context, id int64) error {
	if err := s.closedDateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, closedDateRepo.ErrClosedDateNotFound) {
			s.logger.Warn("DeleteClosedDate: closed date id=%d not found", id)
			return ErrClosedDateNotFound
		}
		s.logger.Error("DeleteClosedDate: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteClosedDate - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) checkRoomType(ctx context.Context, roomTypeID *int64) error {
	if roomTypeID == nil {
		return nil
	}

	if _, err := s.roomTypes.GetRoomType(ctx, *roomTypeID); err != nil {
		if errors.Is(err, inventoryRepo.ErrRoomTypeNotFound) {
			s.logger.Warn("checkRoomType: room type id=%d not found", *roomTypeID)
			return ErrRoomTypeNotFound
		}
		s.logger.Error("checkRoomType: failed to get room type id=%d: %v", *roomTypeID, err)
		return fmt.Errorf("%w: checkRoomType - repository error: %v", ErrInternal, err)
	}
	return nil
}

// invalidate сбрасывает кэш правил. Ошибка кэша не отменяет запись:
// после TTL кэш все равно обновится
func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("invalidate: failed to invalidate restrictions cache: %v", err)
	}
}

func ptrDate(t time.Time) *time.Time {
	d := dates.Normalize(t)
	return &d
}
