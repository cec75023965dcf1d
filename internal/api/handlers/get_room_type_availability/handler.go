package get_room_type_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	availabilityGrid "github.com/m04kA/SMC-StayService/internal/usecase/availability_grid"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgInvalidPeriod     = "укажите from и to (YYYY-MM-DD) или month (YYYY-MM)"
	msgInvalidRange      = "некорректный период календаря"
	msgRoomTypeNotFound  = "тип номера не найден"
)

type Handler struct {
	useCase AvailabilityGridUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeId}/availability
// Query params: from, to или month
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomTypeID, err := handlers.PathID(r, "roomTypeId")
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/availability - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	from, to, err := handlers.ParsePeriod(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/availability - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.RoomTypeGrid(r.Context(), &availabilityGrid.Request{
		RoomTypeID: roomTypeID,
		From:       from,
		To:         to,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityGrid.ErrRoomTypeNotFound):
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, availabilityGrid.ErrInvalidInput):
			h.logger.Warn("GET /room-types/{id}/availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /room-types/{id}/availability - Failed to build grid: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
