package get_room_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
	availabilityGrid "github.com/m04kA/SMC-StayService/internal/usecase/availability_grid"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound  = "номер не найден"
	msgDataIntegrity = "на номер приходится несколько бронирований в один день"
)

// RoomReservationResponse бронирование, занимающее номер в дату. Reservation = null - номер свободен
type RoomReservationResponse struct {
	RoomID      int64                       `json:"roomId"`
	Date        string                      `json:"date"`
	Reservation *models.ReservationResponse `json:"reservation"`
}

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

// Handle GET /api/v1/rooms/{roomId}/reservation?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/reservation - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	date, err := dates.Parse(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/reservation - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	res, err := h.useCase.RoomDay(r.Context(), roomID, date)
	if err != nil {
		switch {
		case errors.Is(err, availabilityGrid.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, availabilityGrid.ErrDataIntegrity):
			h.logger.Error("GET /rooms/{id}/reservation - Data integrity: %v", err)
			handlers.RespondConflict(w, msgDataIntegrity)

		default:
			h.logger.Error("GET /rooms/{id}/reservation - Failed to get reservation: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := RoomReservationResponse{RoomID: roomID, Date: dates.Format(date)}
	if res != nil {
		dto := models.FromDomainReservation(res)
		resp.Reservation = &dto
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
