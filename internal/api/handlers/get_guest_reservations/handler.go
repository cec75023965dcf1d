package get_guest_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/service/reservations"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

const (
	msgInvalidGuestID = "некорректный ID гостя"
	msgInvalidStatus  = "некорректный статус"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guests/{guestId}/reservations
// Query params: status (опционально). Отмененные возвращаются только при status=cancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID, err := handlers.PathID(r, "guestId")
	if err != nil {
		h.logger.Warn("GET /guests/{guestId}/reservations - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	serviceReq := &models.ListReservationsRequest{
		GuestID: &guestID,
		Status:  statusPtr,
	}

	result, err := h.service.ListReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /guests/{guestId}/reservations - Invalid status: guest_id=%d, status=%q", guestID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /guests/{guestId}/reservations - Failed to get reservations: guest_id=%d, error=%v",
				guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guests/{guestId}/reservations - Reservations retrieved successfully: guest_id=%d, count=%d",
		guestID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
