package search_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	searchAvailability "github.com/m04kA/SMC-StayService/internal/usecase/search_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSearch      = "некорректные параметры поиска"
)

type Handler struct {
	useCase SearchAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SearchAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /availability/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/search - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/search - Invalid search: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSearch)

		default:
			h.logger.Error("POST /availability/search - Failed to search: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/search - %s, rooms=%d, found=%d",
		useCaseReq.DateRange, len(useCaseReq.RoomOccupancies), len(result.RoomTypes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
