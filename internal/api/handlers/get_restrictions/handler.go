package get_restrictions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/service/restrictions"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service RestrictionService
	logger  Logger
}

func NewHandler(service RestrictionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restrictions
// Правила в порядке применения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /restrictions - Failed to get restrictions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /restrictions - Restrictions retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleClosedDates GET /api/v1/closed-dates
// Query params: from&to или month
func (h *Handler) HandleClosedDates(w http.ResponseWriter, r *http.Request) {
	from, to, err := handlers.ParsePeriod(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /closed-dates - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListClosedDates(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, restrictions.ErrInvalidInput):
			h.logger.Warn("GET /closed-dates - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /closed-dates - Failed to get closed dates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /closed-dates - Closed dates retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
