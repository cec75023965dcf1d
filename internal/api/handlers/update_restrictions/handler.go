package update_restrictions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/service/restrictions"
)

const (
	msgInvalidID          = "некорректный ID"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные правила"
	msgRoomTypeNotFound   = "тип номера не найден"
	msgRestrictionMissing = "правило не найдено"
	msgClosedDateMissing  = "закрытая дата не найдена"
)

// Handler управление правилами бронирования и закрытыми датами (только персонал)
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

// Create POST /api/v1/restrictions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRestrictionRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /restrictions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /restrictions - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, "POST /restrictions", err)
		return
	}

	h.logger.Info("POST /restrictions - Restriction created: id=%d, type=%s", result.ID, result.RestrictionType)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Delete DELETE /api/v1/restrictions/{restrictionId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "restrictionId")
	if err != nil {
		h.logger.Warn("DELETE /restrictions/{id} - Invalid restriction ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /restrictions/{id}", err)
		return
	}

	h.logger.Info("DELETE /restrictions/{id} - Restriction deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

// CreateClosedDate POST /api/v1/closed-dates
func (h *Handler) CreateClosedDate(w http.ResponseWriter, r *http.Request) {
	var req CreateClosedDateRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /closed-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /closed-dates - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateClosedDate(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, "POST /closed-dates", err)
		return
	}

	h.logger.Info("POST /closed-dates - Date closed: id=%d, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// DeleteClosedDate DELETE /api/v1/closed-dates/{closedDateId}
func (h *Handler) DeleteClosedDate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "closedDateId")
	if err != nil {
		h.logger.Warn("DELETE /closed-dates/{id} - Invalid closed date ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteClosedDate(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /closed-dates/{id}", err)
		return
	}

	h.logger.Info("DELETE /closed-dates/{id} - Date reopened: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, restrictions.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	case errors.Is(err, restrictions.ErrRoomTypeNotFound):
		h.logger.Warn("%s - Room type not found", route)
		handlers.RespondNotFound(w, msgRoomTypeNotFound)

	case errors.Is(err, restrictions.ErrRestrictionNotFound):
		h.logger.Warn("%s - Restriction not found", route)
		handlers.RespondNotFound(w, msgRestrictionMissing)

	case errors.Is(err, restrictions.ErrClosedDateNotFound):
		h.logger.Warn("%s - Closed date not found", route)
		handlers.RespondNotFound(w, msgClosedDateMissing)

	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
