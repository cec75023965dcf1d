package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-StayService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные даты или распределение гостей"
	msgAllocationMismatch = "гости не распределены по выбранным номерам один к одному"
	msgRoomNotFound       = "номер не найден"
	msgOccupancyExceeded  = "группа гостей не помещается в номер"
	msgGuestNotFound      = "гость не найден"
	msgGuestBlocked       = "гостю запрещено бронирование"
)

// RejectionResponse отказ проверки номера
type RejectionResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	RoomID  int64  `json:"roomId"`
}

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *createBooking.RejectionError
		switch {
		case errors.As(err, &rejection):
			// Отказ проверки номера: 409 для занятого номера, 422 для нарушения правил
			status := http.StatusUnprocessableEntity
			if errors.Is(err, createBooking.ErrRoomNotAvailable) {
				status = http.StatusConflict
			}
			h.logger.Warn("POST /bookings - Rejected: guest_id=%d, room_id=%d, %s", req.GuestID, rejection.RoomID, rejection.Message)
			handlers.RespondJSON(w, status, RejectionResponse{Code: status, Message: rejection.Message, RoomID: rejection.RoomID})

		case errors.Is(err, createBooking.ErrAllocationMismatch):
			h.logger.Warn("POST /bookings - Allocation mismatch: %v", err)
			handlers.RespondBadRequest(w, msgAllocationMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrOccupancyExceeded):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOccupancyExceeded)

		case errors.Is(err, createBooking.ErrGuestNotFound):
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createBooking.ErrGuestBlocked):
			handlers.RespondForbidden(w, msgGuestBlocked)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: guest_id=%d, error=%v", req.GuestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, guest_id=%d, rooms=%d",
		result.BookingID, req.GuestID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
