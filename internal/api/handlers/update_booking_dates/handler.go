package update_booking_dates

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	createBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/create_booking"
	createBooking "github.com/m04kA/SMC-StayService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректные даты проживания"
	msgNotFound           = "бронирование не найдено"
	msgLocked             = "даты бронирования уже нельзя изменить"
	msgRoomNotFound       = "номер не найден"
)

// UpdateDatesRequest HTTP request model
type UpdateDatesRequest struct {
	CheckIn  string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
}

type Handler struct {
	useCase UpdateDatesUseCase
	logger  Logger
}

func NewHandler(useCase UpdateDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/dates - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateDatesRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	checkIn, errIn := dates.Parse(req.CheckIn)
	checkOut, errOut := dates.Parse(req.CheckOut)
	if errIn != nil || errOut != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.UpdateDates(r.Context(), &createBooking.UpdateDatesRequest{
		BookingID: bookingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		var rejection *createBooking.RejectionError
		switch {
		case errors.As(err, &rejection):
			status := http.StatusUnprocessableEntity
			if errors.Is(err, createBooking.ErrRoomNotAvailable) {
				status = http.StatusConflict
			}
			h.logger.Warn("PUT /bookings/{id}/dates - Rejected: booking_id=%s, room_id=%d, %s", bookingID, rejection.RoomID, rejection.Message)
			handlers.RespondJSON(w, status, createBookingHandler.RejectionResponse{Code: status, Message: rejection.Message, RoomID: rejection.RoomID})

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrBookingLocked):
			handlers.RespondConflict(w, msgLocked)

		default:
			h.logger.Error("PUT /bookings/{id}/dates - Failed to update dates: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/dates - Dates updated: booking_id=%s, %s..%s",
		bookingID, req.CheckIn, req.CheckOut)
	handlers.RespondJSON(w, http.StatusOK, createBookingHandler.FromUseCaseResponse(result))
}
