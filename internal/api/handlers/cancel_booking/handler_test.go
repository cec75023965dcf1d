package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayService/internal/service/reservations"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got uuid.UUID
	err error
}

func (f *fakeService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.BookingResponse, error) {
	f.got = bookingID
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{BookingID: bookingID.String()}, nil
}

func patch(h *Handler, bookingID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/cancel", h.Handle).Methods(http.MethodPatch)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID+"/cancel", nil))
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	bookingID := uuid.New()

	w := patch(NewHandler(svc, nopLogger{}), bookingID.String())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, bookingID, svc.got)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name       string
		bookingID  string
		err        error
		wantStatus int
	}{
		{name: "bad id", bookingID: "not-a-uuid", wantStatus: http.StatusBadRequest},
		{name: "not found", bookingID: id, err: reservations.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "already checked in", bookingID: id, err: reservations.ErrCannotCancel, wantStatus: http.StatusConflict},
		{name: "internal", bookingID: id, err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := patch(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.bookingID)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
