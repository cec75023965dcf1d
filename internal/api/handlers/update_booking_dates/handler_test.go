package update_booking_dates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-StayService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *createBooking.UpdateDatesRequest
	err error
}

func (f *fakeUseCase) UpdateDates(ctx context.Context, req *createBooking.UpdateDatesRequest) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{BookingID: req.BookingID, CheckIn: req.CheckIn, CheckOut: req.CheckOut}, nil
}

func put(h *Handler, bookingID, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/dates", h.Handle).Methods(http.MethodPut)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/bookings/"+bookingID+"/dates", strings.NewReader(body)))
	return w
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	bookingID := uuid.New()

	w := put(NewHandler(uc, nopLogger{}), bookingID.String(), `{"checkIn":"2024-03-02","checkOut":"2024-03-06"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, bookingID, uc.got.BookingID)
	assert.True(t, uc.got.CheckOut.Equal(dates.Date(2024, 3, 6)))
}

func TestHandle_Errors(t *testing.T) {
	body := `{"checkIn":"2024-03-02","checkOut":"2024-03-06"}`
	id := uuid.New().String()

	tests := []struct {
		name       string
		bookingID  string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad id", bookingID: "42", body: body, wantStatus: http.StatusBadRequest},
		{name: "bad body", bookingID: id, body: `{"checkIn":"03/02/2024"}`, wantStatus: http.StatusBadRequest},
		{name: "not found", bookingID: id, body: body, err: createBooking.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "locked", bookingID: id, body: body, err: createBooking.ErrBookingLocked, wantStatus: http.StatusConflict},
		{
			name: "overlap", bookingID: id, body: body,
			err:        &createBooking.RejectionError{RoomID: 1, Message: "taken", Err: createBooking.ErrRoomNotAvailable},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := put(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.bookingID, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
