package validate_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validateBooking "github.com/m04kA/SMC-StayService/internal/usecase/validate_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got    *validateBooking.Request
	result *validateBooking.Result
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *validateBooking.Request) (*validateBooking.Result, error) {
	f.got = req
	return f.result, f.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/validate", strings.NewReader(body)))
	return w
}

func TestHandle_Rejected(t *testing.T) {
	uc := &fakeUseCase{result: &validateBooking.Result{IsValid: false, Message: "Minimum 3 nights required", Reason: validateBooking.ReasonRestriction}}
	bookingID := uuid.New()

	w := post(NewHandler(uc, nopLogger{}),
		`{"checkIn":"2024-01-10","checkOut":"2024-01-12","roomId":4,"adults":2,"bookingId":"`+bookingID.String()+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, uc.got.ExcludeBookingID)
	assert.Equal(t, bookingID, *uc.got.ExcludeBookingID)
	assert.Equal(t, int64(4), uc.got.RoomID)

	var resp ValidateBookingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.IsValid)
	assert.Equal(t, "Minimum 3 nights required", resp.Message)
}

func TestHandle_Valid(t *testing.T) {
	uc := &fakeUseCase{result: &validateBooking.Result{IsValid: true}}

	w := post(NewHandler(uc, nopLogger{}), `{"checkIn":"2024-01-10","checkOut":"2024-01-12","roomId":4,"adults":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, uc.got.ExcludeBookingID)
	assert.JSONEq(t, `{"isValid":true}`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"checkIn":"2024-01-10","checkOut":"2024-01-12","roomId":4,"adults":1}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "missing room", body: `{"checkIn":"2024-01-10","checkOut":"2024-01-12","adults":1}`, wantStatus: http.StatusBadRequest},
		{name: "bad booking id", body: `{"checkIn":"2024-01-10","checkOut":"2024-01-12","roomId":4,"bookingId":"nope"}`, wantStatus: http.StatusBadRequest},
		{name: "room not found", body: valid, err: validateBooking.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", body: valid, err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
