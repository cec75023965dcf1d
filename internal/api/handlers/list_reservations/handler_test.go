package list_reservations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/service/reservations"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.ListReservationsRequest
	err error
}

func (f *fakeService) ListReservations(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return []models.ReservationResponse{{ID: 1}}, nil
}

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(url.Values{
		"roomId":           {"101"},
		"status":           {"confirmed"},
		"month":            {"2024-02"},
		"includeCancelled": {"true"},
	})
	require.NoError(t, err)
	require.NotNil(t, req.RoomID)
	assert.Equal(t, int64(101), *req.RoomID)
	assert.Equal(t, "confirmed", *req.Status)
	assert.True(t, req.From.Equal(dates.Date(2024, 2, 1)))
	assert.True(t, req.To.Equal(dates.Date(2024, 2, 29)))
	assert.True(t, req.IncludeCancelled)
	assert.Nil(t, req.GuestID)

	req, err = ToServiceRequest(url.Values{"date": {"2024-03-05"}})
	require.NoError(t, err)
	assert.True(t, req.From.Equal(*req.To))

	req, err = ToServiceRequest(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, req.From)
	assert.False(t, req.IncludeCancelled)
}

func TestToServiceRequest_Invalid(t *testing.T) {
	for _, q := range []url.Values{
		{"roomId": {"abc"}},
		{"guestId": {"1.5"}},
		{"date": {"05.03.2024"}},
		{"from": {"2024-03-01"}},
		{"includeCancelled": {"maybe"}},
	} {
		_, err := ToServiceRequest(q)
		assert.Error(t, err, q.Encode())
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
	}{
		{name: "ok", query: "?guestId=7", wantStatus: http.StatusOK},
		{name: "bad query", query: "?roomId=x", wantStatus: http.StatusBadRequest},
		{name: "bad status", query: "?status=lost", err: reservations.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, nopLogger{})
			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodGet, "/reservations"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
