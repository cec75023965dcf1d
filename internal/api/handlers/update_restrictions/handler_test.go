package update_restrictions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/service/restrictions"
	"github.com/m04kA/SMC-StayService/internal/service/restrictions/models"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	gotRestriction *models.CreateRestrictionRequest
	gotClosedDate  *models.CreateClosedDateRequest
	deleted        int64
	err            error
}

func (f *fakeService) Create(ctx context.Context, req *models.CreateRestrictionRequest) (*models.RestrictionResponse, error) {
	f.gotRestriction = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.RestrictionResponse{ID: 1, RestrictionType: req.Type}, nil
}

func (f *fakeService) Delete(ctx context.Context, id int64) error {
	f.deleted = id
	return f.err
}

func (f *fakeService) CreateClosedDate(ctx context.Context, req *models.CreateClosedDateRequest) (*models.ClosedDateResponse, error) {
	f.gotClosedDate = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ClosedDateResponse{ID: 2, Date: dates.Format(req.Date)}, nil
}

func (f *fakeService) DeleteClosedDate(ctx context.Context, id int64) error {
	f.deleted = id
	return f.err
}

func router(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/restrictions", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/restrictions/{restrictionId}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/closed-dates", h.CreateClosedDate).Methods(http.MethodPost)
	r.HandleFunc("/closed-dates/{closedDateId}", h.DeleteClosedDate).Methods(http.MethodDelete)
	return r
}

func do(h *Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router(h).ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestCreate(t *testing.T) {
	svc := &fakeService{}

	w := do(NewHandler(svc, nopLogger{}), http.MethodPost, "/restrictions",
		`{"restrictionType":"min_stay","roomTypeId":2,"startDate":"2024-12-20","endDate":"2025-01-05","minNights":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.gotRestriction.StartDate)
	assert.True(t, svc.gotRestriction.StartDate.Equal(dates.Date(2024, 12, 20)))
	assert.Equal(t, 3, *svc.gotRestriction.MinNights)

	w = do(NewHandler(svc, nopLogger{}), http.MethodPost, "/restrictions",
		`{"restrictionType":"checkin_days","allowedDays":[5,6]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, svc.gotRestriction.StartDate)
	assert.Equal(t, []int{5, 6}, svc.gotRestriction.AllowedDays)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "unknown type", body: `{"restrictionType":"max_stay"}`, wantStatus: http.StatusBadRequest},
		{name: "bad weekday", body: `{"restrictionType":"checkin_days","allowedDays":[7]}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"restrictionType":"min_stay","minNights":2,"startDate":"20.12.2024"}`, wantStatus: http.StatusBadRequest},
		{name: "service validation", body: `{"restrictionType":"min_stay"}`, err: restrictions.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "room type", body: `{"restrictionType":"min_stay","minNights":2,"roomTypeId":9}`, err: restrictions.ErrRoomTypeNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", body: `{"restrictionType":"min_stay","minNights":2}`, err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(NewHandler(&fakeService{err: tt.err}, nopLogger{}), http.MethodPost, "/restrictions", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDelete(t *testing.T) {
	svc := &fakeService{}
	w := do(NewHandler(svc, nopLogger{}), http.MethodDelete, "/restrictions/4", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(4), svc.deleted)

	w = do(NewHandler(&fakeService{err: restrictions.ErrRestrictionNotFound}, nopLogger{}), http.MethodDelete, "/restrictions/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(NewHandler(svc, nopLogger{}), http.MethodDelete, "/restrictions/-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClosedDates(t *testing.T) {
	svc := &fakeService{}

	w := do(NewHandler(svc, nopLogger{}), http.MethodPost, "/closed-dates", `{"date":"2024-12-31","reason":"ретрит"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.gotClosedDate.Date.Equal(dates.Date(2024, 12, 31)))
	assert.Nil(t, svc.gotClosedDate.RoomTypeID)

	w = do(NewHandler(svc, nopLogger{}), http.MethodPost, "/closed-dates", `{"reason":"no date"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(NewHandler(svc, nopLogger{}), http.MethodDelete, "/closed-dates/2", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(NewHandler(&fakeService{err: restrictions.ErrClosedDateNotFound}, nopLogger{}), http.MethodDelete, "/closed-dates/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
