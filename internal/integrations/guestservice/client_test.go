package guestservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetGuest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/guests/7":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"first_name":"Ann","last_name":"Lee","is_blocked":false}`))
		case "/internal/guests/8":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	guest, err := client.GetGuest(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), guest.ID)
	assert.Equal(t, "Ann", guest.FirstName)

	_, err = client.GetGuest(context.Background(), 8)
	assert.ErrorIs(t, err, ErrGuestNotFound)

	_, err = client.GetGuest(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GracefulDegradation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/internal/guests/8" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetGuestWithGracefulDegradation(context.Background(), 8)
	assert.ErrorIs(t, err, ErrGuestNotFound)

	_, err = client.GetGuestWithGracefulDegradation(context.Background(), 9)
	assert.ErrorIs(t, err, ErrServiceDegraded)

	srv.Close()
	_, err = client.GetGuestWithGracefulDegradation(context.Background(), 9)
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
