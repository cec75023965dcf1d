package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.IncAvailabilitySearch("found")
	m.IncAvailabilitySearch("found")
	m.IncBookingValidation("rejected")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/rooms", http.StatusOK, 10*time.Millisecond)
	m.ObserveDBQuery("query", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.availabilitySearches.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingValidations.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/rooms", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("query")))
}
