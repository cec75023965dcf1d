package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/pkg/dates"
)

func TestParsePeriod(t *testing.T) {
	from, to, err := ParsePeriod(url.Values{"month": {"2024-02"}})
	require.NoError(t, err)
	assert.True(t, from.Equal(dates.Date(2024, 2, 1)))
	assert.True(t, to.Equal(dates.Date(2024, 2, 29)))

	from, to, err = ParsePeriod(url.Values{"from": {"2024-01-10"}, "to": {"2024-01-12"}})
	require.NoError(t, err)
	assert.True(t, from.Equal(dates.Date(2024, 1, 10)))
	assert.True(t, to.Equal(dates.Date(2024, 1, 12)))

	for _, q := range []url.Values{
		{},
		{"from": {"2024-01-10"}},
		{"month": {"2024-13"}},
		{"from": {"2024-01-10"}, "to": {"tomorrow"}},
	} {
		_, _, err := ParsePeriod(q)
		assert.ErrorIs(t, err, ErrInvalidPeriod, "query %v", q)
	}
}

func TestPathID(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"roomId": "12"})
	id, err := PathID(r, "roomId")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	r = mux.SetURLVars(r, map[string]string{"roomId": "0"})
	_, err = PathID(r, "roomId")
	assert.Error(t, err)

	r = mux.SetURLVars(r, map[string]string{"roomId": "x"})
	_, err = PathID(r, "roomId")
	assert.Error(t, err)
}
