package restriction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

func TestParseRestrictionValue(t *testing.T) {
	tests := []struct {
		name    string
		typ     domain.RestrictionType
		payload string
		wantErr bool
	}{
		{name: "min stay", typ: domain.RestrictionMinStay, payload: `{"minNights":3}`},
		{name: "checkin days", typ: domain.RestrictionCheckInDays, payload: `{"allowedDays":[1,2,3,4,5]}`},
		{name: "min stay without nights", typ: domain.RestrictionMinStay, payload: `{"allowedDays":[1]}`, wantErr: true},
		{name: "weekday out of range", typ: domain.RestrictionCheckInDays, payload: `{"allowedDays":[7]}`, wantErr: true},
		{name: "broken json", typ: domain.RestrictionMinStay, payload: `{"minNights":`, wantErr: true},
		{name: "empty payload", typ: domain.RestrictionMinStay, payload: ``, wantErr: true},
		{name: "unknown type", typ: "max_stay", payload: `{"minNights":3}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRestrictionValue(tt.typ, []byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseRestrictionValue_Fields(t *testing.T) {
	value, err := parseRestrictionValue(domain.RestrictionMinStay, []byte(`{"minNights":4}`))
	require.NoError(t, err)
	require.NotNil(t, value.MinNights)
	assert.Equal(t, 4, *value.MinNights)

	value, err = parseRestrictionValue(domain.RestrictionCheckInDays, []byte(`{"allowedDays":[0,6]}`))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 6}, value.AllowedDays)
}
