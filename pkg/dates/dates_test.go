package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_ContainsExcludesCheckout(t *testing.T) {
	r := NewRange(Date(2024, 1, 10), Date(2024, 1, 13))

	assert.True(t, r.Contains(Date(2024, 1, 10)))
	assert.True(t, r.Contains(Date(2024, 1, 12)))
	assert.False(t, r.Contains(Date(2024, 1, 13)))
	assert.False(t, r.Contains(Date(2024, 1, 9)))
}

func TestRange_Overlaps(t *testing.T) {
	stay := NewRange(Date(2024, 1, 10), Date(2024, 1, 13))

	tests := []struct {
		name  string
		other Range
		want  bool
	}{
		{"back-to-back after", NewRange(Date(2024, 1, 13), Date(2024, 1, 15)), false},
		{"back-to-back before", NewRange(Date(2024, 1, 8), Date(2024, 1, 10)), false},
		{"last night", NewRange(Date(2024, 1, 12), Date(2024, 1, 14)), true},
		{"inside", NewRange(Date(2024, 1, 11), Date(2024, 1, 12)), true},
		{"covering", NewRange(Date(2024, 1, 1), Date(2024, 2, 1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stay.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(stay))
		})
	}
}

func TestRange_DaysAndNights(t *testing.T) {
	r := NewRange(Date(2024, 2, 27), Date(2024, 3, 2))

	days := r.Days()
	require.Len(t, days, 4)
	assert.Equal(t, Date(2024, 2, 29), days[2])
	assert.Equal(t, 4, r.Nights())

	assert.Empty(t, NewRange(Date(2024, 3, 2), Date(2024, 3, 2)).Days())
	assert.False(t, NewRange(Date(2024, 3, 2), Date(2024, 3, 2)).IsValid())
}

func TestNights_RoundsUp(t *testing.T) {
	in := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, Nights(in, out))
}

func TestGrids(t *testing.T) {
	assert.Len(t, MonthGrid(2024, time.February), 29)
	assert.Len(t, Grid(Date(2024, 1, 30), Date(2024, 2, 2)), 4)

	y, m, err := ParseMonth("2024-07")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.July, m)

	_, err = Parse("10/01/2024")
	assert.Error(t, err)
}
