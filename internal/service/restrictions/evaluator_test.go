package restrictions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dates"
	"github.com/m04kA/SMC-StayService/pkg/ptr"
)

const roomType1 = int64(1)

func minStay(n int, roomTypeID *int64) *domain.Restriction {
	return &domain.Restriction{
		Type:       domain.RestrictionMinStay,
		RoomTypeID: roomTypeID,
		Value:      domain.RestrictionValue{MinNights: ptr.Ptr(n)},
	}
}

func checkInDays(roomTypeID *int64, days ...int) *domain.Restriction {
	return &domain.Restriction{
		Type:       domain.RestrictionCheckInDays,
		RoomTypeID: roomTypeID,
		Value:      domain.RestrictionValue{AllowedDays: days},
	}
}

func TestEvaluate_MinStay(t *testing.T) {
	e := NewEvaluator(WindowPolicyAlways)
	rules := []*domain.Restriction{minStay(3, ptr.Ptr(roomType1))}

	// 2024-01-08 понедельник
	res := e.Evaluate(dates.Date(2024, 1, 8), dates.Date(2024, 1, 10), roomType1, rules)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Minimum 3 nights required", res.Message)

	res = e.Evaluate(dates.Date(2024, 1, 8), dates.Date(2024, 1, 11), roomType1, rules)
	assert.True(t, res.IsValid)

	// другой тип номера не затронут
	res = e.Evaluate(dates.Date(2024, 1, 8), dates.Date(2024, 1, 9), 2, rules)
	assert.True(t, res.IsValid)
}

func TestEvaluate_CheckInDays(t *testing.T) {
	e := NewEvaluator(WindowPolicyAlways)
	rules := []*domain.Restriction{checkInDays(ptr.Ptr(roomType1), 1, 2, 3, 4, 5)}

	// 2024-01-13 суббота
	res := e.Evaluate(dates.Date(2024, 1, 13), dates.Date(2024, 1, 15), roomType1, rules)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Check-in not allowed on this day", res.Message)

	// 2024-01-15 понедельник
	res = e.Evaluate(dates.Date(2024, 1, 15), dates.Date(2024, 1, 16), roomType1, rules)
	assert.True(t, res.IsValid)
}

func TestEvaluate_FirstMatchingRuleWins(t *testing.T) {
	e := NewEvaluator(WindowPolicyAlways)
	rules := []*domain.Restriction{
		minStay(1, nil),
		minStay(5, ptr.Ptr(roomType1)),
	}

	res := e.Evaluate(dates.Date(2024, 1, 8), dates.Date(2024, 1, 10), roomType1, rules)
	assert.True(t, res.IsValid, "the first global rule shadows the later type-scoped one")
}

func TestEvaluate_DateWindow(t *testing.T) {
	e := NewEvaluator(WindowPolicyAlways)
	rule := minStay(4, nil)
	rule.StartDate = ptr.Ptr(dates.Date(2024, 12, 20))
	rule.EndDate = ptr.Ptr(dates.Date(2025, 1, 5))
	rules := []*domain.Restriction{rule}

	inside := e.Evaluate(dates.Date(2024, 12, 24), dates.Date(2024, 12, 26), roomType1, rules)
	assert.False(t, inside.IsValid)

	// выезд за пределами окна - правило не применяется
	straddling := e.Evaluate(dates.Date(2025, 1, 4), dates.Date(2025, 1, 6), roomType1, rules)
	assert.True(t, straddling.IsValid)

	outside := e.Evaluate(dates.Date(2024, 11, 1), dates.Date(2024, 11, 2), roomType1, rules)
	assert.True(t, outside.IsValid)
}

func TestEvaluate_PartialWindowPolicies(t *testing.T) {
	rule := minStay(3, nil)
	rule.StartDate = ptr.Ptr(dates.Date(2024, 6, 1))
	rules := []*domain.Restriction{rule}

	before := func(e *Evaluator) Result {
		return e.Evaluate(dates.Date(2024, 5, 1), dates.Date(2024, 5, 2), roomType1, rules)
	}
	after := func(e *Evaluator) Result {
		return e.Evaluate(dates.Date(2024, 7, 1), dates.Date(2024, 7, 2), roomType1, rules)
	}

	always := NewEvaluator(WindowPolicyAlways)
	assert.False(t, before(always).IsValid)
	assert.False(t, after(always).IsValid)

	openEnded := NewEvaluator(WindowPolicyOpenEnded)
	assert.True(t, before(openEnded).IsValid)
	assert.False(t, after(openEnded).IsValid)

	ignore := NewEvaluator(WindowPolicyIgnore)
	assert.True(t, before(ignore).IsValid)
	assert.True(t, after(ignore).IsValid)
}

func TestEvaluate_NoRules(t *testing.T) {
	res := NewEvaluator("").Evaluate(dates.Date(2024, 1, 13), dates.Date(2024, 1, 14), roomType1, nil)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Message)
}

func TestParseWindowPolicy(t *testing.T) {
	p, err := ParseWindowPolicy("")
	require.NoError(t, err)
	assert.Equal(t, WindowPolicyAlways, p)

	p, err = ParseWindowPolicy("open_ended")
	require.NoError(t, err)
	assert.Equal(t, WindowPolicyOpenEnded, p)

	_, err = ParseWindowPolicy("sometimes")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
