// Package dates содержит операции над календарными датами с точностью до дня.
// Все даты нормализуются к полуночи UTC, интервалы полуоткрытые: [From, To).
package dates

import (
	"fmt"
	"math"
	"time"
)

// Layout формат даты ISO (YYYY-MM-DD)
const Layout = "2006-01-02"

// Day длительность суток
const Day = 24 * time.Hour

// Normalize возвращает календарную дату t в полночь UTC
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date конструктор даты в UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Parse разбирает дату в формате YYYY-MM-DD
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Format форматирует дату в YYYY-MM-DD
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Range полуоткрытый интервал дат [From, To)
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange создает интервал из двух дат, нормализуя их
func NewRange(from, to time.Time) Range {
	return Range{From: Normalize(from), To: Normalize(to)}
}

// IsValid интервал содержит хотя бы одну ночь
func (r Range) IsValid() bool {
	return !r.From.IsZero() && !r.To.IsZero() && Normalize(r.To).After(Normalize(r.From))
}

// Nights количество ночей: ceil((To - From) / 1 день)
func (r Range) Nights() int {
	return Nights(r.From, r.To)
}

// Contains дата d попадает в [From, To). День выезда не входит
func (r Range) Contains(d time.Time) bool {
	d = Normalize(d)
	return !d.Before(Normalize(r.From)) && d.Before(Normalize(r.To))
}

// Overlaps интервалы пересекаются хотя бы одним днем.
// Смежные интервалы (выезд в день заезда другого) не пересекаются
func (r Range) Overlaps(other Range) bool {
	return Normalize(r.From).Before(Normalize(other.To)) && Normalize(other.From).Before(Normalize(r.To))
}

// Days перечисляет даты интервала [From, To)
func (r Range) Days() []time.Time {
	from, to := Normalize(r.From), Normalize(r.To)
	if !to.After(from) {
		return []time.Time{}
	}

	days := make([]time.Time, 0, int(to.Sub(from)/Day))
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// String формат "2024-01-10..2024-01-13"
func (r Range) String() string {
	return Format(r.From) + ".." + Format(r.To)
}

// Nights количество ночей между датами заезда и выезда с округлением вверх
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	return int(math.Ceil(diff.Hours() / 24))
}

// Grid список дат [from, to] включительно (сетка календаря)
func Grid(from, to time.Time) []time.Time {
	return Range{From: from, To: Normalize(to).AddDate(0, 0, 1)}.Days()
}

// MonthGrid список всех дат месяца
func MonthGrid(year int, month time.Month) []time.Time {
	first := Date(year, month, 1)
	return Range{From: first, To: first.AddDate(0, 1, 0)}.Days()
}

// ParseMonth разбирает месяц в формате YYYY-MM
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}
