package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// ErrInvalidPeriod некорректный период в query параметрах
var ErrInvalidPeriod = errors.New("expected either from&to (YYYY-MM-DD) or month (YYYY-MM)")

// PathID извлекает положительный ID из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return id, nil
}

// ParsePeriod разбирает период календаря: ?from=&to= (включительно) или ?month=YYYY-MM
func ParsePeriod(q url.Values) (time.Time, time.Time, error) {
	if month := q.Get("month"); month != "" {
		year, m, err := dates.ParseMonth(month)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidPeriod
		}
		grid := dates.MonthGrid(year, m)
		return grid[0], grid[len(grid)-1], nil
	}

	fromStr, toStr := q.Get("from"), q.Get("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	from, err := dates.Parse(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	to, err := dates.Parse(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	return from, to, nil
}
