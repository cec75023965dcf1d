package list_reservations

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Период задается как в календаре: from&to, month или одна дата date
func ToServiceRequest(q url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{
		IncludeCancelled: false, // По умолчанию только действующие
	}

	if roomIDStr := q.Get("roomId"); roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}

	if guestIDStr := q.Get("guestId"); guestIDStr != "" {
		guestID, err := strconv.ParseInt(guestIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.GuestID = &guestID
	}

	if statusStr := q.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	switch {
	case q.Get("date") != "":
		date, err := dates.Parse(q.Get("date"))
		if err != nil {
			return nil, err
		}
		req.From = &date
		req.To = &date

	case q.Get("month") != "" || q.Get("from") != "" || q.Get("to") != "":
		from, to, err := handlers.ParsePeriod(q)
		if err != nil {
			return nil, err
		}
		req.From = &from
		req.To = &to
	}

	if includeStr := q.Get("includeCancelled"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
