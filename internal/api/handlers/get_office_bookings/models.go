package get_office_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/bookings/models"
)

// ParseQuery собирает фильтр бронирований офиса из query параметров.
// Поддерживаются startDate, endDate (YYYY-MM-DD), slot и includeInactive.
func ParseQuery(officeID int64, query url.Values) (*models.GetOfficeBookingsRequest, error) {
	req := &models.GetOfficeBookingsRequest{OfficeID: officeID}

	if v := query.Get("startDate"); v != "" {
		date, err := domain.ParseDate(v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}

	if v := query.Get("endDate"); v != "" {
		date, err := domain.ParseDate(v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &date
	}

	if v := query.Get("slot"); v != "" {
		req.Slot = &v
	}

	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	return req, nil
}
