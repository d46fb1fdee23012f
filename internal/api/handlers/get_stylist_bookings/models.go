package get_stylist_bookings

import (
	"strconv"
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	"github.com/faceoff2003/hairbnb-backend/internal/service/bookings/models"
)

// ToServiceRequest создает запрос сервиса из path и query параметров
func ToServiceRequest(stylistID, userID int64, startDateStr, endDateStr, statusStr, includeInactiveStr string) (*models.GetStylistAppointmentsRequest, error) {
	req := &models.GetStylistAppointmentsRequest{
		UserID:    userID,
		StylistID: stylistID,
	}

	// Парсим startDate если указана
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	// Парсим endDate если указана
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
