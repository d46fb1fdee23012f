package update_working_hours

import (
	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule/models"
)

// UpdateWorkingHoursRequest HTTP request model
type UpdateWorkingHoursRequest struct {
	Days []DayWindow `json:"days"`
}

// DayWindow рабочее окно на один день недели
type DayWindow struct {
	Weekday   int    `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Closed    bool   `json:"closed,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateWorkingHoursRequest) ToServiceRequest(stylistID, userID int64) *models.UpdateWorkingHoursRequest {
	days := make([]models.DayWindow, len(r.Days))
	for i, d := range r.Days {
		days[i] = models.DayWindow{
			Weekday:   d.Weekday,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Closed:    d.Closed,
		}
	}

	return &models.UpdateWorkingHoursRequest{
		UserID:    userID,
		StylistID: stylistID,
		Days:      days,
	}
}
