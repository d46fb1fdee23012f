package create_exception

import (
	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule/models"
)

// CreateExceptionRequest HTTP request model
type CreateExceptionRequest struct {
	Date      string  `json:"date"`      // "2026-09-15"
	StartTime string  `json:"startTime"` // "13:00"
	EndTime   string  `json:"endTime"`   // "14:00"
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateExceptionRequest) ToServiceRequest(stylistID, userID int64) *models.CreateExceptionRequest {
	return &models.CreateExceptionRequest{
		UserID:    userID,
		StylistID: stylistID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Reason:    r.Reason,
	}
}
