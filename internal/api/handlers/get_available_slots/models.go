package get_available_slots

import (
	"time"

	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	getAvailableSlots "github.com/faceoff2003/hairbnb-backend/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	StylistID       int64           `json:"stylistId"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StylistID:       resp.StylistID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// При отсутствии durationMinutes используется длительность по умолчанию.
func ToUseCaseRequest(stylistID int64, dateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	if durationMinutes == 0 {
		durationMinutes = domain.DefaultAppointmentDurationMinutes
	}

	return &getAvailableSlots.Request{
		StylistID:       stylistID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}
