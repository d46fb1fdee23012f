package get_available_slots

import (
	"time"

	"github.com/faceoff2003/hairbnb-backend/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StylistID       int64     // ID стилиста
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Длительность запрашиваемой услуги в минутах
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	StylistID       int64     // ID стилиста
	DurationMinutes int       // Длительность слота в минутах
	Slots           []Slot    // Список доступных слотов, по возрастанию времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время конца слота (StartTime + DurationMinutes)
}
