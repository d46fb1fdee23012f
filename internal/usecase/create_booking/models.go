package create_booking

import (
	"time"

	"github.com/faceoff2003/hairbnb-backend/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID        int64            // ID клиента (из заголовка аутентификации)
	StylistID       int64            // ID стилиста
	ServiceID       int64            // ID услуги в основном бэкенде
	ServiceName     string           // Название услуги (денормализация от гейтвея)
	ServicePrice    float64          // Цена услуги на момент записи
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность в минутах (0 = дефолтная)
	Notes           *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientID        int64            // ID клиента
	StylistID       int64            // ID стилиста
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
