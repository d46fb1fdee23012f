package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/faceoff2003/hairbnb-backend/internal/api/handlers"
	getAvailableSlots "github.com/faceoff2003/hairbnb-backend/internal/usecase/get_available_slots"
)

const (
	msgInvalidStylistID  = "некорректный ID стилиста"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration   = "некорректная длительность услуги"
	msgStylistNotFound   = "стилист не найден"
	msgStylistInactive   = "профиль стилиста деактивирован"
	msgNotAStylist       = "профиль не является профилем стилиста"
	msgDateInPast        = "дата не может быть в прошлом"
	msgDurationOutOfSpan = "длительность должна быть от 1 до 480 минут"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/available-slots
// Query params: date (required, YYYY-MM-DD), durationMinutes (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем stylistId из URL
	stylistIDStr := vars["stylistId"]
	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stylists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем durationMinutes из query параметров (опционально)
	durationMinutes := 0
	if durationStr := r.URL.Query().Get("durationMinutes"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /stylists/{id}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(stylistID, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/{id}/available-slots - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getAvailableSlots.ErrStylistInactive):
			h.logger.Warn("GET /stylists/{id}/available-slots - Stylist inactive: stylist_id=%d", stylistID)
			handlers.RespondBadRequest(w, msgStylistInactive)

		case errors.Is(err, getAvailableSlots.ErrNotAStylist):
			h.logger.Warn("GET /stylists/{id}/available-slots - Not a stylist: stylist_id=%d", stylistID)
			handlers.RespondBadRequest(w, msgNotAStylist)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /stylists/{id}/available-slots - Date in past: stylist_id=%d, date=%s", stylistID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /stylists/{id}/available-slots - Invalid duration: stylist_id=%d, duration=%d",
				stylistID, useCaseReq.DurationMinutes)
			handlers.RespondBadRequest(w, msgDurationOutOfSpan)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/available-slots - Invalid input: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidStylistID)

		default:
			h.logger.Error("GET /stylists/{id}/available-slots - Failed to get slots: stylist_id=%d, date=%s, error=%v",
				stylistID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /stylists/{id}/available-slots - Slots retrieved successfully: stylist_id=%d, date=%s, slots_count=%d",
		stylistID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
