package update_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/faceoff2003/hairbnb-backend/internal/api/handlers"
	"github.com/faceoff2003/hairbnb-backend/internal/api/middleware"
	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule"
)

const (
	msgInvalidStylistID   = "некорректный ID стилиста"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgStylistNotFound    = "стилист не найден"
	msgStylistInactive    = "профиль стилиста деактивирован"
	msgNotAStylist        = "профиль не является профилем стилиста"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/stylists/{stylistId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем stylistId из URL
	vars := mux.Vars(r)
	stylistIDStr := vars["stylistId"]

	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stylists/{id}/working-hours - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /stylists/{id}/working-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stylists/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем рабочие часы (сервис сам проверит права доступа)
	result, err := h.service.UpdateWorkingHours(r.Context(), req.ToServiceRequest(stylistID, userID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /stylists/{id}/working-hours - Access denied: stylist_id=%d, user_id=%d",
				stylistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrStylistNotFound):
			h.logger.Warn("PUT /stylists/{id}/working-hours - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, schedule.ErrStylistInactive):
			h.logger.Warn("PUT /stylists/{id}/working-hours - Stylist inactive: stylist_id=%d", stylistID)
			handlers.RespondBadRequest(w, msgStylistInactive)

		case errors.Is(err, schedule.ErrNotAStylist):
			h.logger.Warn("PUT /stylists/{id}/working-hours - Not a stylist: stylist_id=%d", stylistID)
			handlers.RespondBadRequest(w, msgNotAStylist)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /stylists/{id}/working-hours - Invalid time range: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /stylists/{id}/working-hours - Invalid input: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /stylists/{id}/working-hours - Failed to update working hours: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stylists/{id}/working-hours - Working hours updated successfully: stylist_id=%d, days=%d",
		stylistID, len(req.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
