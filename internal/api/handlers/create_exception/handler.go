package create_exception

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

// Handle POST /api/v1/stylists/{stylistId}/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем stylistId из URL
	vars := mux.Vars(r)
	stylistIDStr := vars["stylistId"]

	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /stylists/{id}/exceptions - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /stylists/{id}/exceptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stylists/{id}/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем исключение (сервис сам проверит права доступа)
	result, err := h.service.CreateException(r.Context(), req.ToServiceRequest(stylistID, userID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /stylists/{id}/exceptions - Access denied: stylist_id=%d, user_id=%d",
				stylistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrStylistNotFound):
			h.logger.Warn("POST /stylists/{id}/exceptions - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, schedule.ErrStylistInactive):
			h.logger.Warn("POST /stylists/{id}/exceptions - Stylist inactive: stylist_id=%d", stylistID)
			handlers.RespondBadRequest(w, msgStylistInactive)

		case errors.Is(err, schedule.ErrNotAStylist):
			h.logger.Warn("POST /stylists/{id}/exceptions - Not a stylist: stylist_id=%d", stylistID)
			handlers.RespondBadRequest(w, msgNotAStylist)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("POST /stylists/{id}/exceptions - Invalid time range: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /stylists/{id}/exceptions - Invalid input: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /stylists/{id}/exceptions - Failed to create exception: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stylists/{id}/exceptions - Exception created successfully: exception_id=%d, stylist_id=%d",
		result.ID, stylistID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
