package delete_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/faceoff2003/hairbnb-backend/internal/api/handlers"
	"github.com/faceoff2003/hairbnb-backend/internal/api/middleware"
	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule"
	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule/models"
)

const (
	msgInvalidStylistID   = "некорректный ID стилиста"
	msgInvalidExceptionID = "некорректный ID исключения"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgStylistNotFound    = "стилист не найден"
	msgExceptionNotFound  = "исключение не найдено"
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

// Handle DELETE /api/v1/stylists/{stylistId}/exceptions/{exceptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем stylistId из URL
	stylistIDStr := vars["stylistId"]
	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /stylists/{id}/exceptions/{id} - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	// Извлекаем exceptionId из URL
	exceptionIDStr := vars["exceptionId"]
	exceptionID, err := strconv.ParseInt(exceptionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /stylists/{id}/exceptions/{id} - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /stylists/{id}/exceptions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq := &models.DeleteExceptionRequest{
		UserID:      userID,
		StylistID:   stylistID,
		ExceptionID: exceptionID,
	}

	// Удаляем исключение (сервис сам проверит права доступа)
	err = h.service.DeleteException(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /stylists/{id}/exceptions/{id} - Access denied: stylist_id=%d, user_id=%d",
				stylistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrStylistNotFound):
			h.logger.Warn("DELETE /stylists/{id}/exceptions/{id} - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, schedule.ErrExceptionNotFound):
			h.logger.Warn("DELETE /stylists/{id}/exceptions/{id} - Exception not found: exception_id=%d", exceptionID)
			handlers.RespondNotFound(w, msgExceptionNotFound)

		default:
			h.logger.Error("DELETE /stylists/{id}/exceptions/{id} - Failed to delete exception: exception_id=%d, error=%v",
				exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /stylists/{id}/exceptions/{id} - Exception deleted successfully: exception_id=%d, stylist_id=%d",
		exceptionID, stylistID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
