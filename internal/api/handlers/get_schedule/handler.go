package get_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/faceoff2003/hairbnb-backend/internal/api/handlers"
	"github.com/faceoff2003/hairbnb-backend/internal/domain"
	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule"
	"github.com/faceoff2003/hairbnb-backend/internal/service/schedule/models"
)

const (
	msgInvalidStylistID = "некорректный ID стилиста"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/stylists/{stylistId}/schedule
// Query params: from, to (опционально, YYYY-MM-DD) - период для исключений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем stylistId из URL
	vars := mux.Vars(r)
	stylistIDStr := vars["stylistId"]

	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/schedule - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	serviceReq := &models.GetScheduleRequest{StylistID: stylistID}

	// Парсим опциональные границы периода
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /stylists/{id}/schedule - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /stylists/{id}/schedule - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.To = &to
	}

	// Получаем расписание
	result, err := h.service.GetSchedule(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/schedule - Invalid input: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidStylistID)

		default:
			h.logger.Error("GET /stylists/{id}/schedule - Failed to get schedule: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/schedule - Schedule retrieved successfully: stylist_id=%d, windows=%d, exceptions=%d",
		stylistID, len(result.WorkingHours), len(result.Exceptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
