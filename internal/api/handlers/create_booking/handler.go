package create_booking

import (
	"errors"
	"net/http"

	"github.com/faceoff2003/hairbnb-backend/internal/api/handlers"
	"github.com/faceoff2003/hairbnb-backend/internal/api/middleware"
	createBooking "github.com/faceoff2003/hairbnb-backend/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgClientNotFound     = "профиль клиента не найден"
	msgClientInactive     = "профиль клиента деактивирован"
	msgStylistNotFound    = "стилист не найден"
	msgStylistInactive    = "профиль стилиста деактивирован"
	msgNotAStylist        = "профиль не является профилем стилиста"
	msgStylistClosed      = "стилист не работает в выбранную дату"
	msgDateInPast         = "дата записи не может быть в прошлом"
	msgInvalidDuration    = "длительность должна быть от 1 до 480 минут"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgTooLateToBook      = "слишком поздно для записи на это время"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем clientID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: client_id=%d, stylist_id=%d", clientID, req.StylistID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrClientInactive):
			h.logger.Warn("POST /bookings - Client inactive: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgClientInactive)

		case errors.Is(err, createBooking.ErrStylistNotFound):
			h.logger.Warn("POST /bookings - Stylist not found: stylist_id=%d", req.StylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, createBooking.ErrStylistInactive):
			h.logger.Warn("POST /bookings - Stylist inactive: stylist_id=%d", req.StylistID)
			handlers.RespondBadRequest(w, msgStylistInactive)

		case errors.Is(err, createBooking.ErrNotAStylist):
			h.logger.Warn("POST /bookings - Not a stylist: stylist_id=%d", req.StylistID)
			handlers.RespondBadRequest(w, msgNotAStylist)

		case errors.Is(err, createBooking.ErrStylistClosed):
			h.logger.Warn("POST /bookings - Stylist closed: client_id=%d, stylist_id=%d", clientID, req.StylistID)
			handlers.RespondBadRequest(w, msgStylistClosed)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: client_id=%d, stylist_id=%d", clientID, req.StylistID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: client_id=%d, duration=%d", clientID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: client_id=%d, stylist_id=%d", clientID, req.StylistID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: client_id=%d, stylist_id=%d", clientID, req.StylistID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, stylist_id=%d, error=%v",
				clientID, req.StylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, stylist_id=%d",
		result.ID, clientID, req.StylistID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
