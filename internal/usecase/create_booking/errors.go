package create_booking

import "errors"

var (
	// ErrClientNotFound возвращается, когда профиль клиента не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrClientInactive возвращается, когда профиль клиента деактивирован
	ErrClientInactive = errors.New("create_booking: client is inactive")

	// ErrStylistNotFound возвращается, когда профиль стилиста не найден
	ErrStylistNotFound = errors.New("create_booking: stylist not found")

	// ErrStylistInactive возвращается, когда профиль стилиста деактивирован
	ErrStylistInactive = errors.New("create_booking: stylist is inactive")

	// ErrNotAStylist возвращается, когда профиль не является профилем стилиста
	ErrNotAStylist = errors.New("create_booking: profile is not a stylist")

	// ErrStylistClosed возвращается, когда у стилиста нет рабочего окна на этот день
	ErrStylistClosed = errors.New("create_booking: stylist is closed on this date")

	// ErrDateInPast возвращается, когда дата записи строго раньше сегодняшней
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrInvalidDuration возвращается, когда длительность вне диапазона [1, 480] минут
	ErrInvalidDuration = errors.New("create_booking: duration out of range")

	// ErrInvalidTimeSlot возвращается, когда время начала не лежит на границе шага
	// или слот выходит за пределы рабочего окна
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается при попытке записаться на уже прошедшее время
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с исключением
	// недоступности или другой активной записью
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
