package get_available_slots

import "errors"

var (
	// ErrStylistNotFound возвращается, когда профиль стилиста не найден
	ErrStylistNotFound = errors.New("get_available_slots: stylist not found")

	// ErrStylistInactive возвращается, когда профиль стилиста деактивирован
	ErrStylistInactive = errors.New("get_available_slots: stylist is inactive")

	// ErrNotAStylist возвращается, когда профиль не является профилем стилиста
	ErrNotAStylist = errors.New("get_available_slots: profile is not a stylist")

	// ErrDateInPast возвращается, когда запрошенная дата строго раньше сегодняшней
	ErrDateInPast = errors.New("get_available_slots: date is in the past")

	// ErrInvalidDuration возвращается, когда длительность вне диапазона [1, 480] минут
	ErrInvalidDuration = errors.New("get_available_slots: duration out of range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
