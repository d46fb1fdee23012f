package schedule

import "errors"

var (
	// ErrStylistNotFound возвращается, когда профиль стилиста не найден
	ErrStylistNotFound = errors.New("schedule: stylist not found")

	// ErrStylistInactive возвращается, когда профиль стилиста деактивирован
	ErrStylistInactive = errors.New("schedule: stylist is inactive")

	// ErrNotAStylist возвращается, когда профиль не является профилем стилиста
	ErrNotAStylist = errors.New("schedule: profile is not a stylist")

	// ErrAccessDenied возвращается, когда пользователь меняет чужое расписание
	ErrAccessDenied = errors.New("schedule: access denied")

	// ErrExceptionNotFound возвращается, когда исключение не найдено
	ErrExceptionNotFound = errors.New("schedule: exception not found")

	// ErrInvalidTimeRange возвращается, когда start_time не раньше end_time
	ErrInvalidTimeRange = errors.New("schedule: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
