package get_calendar

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером объекта
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных параметрах окна
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
