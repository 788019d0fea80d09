package get_availability

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером объекта
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidRange возвращается, если конец периода раньше начала или период слишком длинный
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
