package create_booking

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером объекта
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrRoomNotFound возвращается, когда номер не найден в объекте
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomInactive возвращается, когда номер выключен
	ErrRoomInactive = errors.New("create_booking: room is inactive")

	// ErrConflict возвращается, когда даты пересекаются с другим бронированием номера
	ErrConflict = errors.New("create_booking: booking conflicts with existing booking")

	// ErrStayRuleViolation возвращается при нарушении правил длительности без override
	ErrStayRuleViolation = errors.New("create_booking: stay rule violation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
