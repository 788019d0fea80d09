package update_stay

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_stay: booking not found")

	// ErrBookingNotMovable возвращается, когда статус бронирования не позволяет менять даты
	ErrBookingNotMovable = errors.New("update_stay: booking cannot be moved in its current status")

	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("update_stay: property not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером объекта
	ErrAccessDenied = errors.New("update_stay: access denied")

	// ErrRoomNotFound возвращается, когда целевой номер не найден в объекте
	ErrRoomNotFound = errors.New("update_stay: room not found")

	// ErrRoomInactive возвращается при переносе в выключенный номер
	ErrRoomInactive = errors.New("update_stay: target room is inactive")

	// ErrStayRuleViolation возвращается при нарушении правил длительности без override
	ErrStayRuleViolation = errors.New("update_stay: stay rule violation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_stay: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_stay: internal error")
)
