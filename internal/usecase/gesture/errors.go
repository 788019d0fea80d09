package gesture

import "errors"

var (
	// ErrGestureNotFound возвращается, когда жест не найден, истёк или начат другим пользователем
	ErrGestureNotFound = errors.New("gesture: gesture not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("gesture: booking not found")

	// ErrBookingNotMovable возвращается, когда статус бронирования не позволяет менять даты
	ErrBookingNotMovable = errors.New("gesture: booking cannot be moved in its current status")

	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("gesture: property not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером объекта
	ErrAccessDenied = errors.New("gesture: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("gesture: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("gesture: internal error")
)
