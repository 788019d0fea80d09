package propertyservice

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("propertyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("propertyservice client: invalid response")

	// ErrServiceUnavailable возвращается, когда PropertyService недоступен после всех повторов
	ErrServiceUnavailable = errors.New("propertyservice unavailable")
)
