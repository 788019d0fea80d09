package gesture

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии жеста нет или истёк её TTL
	ErrSessionNotFound = errors.New("gesture.store: session not found")

	// ErrEncode возвращается при ошибке сериализации сессии
	ErrEncode = errors.New("gesture.store: failed to encode session")

	// ErrDecode возвращается при ошибке десериализации сессии
	ErrDecode = errors.New("gesture.store: failed to decode session")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("gesture.store: redis error")
)
