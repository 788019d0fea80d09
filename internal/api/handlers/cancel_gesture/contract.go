package cancel_gesture

import "context"

type GestureUseCase interface {
	Cancel(ctx context.Context, userID int64, gestureID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
