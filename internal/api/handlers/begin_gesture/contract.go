package begin_gesture

import (
	"context"

	"github.com/m04kA/SMC-StayCalendar/internal/usecase/gesture"
)

type GestureUseCase interface {
	Begin(ctx context.Context, req *gesture.BeginRequest) (*gesture.BeginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
