package commit_gesture

import (
	"context"

	"github.com/m04kA/SMC-StayCalendar/internal/usecase/gesture"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
)

type GestureUseCase interface {
	Commit(ctx context.Context, req *gesture.CommitRequest) (*update_stay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
