package move_booking

import (
	"context"

	"github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
)

type MoveUseCase interface {
	Move(ctx context.Context, req *update_stay.MoveRequest) (*update_stay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
