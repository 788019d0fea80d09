package resize_booking

import (
	"context"

	"github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
)

type ResizeUseCase interface {
	Resize(ctx context.Context, req *update_stay.ResizeRequest) (*update_stay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
