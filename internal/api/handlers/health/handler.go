package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StayCalendar/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger зависимость, доступность которой проверяет health-check
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc адаптер функции к Pinger
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Logger interface {
	Error(format string, v ...interface{})
}

// Response статус сервиса и его зависимостей
type Response struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type Handler struct {
	deps   map[string]Pinger
	logger Logger
}

func NewHandler(deps map[string]Pinger, logger Logger) *Handler {
	return &Handler{
		deps:   deps,
		logger: logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := Response{Status: "ok", Dependencies: make(map[string]string, len(h.deps))}
	status := http.StatusOK

	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			h.logger.Error("GET /healthz - %s is unavailable: %v", name, err)
			resp.Dependencies[name] = "unavailable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Dependencies[name] = "ok"
	}

	handlers.RespondJSON(w, status, resp)
}
