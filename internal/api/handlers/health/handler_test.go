package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayCalendar/pkg/logger"
)

func TestHandle(t *testing.T) {
	ok := PingerFunc(func(ctx context.Context) error { return nil })
	down := PingerFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		deps       map[string]Pinger
		wantStatus int
		wantBody   Response
	}{
		{
			name:       "all dependencies up",
			deps:       map[string]Pinger{"postgres": ok, "redis": ok},
			wantStatus: http.StatusOK,
			wantBody:   Response{Status: "ok", Dependencies: map[string]string{"postgres": "ok", "redis": "ok"}},
		},
		{
			name:       "redis down",
			deps:       map[string]Pinger{"postgres": ok, "redis": down},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   Response{Status: "degraded", Dependencies: map[string]string{"postgres": "ok", "redis": "unavailable"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.deps, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
