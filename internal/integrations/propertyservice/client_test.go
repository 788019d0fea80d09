package propertyservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayCalendar/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, time.Second, 2, logger.NewNop())
}

func TestGetProperty_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/properties/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Seaside","timezone":"Europe/Lisbon","manager_ids":[100,101]}`))
	})

	property, err := client.GetProperty(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Seaside", property.Name)
	assert.True(t, property.IsManagedBy(101))
	assert.False(t, property.IsManagedBy(5))
}

func TestGetProperty_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"not found"}`))
	})

	_, err := client.GetProperty(context.Background(), 7)

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestGetProperty_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Seaside","manager_ids":[100]}`))
	})

	property, err := client.GetProperty(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), property.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetProperty_Unavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.GetProperty(context.Background(), 7)

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestGetProperty_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.GetProperty(context.Background(), 7)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
