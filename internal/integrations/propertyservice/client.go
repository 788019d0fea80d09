package propertyservice

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client клиент для работы с PropertyService
type Client struct {
	httpClient *resty.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PropertyService.
// Повторяются только сетевые ошибки и ответы 5xx.
func NewClient(baseURL string, timeout time.Duration, retryCount int, log Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(100*time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		log:        log,
	}
}

// GetProperty получает объект размещения вместе со списком менеджеров
func (c *Client) GetProperty(ctx context.Context, propertyID int64) (*Property, error) {
	var property Property
	var errResp ErrorResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("propertyId", fmt.Sprintf("%d", propertyID)).
		SetResult(&property).
		SetError(&errResp).
		Get("/internal/properties/{propertyId}")

	if err != nil {
		c.log.Error("PropertyService request failed for property_id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: property_id=%d: %w", ErrServiceUnavailable, propertyID, err)
	}

	// Обработка статус-кодов
	switch resp.StatusCode() {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrPropertyNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid property ID format", ErrInvalidResponse)
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			c.log.Error("PropertyService returned %d for property_id=%d: %s", resp.StatusCode(), propertyID, errResp.Message)
			return nil, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode())
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), resp.String())
	}

	if property.ID == 0 {
		return nil, fmt.Errorf("%w: empty property in response", ErrInvalidResponse)
	}

	return &property, nil
}
