package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса email-уведомлений
//
// Все вызовы fire-and-forget с точки зрения бизнес-логики: ошибка
// отправки логируется вызывающей стороной и не влияет на результат
// перехода бронирования
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyConfirmed отправляет уведомление о подтвержденном бронировании
func (c *Client) NotifyConfirmed(ctx context.Context, notification BookingNotification) error {
	return c.dispatch(ctx, "/internal/notifications/booking-confirmed", notification)
}

// NotifyCancelled отправляет уведомление об отмене бронирования
func (c *Client) NotifyCancelled(ctx context.Context, notification BookingNotification) error {
	return c.dispatch(ctx, "/internal/notifications/booking-cancelled", notification)
}

func (c *Client) dispatch(ctx context.Context, path string, notification BookingNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("%w: unexpected status code %d", ErrDispatchFailed, resp.StatusCode)
	}

	return nil
}
