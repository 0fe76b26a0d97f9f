package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного шлюза
//
// Сервис бронирования рассматривает шлюз как внешний оракул:
// единственный интересующий его результат - прошла оплата или нет
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VerifyReceipt проверяет чек оплаты у шлюза
// Возвращает nil при подтвержденной оплате, ErrPaymentDeclined при отказе,
// ErrUnavailable при недоступности шлюза (бронирование остается pending)
func (c *Client) VerifyReceipt(ctx context.Context, receipt Receipt) error {
	url := fmt.Sprintf("%s/internal/payments/verify", c.baseURL)

	body, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal receipt: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки и таймауты считаем недоступностью шлюза
		c.log.Error("Payment gateway unreachable for transaction=%s: %v", receipt.TransactionID, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrReceiptNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var verification verificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&verification); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !verification.Verified {
		c.log.Warn("Payment declined for transaction=%s: %s", receipt.TransactionID, verification.Reason)
		return fmt.Errorf("%w: %s", ErrPaymentDeclined, verification.Reason)
	}

	return nil
}
