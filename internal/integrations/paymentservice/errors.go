package paymentservice

import "errors"

var (
	// ErrPaymentDeclined возвращается, когда платежный шлюз отклонил чек
	ErrPaymentDeclined = errors.New("paymentservice client: payment declined")

	// ErrReceiptNotFound возвращается, когда чек не найден на стороне шлюза
	ErrReceiptNotFound = errors.New("paymentservice client: receipt not found")

	// ErrUnavailable возвращается, когда платежный шлюз недоступен
	// Подтверждение оплаты при этом не выполняется, бронирование остается pending
	ErrUnavailable = errors.New("paymentservice client: gateway unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
