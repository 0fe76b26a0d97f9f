package paymentservice

// Receipt чек платежного шлюза, предъявленный клиентом при подтверждении
type Receipt struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
}

// verificationResponse ответ шлюза на проверку чека
type verificationResponse struct {
	TransactionID string  `json:"transactionId"`
	Verified      bool    `json:"verified"`
	Amount        float64 `json:"amount"`
	Reason        string  `json:"reason,omitempty"`
}

// ErrorResponse модель ошибки от платежного шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
