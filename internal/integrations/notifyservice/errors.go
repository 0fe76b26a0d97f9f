package notifyservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrDispatchFailed возвращается, когда сервис уведомлений не принял запрос
	// Ошибка информационная: отправка уведомлений никогда не откатывает
	// переходы бронирования
	ErrDispatchFailed = errors.New("notifyservice client: dispatch failed")
)
