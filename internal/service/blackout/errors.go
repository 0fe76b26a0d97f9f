package blackout

import "errors"

var (
	// ErrAlreadyBlocked возвращается при повторной блокировке пары (date, time)
	ErrAlreadyBlocked = errors.New("blackout: slot is already blocked")

	// ErrNotBlocked возвращается при снятии блокировки с незаблокированной пары
	ErrNotBlocked = errors.New("blackout: slot is not blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("blackout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blackout: internal error")
)
