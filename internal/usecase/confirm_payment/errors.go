package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrAccessDenied возвращается при попытке подтвердить чужое бронирование
	ErrAccessDenied = errors.New("confirm_payment: access denied")

	// ErrAlreadyConfirmed возвращается при повторном подтверждении
	ErrAlreadyConfirmed = errors.New("confirm_payment: booking is already confirmed")

	// ErrBookingCancelled возвращается при подтверждении отмененного бронирования
	ErrBookingCancelled = errors.New("confirm_payment: booking is cancelled")

	// ErrBookingExpired возвращается, когда платежное окно pending
	// бронирования истекло
	ErrBookingExpired = errors.New("confirm_payment: booking payment window expired")

	// ErrSlotConflict возвращается, когда слот занят другим активным
	// бронированием: кто-то подтвердил оплату первым
	ErrSlotConflict = errors.New("confirm_payment: slot is already taken")

	// ErrSlotBlocked возвращается, когда слот заблокирован администратором
	// после создания бронирования
	ErrSlotBlocked = errors.New("confirm_payment: slot is blocked")

	// ErrPaymentDeclined возвращается при отказе платежного шлюза
	// Бронирование остается pending до истечения платежного окна
	ErrPaymentDeclined = errors.New("confirm_payment: payment declined")

	// ErrPaymentUnavailable возвращается при недоступности платежного шлюза
	// Бронирование остается pending, клиент может повторить попытку
	ErrPaymentUnavailable = errors.New("confirm_payment: payment gateway unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
