package create_booking

import (
	"crypto/rand"
	"fmt"

	"github.com/shvic/booking-service/internal/domain"
)

// Алфавит кода бронирования: заглавные буквы и цифры,
// код показывается клиенту и диктуется по телефону
const bookingCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Наибольшее кратное len(bookingCodeAlphabet) в диапазоне байта:
// байты выше отбрасываются, иначе символы с начала алфавита
// выпадали бы чаще остальных
const maxUnbiasedByte = 256 - 256%len(bookingCodeAlphabet)

// generateBookingCode генерирует человекочитаемый код бронирования
func generateBookingCode() (string, error) {
	code := make([]byte, 0, domain.BookingCodeLength)
	buf := make([]byte, domain.BookingCodeLength)

	for len(code) < domain.BookingCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}

		for _, b := range buf {
			if int(b) >= maxUnbiasedByte {
				continue
			}
			code = append(code, bookingCodeAlphabet[int(b)%len(bookingCodeAlphabet)])
			if len(code) == domain.BookingCodeLength {
				break
			}
		}
	}

	return string(code), nil
}
