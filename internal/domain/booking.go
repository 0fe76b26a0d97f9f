package domain

import (
	"time"

	"github.com/shvic/booking-service/pkg/types"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// CancelledByAdmin записывается в cancelled_by при отмене администратором
const CancelledByAdmin = "admin"

// CancelledBySystem записывается в cancelled_by при отмене по истечении
// платежного окна
const CancelledBySystem = "system"

// Booking represents a consultation appointment in the system
//
// StartTime is never mutated after creation: rescheduling is modelled
// as cancel + create. Cancelled bookings are retained for history and
// excluded from overlap checks.
type Booking struct {
	ID              string
	BookingCode     string // human-readable code shown to the client
	UserID          string
	ServiceID       string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus
	PaymentStatus   PaymentStatus

	// Denormalized service data for history
	ServiceName  string
	ServicePrice float64
	Amount       float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time
	CancelledBy        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsExpired returns true for a pending booking whose payment window has
// elapsed. Confirmed and cancelled bookings never expire.
func (b *Booking) IsExpired(now time.Time, pendingTTL time.Duration) bool {
	if b.Status != StatusPending {
		return false
	}
	return now.After(b.CreatedAt.Add(pendingTTL))
}

// IsActiveAt returns true if the booking occupies its slot at the given
// moment: confirmed, or pending within the payment window. Only active
// bookings participate in overlap checks and availability filtering.
func (b *Booking) IsActiveAt(now time.Time, pendingTTL time.Duration) bool {
	switch b.Status {
	case StatusConfirmed:
		return true
	case StatusPending:
		return !b.IsExpired(now, pendingTTL)
	default:
		return false
	}
}

// End returns the end time of the booking interval [StartTime, End)
func (b *Booking) End() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// Overlaps reports whether the interval [start, start+duration) overlaps
// this booking's interval. Strict inequalities: intervals that merely
// touch at a boundary do not overlap.
func (b *Booking) Overlaps(start types.TimeString, durationMinutes int) (bool, error) {
	slotEnd, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}
	bookingEnd, err := b.End()
	if err != nil {
		return false, err
	}
	return b.StartTime.IsBefore(slotEnd) && bookingEnd.IsAfter(start), nil
}

// BookingsDateFilter фильтр для выборки бронирований на дату
type BookingsDateFilter struct {
	Date            time.Time
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
