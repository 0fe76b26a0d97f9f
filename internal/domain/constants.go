package domain

// Default booking policy values
const (
	DefaultOpenHour                = 9
	DefaultCloseHour               = 19
	DefaultMinLeadDays             = 0
	DefaultAdvanceBookingDays      = 60 // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 0
	DefaultPendingTTLMinutes       = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 15
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	BookingCodeLength           = 9
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется для фильтрации при подсчёте доступных слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
