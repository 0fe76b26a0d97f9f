package domain

import (
	"time"

	"github.com/shvic/booking-service/pkg/types"
)

// BlockedSlot represents an administrator-blocked (date, time) pair
//
// Purely subtractive over generated slots: a blocked pair is never
// offered regardless of booking state. The (date, time) pair is unique
// in the registry.
type BlockedSlot struct {
	ID        int64
	Date      time.Time
	Time      types.TimeString
	CreatedAt time.Time
}

// Matches returns true if the blocked slot covers the given pair
func (s *BlockedSlot) Matches(date time.Time, t types.TimeString) bool {
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2 && s.Time == t
}
