package block_slot

import (
	"time"

	"github.com/shvic/booking-service/internal/domain"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date string `json:"date"` // "2026-09-15"
	Time string `json:"time"` // "10:00"
}

// BlockedSlotResponse HTTP модель заблокированного слота
type BlockedSlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
}

// FromDomain конвертирует заблокированный слот в HTTP модель
func FromDomain(slot *domain.BlockedSlot) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:        slot.ID,
		Date:      slot.Date.Format(domain.DateFormat),
		Time:      slot.Time.String(),
		CreatedAt: slot.CreatedAt.Format(time.RFC3339),
	}
}
