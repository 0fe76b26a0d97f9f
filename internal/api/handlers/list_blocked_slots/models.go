package list_blocked_slots

import (
	"time"

	"github.com/shvic/booking-service/internal/domain"
)

// BlockedSlotResponse HTTP модель заблокированного слота
type BlockedSlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
}

// BlockedSlotsResponse HTTP модель ответа со списком блокировок
type BlockedSlotsResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// FromDomain конвертирует заблокированные слоты в HTTP модель
func FromDomain(slots []*domain.BlockedSlot) *BlockedSlotsResponse {
	result := make([]BlockedSlotResponse, len(slots))
	for i, s := range slots {
		result[i] = BlockedSlotResponse{
			ID:        s.ID,
			Date:      s.Date.Format(domain.DateFormat),
			Time:      s.Time.String(),
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BlockedSlotsResponse{BlockedSlots: result}
}
