package models

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// BlockRangeRequest запрос на блокировку диапазона дат (включительно)
type BlockRangeRequest struct {
	DateFrom time.Time
	DateTo   time.Time
	Reason   string // опционально
}

// BlockedDateResponse модель блокировки для выдачи наружу
type BlockedDateResponse struct {
	ID     int64
	Date   time.Time
	Reason *string
}

// FromDomainBlockedDate конвертирует доменную блокировку в response
func FromDomainBlockedDate(bd *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:     bd.ID,
		Date:   bd.Date,
		Reason: bd.Reason,
	}
}

// FromDomainBlockedDateList конвертирует список доменных блокировок
func FromDomainBlockedDateList(blocked []*domain.BlockedDate) []*BlockedDateResponse {
	result := make([]*BlockedDateResponse, len(blocked))
	for i, bd := range blocked {
		result[i] = FromDomainBlockedDate(bd)
	}
	return result
}
