package domain

import "time"

// BlockedDate заблокированный календарный день (выходной, праздник)
// В заблокированный день слоты не предлагаются независимо от записей
type BlockedDate struct {
	ID     int64
	Date   time.Time // только дата, время обнулено
	Reason *string   // опционально, пояснение для админа
}

// Covers проверяет, что блокировка относится к указанному дню
func (b *BlockedDate) Covers(day time.Time) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
