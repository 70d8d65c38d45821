package models

import "time"

// Payment records money received against a folio.
type Payment struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	FolioID    uint      `gorm:"column:folio_id" json:"folio_id" validate:"required"`
	Amount     float64   `gorm:"column:amount" json:"amount" validate:"required"`
	Method     string    `gorm:"column:method" json:"method"` // card/cash/transfer
	ReceivedAt time.Time `gorm:"column:received_at" json:"received_at"`
}

// TableName specifies the static table name for GORM.
func (Payment) TableName() string {
	return "payment"
}
