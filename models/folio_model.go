package models

// GuestFolio is the running bill for one reservation.
type GuestFolio struct {
	ID            uint    `gorm:"primaryKey;column:id" json:"id"`
	ReservationID uint    `gorm:"column:reservation_id" json:"reservation_id" validate:"required"`
	Balance       float64 `gorm:"column:balance" json:"balance"`
	Status        string  `gorm:"column:status" json:"status"` // open/settled
}

// TableName specifies the static table name for GORM.
func (GuestFolio) TableName() string {
	return "guest_folio"
}

// FolioLine is one charge or credit posted to a folio.
type FolioLine struct {
	ID          uint    `gorm:"primaryKey;column:id" json:"id"`
	FolioID     uint    `gorm:"column:folio_id" json:"folio_id" validate:"required"`
	Description string  `gorm:"column:description" json:"description" validate:"required"`
	Amount      float64 `gorm:"column:amount" json:"amount" validate:"required"` // Negative for credits
	Category    string  `gorm:"column:category" json:"category"`                 // room/food/misc/payment
}

// TableName specifies the static table name for GORM.
func (FolioLine) TableName() string {
	return "folio_line"
}
