package models

// RatePlan defines a nightly price for a room type.
type RatePlan struct {
	ID          uint    `gorm:"primaryKey;column:id" json:"id"`
	RoomTypeID  uint    `gorm:"column:room_type_id" json:"room_type_id" validate:"required"`
	Code        string  `gorm:"column:code;unique" json:"code" validate:"required"` // Rate plan code (BAR, CORP)
	Name        string  `gorm:"column:name" json:"name"`
	NightlyRate float64 `gorm:"column:nightly_rate" json:"nightly_rate" validate:"required"`
	Currency    string  `gorm:"column:currency" json:"currency"`
}

// TableName specifies the static table name for GORM.
func (RatePlan) TableName() string {
	return "rate_plan"
}
