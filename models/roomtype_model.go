package models

// RoomType groups rooms sharing a rate and capacity profile.
type RoomType struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	Code        string `gorm:"column:code;unique" json:"code" validate:"required"` // Short code (STD, DLX, STE)
	Name        string `gorm:"column:name" json:"name" validate:"required"`
	Description string `gorm:"column:description" json:"description"`
	MaxGuests   int    `gorm:"column:max_guests" json:"max_guests"`
}

// TableName specifies the static table name for GORM.
func (RoomType) TableName() string {
	return "room_type"
}
