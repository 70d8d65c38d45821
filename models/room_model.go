package models

// Room is one physical sellable unit within the property.
type Room struct {
	ID         uint   `gorm:"primaryKey;column:id" json:"id"`
	RoomTypeID uint   `gorm:"column:room_type_id" json:"room_type_id" validate:"required"` // Foreign key to RoomType
	Number     string `gorm:"column:number;unique" json:"number" validate:"required"`      // Room number, unique per property
	Floor      int    `gorm:"column:floor" json:"floor"`
	Status     string `gorm:"column:status" json:"status"` // available/occupied/out_of_order
}

// TableName specifies the static table name for GORM.
func (Room) TableName() string {
	return "room"
}
