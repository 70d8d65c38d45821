package models

// Guest is a person with at least one stay at the property.
type Guest struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"id"`
	FirstName string `gorm:"column:first_name" json:"first_name" validate:"required"`
	LastName  string `gorm:"column:last_name" json:"last_name" validate:"required"`
	Email     string `gorm:"column:email" json:"email" validate:"omitempty,email"`
	Phone     string `gorm:"column:phone" json:"phone"`
}

// TableName specifies the static table name for GORM.
func (Guest) TableName() string {
	return "guest"
}
