package models

import "time"

// Reservation represents one booking for a guest and room over a date range.
// Status transitions: booked -> checked_in -> checked_out, or booked -> cancelled.
type Reservation struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	GuestID    uint      `gorm:"column:guest_id" json:"guest_id" validate:"required"`
	RoomID     uint      `gorm:"column:room_id" json:"room_id"`
	RatePlanID uint      `gorm:"column:rate_plan_id" json:"rate_plan_id" validate:"required"`
	CheckIn    time.Time `gorm:"column:check_in" json:"check_in" validate:"required"`
	CheckOut   time.Time `gorm:"column:check_out" json:"check_out" validate:"required"`
	Status     string    `gorm:"column:status" json:"status"`
	Reference  string    `gorm:"column:reference;unique" json:"reference"` // Booking reference shown to the guest
}

// TableName specifies the static table name for GORM.
func (Reservation) TableName() string {
	return "reservation"
}
