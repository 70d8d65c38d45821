package repository

import (
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	"gorm.io/gorm"
)

// ReservationRepository provides data access operations for reservations
// within one tenant's database.
type ReservationRepository interface {
	GetByID(db *gorm.DB, id uint) (*models.Reservation, error)
	GetByReference(db *gorm.DB, reference string) (*models.Reservation, error)
	ListByStatus(db *gorm.DB, status string) ([]models.Reservation, error)
	Create(db *gorm.DB, data *models.Reservation) error
	UpdateStatus(db *gorm.DB, id uint, status string) error
}

type reservationRepository struct{}

// NewReservationRepository creates a new reservation repository instance.
func NewReservationRepository() ReservationRepository {
	return &reservationRepository{}
}

func (r *reservationRepository) GetByID(db *gorm.DB, id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := db.Where("id = ?", id).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) GetByReference(db *gorm.DB, reference string) (*models.Reservation, error) {
	var res models.Reservation
	if err := db.Where("reference = ?", reference).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) ListByStatus(db *gorm.DB, status string) ([]models.Reservation, error) {
	var list []models.Reservation
	q := db.Table(models.Reservation{}.TableName())
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *reservationRepository) Create(db *gorm.DB, data *models.Reservation) error {
	return db.Create(data).Error
}

func (r *reservationRepository) UpdateStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&models.Reservation{}).Where("id = ?", id).
		Update("status", status).Error
}
