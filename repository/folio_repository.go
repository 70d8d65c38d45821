package repository

import (
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	"gorm.io/gorm"
)

// FolioRepository provides data access operations for guest folios and their
// lines within one tenant's database.
type FolioRepository interface {
	GetByID(db *gorm.DB, id uint) (*models.GuestFolio, error)
	GetByReservationID(db *gorm.DB, reservationID uint) (*models.GuestFolio, error)
	Create(db *gorm.DB, data *models.GuestFolio) error
	AddLine(db *gorm.DB, line *models.FolioLine) error
	GetLines(db *gorm.DB, folioID uint) ([]models.FolioLine, error)
	UpdateBalance(db *gorm.DB, id uint, balance float64) error
}

type folioRepository struct{}

// NewFolioRepository creates a new folio repository instance.
func NewFolioRepository() FolioRepository {
	return &folioRepository{}
}

func (r *folioRepository) GetByID(db *gorm.DB, id uint) (*models.GuestFolio, error) {
	var folio models.GuestFolio
	if err := db.Where("id = ?", id).First(&folio).Error; err != nil {
		return nil, err
	}
	return &folio, nil
}

func (r *folioRepository) GetByReservationID(db *gorm.DB, reservationID uint) (*models.GuestFolio, error) {
	var folio models.GuestFolio
	if err := db.Where("reservation_id = ?", reservationID).First(&folio).Error; err != nil {
		return nil, err
	}
	return &folio, nil
}

func (r *folioRepository) Create(db *gorm.DB, data *models.GuestFolio) error {
	return db.Create(data).Error
}

func (r *folioRepository) AddLine(db *gorm.DB, line *models.FolioLine) error {
	return db.Create(line).Error
}

func (r *folioRepository) GetLines(db *gorm.DB, folioID uint) ([]models.FolioLine, error) {
	var lines []models.FolioLine
	if err := db.Where("folio_id = ?", folioID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *folioRepository) UpdateBalance(db *gorm.DB, id uint, balance float64) error {
	return db.Model(&models.GuestFolio{}).Where("id = ?", id).
		Update("balance", balance).Error
}
