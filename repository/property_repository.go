package repository

import (
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	"gorm.io/gorm"
)

// PropertyRepository provides data access for the tenant's own property
// record. Every method takes the tenant's resolved database handle; there is
// no process-wide default because each tenant owns an isolated database.
type PropertyRepository interface {
	GetByCode(db *gorm.DB, code string) (*models.Property, error)
	UpdateStatus(db *gorm.DB, code, status string) error
	UpdateMetadata(db *gorm.DB, code string, metadata models.JSONMap) error
}

type propertyRepository struct{}

// NewPropertyRepository creates a new property repository instance.
func NewPropertyRepository() PropertyRepository {
	return &propertyRepository{}
}

func (r *propertyRepository) GetByCode(db *gorm.DB, code string) (*models.Property, error) {
	var prop models.Property
	if err := db.Where("code = ?", code).First(&prop).Error; err != nil {
		return nil, err
	}
	return &prop, nil
}

func (r *propertyRepository) UpdateStatus(db *gorm.DB, code, status string) error {
	return db.Model(&models.Property{}).Where("code = ?", code).
		Update("status", status).Error
}

func (r *propertyRepository) UpdateMetadata(db *gorm.DB, code string, metadata models.JSONMap) error {
	return db.Model(&models.Property{}).Where("code = ?", code).
		Update("metadata", metadata).Error
}
