package services

import (
	"context"
	"fmt"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/repository"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/tenant"
)

// Property status values.
const (
	PropertyStatusActive    = "active"
	PropertyStatusSuspended = "suspended"
)

// PropertyService provides business logic for the tenant's own property
// record.
type PropertyService interface {
	// Get returns the tenant's property record.
	Get(ctx context.Context, tc *tenant.Context) (*models.Property, error)

	// SetStatus activates or suspends the property.
	SetStatus(ctx context.Context, tc *tenant.Context, status string) (*models.Property, error)

	// SetPreferredDatabase stores or clears the database override hint on
	// the property's metadata. An empty name clears it. Takes effect on the
	// next resolution after the cached binding is invalidated.
	SetPreferredDatabase(ctx context.Context, tc *tenant.Context, databaseName string) (*models.Property, error)
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
}

// NewPropertyService creates a new property service instance.
func NewPropertyService() PropertyService {
	return &propertyService{
		propertyRepo: repository.NewPropertyRepository(),
	}
}

// NewPropertyServiceWithDeps creates a service instance with injected
// dependencies. Used for testing.
func NewPropertyServiceWithDeps(propertyRepo repository.PropertyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo}
}

func (s *propertyService) Get(ctx context.Context, tc *tenant.Context) (*models.Property, error) {
	prop, err := s.propertyRepo.GetByCode(tc.DB.WithContext(ctx), tc.Code)
	if err != nil {
		return nil, fmt.Errorf("property %s not found in its own database: %v", tc.Code, err)
	}
	return prop, nil
}

func (s *propertyService) SetStatus(ctx context.Context, tc *tenant.Context, status string) (*models.Property, error) {
	if status != PropertyStatusActive && status != PropertyStatusSuspended {
		return nil, fmt.Errorf("status must be %q or %q, got %q",
			PropertyStatusActive, PropertyStatusSuspended, status)
	}

	db := tc.DB.WithContext(ctx)
	if err := s.propertyRepo.UpdateStatus(db, tc.Code, status); err != nil {
		return nil, fmt.Errorf("failed to update status for property %s: %w", tc.Code, err)
	}

	logger.Infof("Property %s status set to %s", tc.Code, status)
	return s.propertyRepo.GetByCode(db, tc.Code)
}

func (s *propertyService) SetPreferredDatabase(ctx context.Context, tc *tenant.Context, databaseName string) (*models.Property, error) {
	db := tc.DB.WithContext(ctx)

	prop, err := s.propertyRepo.GetByCode(db, tc.Code)
	if err != nil {
		return nil, fmt.Errorf("property %s not found in its own database: %v", tc.Code, err)
	}

	metadata := prop.Metadata
	if metadata == nil {
		metadata = models.JSONMap{}
	}
	if databaseName == "" {
		delete(metadata, models.MetadataKeyPreferredDatabase)
	} else {
		metadata[models.MetadataKeyPreferredDatabase] = databaseName
	}

	if err := s.propertyRepo.UpdateMetadata(db, tc.Code, metadata); err != nil {
		return nil, fmt.Errorf("failed to update metadata for property %s: %w", tc.Code, err)
	}

	if databaseName == "" {
		logger.Infof("Property %s preferred database cleared", tc.Code)
	} else {
		logger.Infof("Property %s preferred database set to %q", tc.Code, databaseName)
	}
	prop.Metadata = metadata
	return prop, nil
}
