package services

import (
	"context"
	"fmt"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/repository"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/tenant"
)

// FolioService provides business logic for guest folios.
type FolioService interface {
	// GetWithLines returns a reservation's folio and its posted lines.
	GetWithLines(ctx context.Context, tc *tenant.Context, reservationID uint) (*models.GuestFolio, []models.FolioLine, error)

	// PostLine posts a charge or credit to a reservation's folio and updates
	// the running balance in one transaction.
	PostLine(ctx context.Context, tc *tenant.Context, reservationID uint, line models.FolioLine) (*models.GuestFolio, error)
}

type folioService struct {
	folioRepo repository.FolioRepository
}

// NewFolioService creates a new folio service instance.
func NewFolioService() FolioService {
	return &folioService{
		folioRepo: repository.NewFolioRepository(),
	}
}

// NewFolioServiceWithDeps creates a service instance with injected
// dependencies. Used for testing.
func NewFolioServiceWithDeps(folioRepo repository.FolioRepository) FolioService {
	return &folioService{folioRepo: folioRepo}
}

func (s *folioService) GetWithLines(ctx context.Context, tc *tenant.Context, reservationID uint) (*models.GuestFolio, []models.FolioLine, error) {
	db := tc.DB.WithContext(ctx)

	folio, err := s.folioRepo.GetByReservationID(db, reservationID)
	if err != nil {
		return nil, nil, fmt.Errorf("folio for reservation id=%d not found: %v", reservationID, err)
	}

	lines, err := s.folioRepo.GetLines(db, folio.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load lines for folio id=%d: %w", folio.ID, err)
	}
	return folio, lines, nil
}

func (s *folioService) PostLine(ctx context.Context, tc *tenant.Context, reservationID uint, line models.FolioLine) (*models.GuestFolio, error) {
	tx := tc.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}

	folio, err := s.folioRepo.GetByReservationID(tx, reservationID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("folio for reservation id=%d not found: %v", reservationID, err)
	}
	if folio.Status != "open" {
		tx.Rollback()
		return nil, fmt.Errorf("folio id=%d is %s, lines can only be posted to an open folio", folio.ID, folio.Status)
	}

	line.FolioID = folio.ID
	if err := s.folioRepo.AddLine(tx, &line); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to post line to folio id=%d: %w", folio.ID, err)
	}

	folio.Balance += line.Amount
	if err := s.folioRepo.UpdateBalance(tx, folio.ID, folio.Balance); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update balance for folio id=%d: %w", folio.ID, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit folio posting transaction: %w", err)
	}

	logger.Infof("Posted %s %.2f to folio id=%d for tenant %s, balance now %.2f",
		line.Category, line.Amount, folio.ID, tc.Code, folio.Balance)
	return folio, nil
}
