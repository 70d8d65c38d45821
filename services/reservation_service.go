package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/repository"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/tenant"

	"github.com/google/uuid"
)

// Reservation status values.
const (
	ReservationStatusBooked     = "booked"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

// ReservationService provides business logic for reservations. Every method
// operates within the tenant context resolved for the request.
type ReservationService interface {
	// Book creates a reservation and opens its folio in one transaction.
	Book(ctx context.Context, tc *tenant.Context, data models.Reservation) (*models.Reservation, error)

	// Get returns one reservation by id.
	Get(ctx context.Context, tc *tenant.Context, id uint) (*models.Reservation, error)

	// List returns reservations, optionally filtered by status.
	List(ctx context.Context, tc *tenant.Context, status string) ([]models.Reservation, error)

	// Cancel marks a reservation cancelled. Checked-out reservations cannot
	// be cancelled.
	Cancel(ctx context.Context, tc *tenant.Context, id uint) error
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	folioRepo       repository.FolioRepository
}

// NewReservationService creates a new reservation service instance.
func NewReservationService() ReservationService {
	return &reservationService{
		reservationRepo: repository.NewReservationRepository(),
		folioRepo:       repository.NewFolioRepository(),
	}
}

// NewReservationServiceWithDeps creates a service instance with injected
// dependencies. Used for testing.
func NewReservationServiceWithDeps(
	reservationRepo repository.ReservationRepository,
	folioRepo repository.FolioRepository,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		folioRepo:       folioRepo,
	}
}

func (s *reservationService) Book(ctx context.Context, tc *tenant.Context, data models.Reservation) (*models.Reservation, error) {
	if !data.CheckOut.After(data.CheckIn) {
		return nil, fmt.Errorf("check-out %s must be after check-in %s",
			data.CheckOut.Format("2006-01-02"), data.CheckIn.Format("2006-01-02"))
	}

	data.Status = ReservationStatusBooked
	if data.Reference == "" {
		data.Reference = newReference()
	}

	tx := tc.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}

	if err := s.reservationRepo.Create(tx, &data); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	folio := models.GuestFolio{
		ReservationID: data.ID,
		Balance:       0,
		Status:        "open",
	}
	if err := s.folioRepo.Create(tx, &folio); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to open folio for reservation %s: %w", data.Reference, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	logger.Infof("Booked reservation %s (id=%d) for tenant %s", data.Reference, data.ID, tc.Code)
	return &data, nil
}

func (s *reservationService) Get(ctx context.Context, tc *tenant.Context, id uint) (*models.Reservation, error) {
	res, err := s.reservationRepo.GetByID(tc.DB.WithContext(ctx), id)
	if err != nil {
		return nil, fmt.Errorf("reservation id=%d not found: %v", id, err)
	}
	return res, nil
}

func (s *reservationService) List(ctx context.Context, tc *tenant.Context, status string) ([]models.Reservation, error) {
	return s.reservationRepo.ListByStatus(tc.DB.WithContext(ctx), status)
}

func (s *reservationService) Cancel(ctx context.Context, tc *tenant.Context, id uint) error {
	db := tc.DB.WithContext(ctx)

	existing, err := s.reservationRepo.GetByID(db, id)
	if err != nil {
		return fmt.Errorf("reservation id=%d not found: %v", id, err)
	}
	if existing.Status == ReservationStatusCheckedOut {
		return fmt.Errorf("reservation %s is already checked out and cannot be cancelled", existing.Reference)
	}

	if err := s.reservationRepo.UpdateStatus(db, id, ReservationStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel reservation id=%d: %w", id, err)
	}

	logger.Infof("Cancelled reservation %s (id=%d) for tenant %s", existing.Reference, id, tc.Code)
	return nil
}

// newReference mints a short booking reference shown to the guest.
func newReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "RSV-" + id[:10]
}
