package services

import (
	"context"
	"testing"
	"time"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLineUpdatesBalance(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	resSrv := NewReservationService()
	folioSrv := NewFolioService()

	res, err := resSrv.Book(context.Background(), tc, models.Reservation{
		GuestID:    1,
		RatePlanID: 1,
		CheckIn:    time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	folio, err := folioSrv.PostLine(context.Background(), tc, res.ID, models.FolioLine{
		Description: "Room night",
		Amount:      180.00,
		Category:    "room",
	})
	require.NoError(t, err)
	assert.InDelta(t, 180.00, folio.Balance, 0.001)

	// A payment is a negative line.
	folio, err = folioSrv.PostLine(context.Background(), tc, res.ID, models.FolioLine{
		Description: "Card payment",
		Amount:      -100.00,
		Category:    "payment",
	})
	require.NoError(t, err)
	assert.InDelta(t, 80.00, folio.Balance, 0.001)

	got, lines, err := folioSrv.GetWithLines(context.Background(), tc, res.ID)
	require.NoError(t, err)
	assert.InDelta(t, 80.00, got.Balance, 0.001)
	assert.Len(t, lines, 2)
}

func TestPostLineToSettledFolioFails(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	resSrv := NewReservationService()
	folioSrv := NewFolioService()

	res, err := resSrv.Book(context.Background(), tc, models.Reservation{
		GuestID:    1,
		RatePlanID: 1,
		CheckIn:    time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, tc.Models.GuestFolio().Session().
		Where("reservation_id = ?", res.ID).Update("status", "settled").Error)

	_, err = folioSrv.PostLine(context.Background(), tc, res.ID, models.FolioLine{
		Description: "Late charge",
		Amount:      25.00,
		Category:    "misc",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open folio")
}

func TestGetWithLinesUnknownReservation(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	folioSrv := NewFolioService()

	_, _, err := folioSrv.GetWithLines(context.Background(), tc, 9999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
