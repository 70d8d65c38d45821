package services

import (
	"context"
	"testing"
	"time"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookCreatesReservationAndFolio(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	srv := NewReservationService()

	res, err := srv.Book(context.Background(), tc, models.Reservation{
		GuestID:    1,
		RatePlanID: 1,
		CheckIn:    time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 4, 11, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, ReservationStatusBooked, res.Status)
	assert.NotEmpty(t, res.Reference)

	// The folio opens with the booking, in the same transaction.
	var folio models.GuestFolio
	require.NoError(t, tc.Models.GuestFolio().Session().
		Where("reservation_id = ?", res.ID).First(&folio).Error)
	assert.Equal(t, "open", folio.Status)
	assert.Zero(t, folio.Balance)
}

func TestBookRejectsInvertedDates(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	srv := NewReservationService()

	_, err := srv.Book(context.Background(), tc, models.Reservation{
		GuestID:    1,
		RatePlanID: 1,
		CheckIn:    time.Date(2026, 9, 4, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be after")
}

func TestCancelReservation(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	srv := NewReservationService()

	res, err := srv.Book(context.Background(), tc, models.Reservation{
		GuestID:    2,
		RatePlanID: 1,
		CheckIn:    time.Date(2026, 10, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 10, 2, 11, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, srv.Cancel(context.Background(), tc, res.ID))

	got, err := srv.Get(context.Background(), tc, res.ID)
	require.NoError(t, err)
	assert.Equal(t, ReservationStatusCancelled, got.Status)
}

func TestCancelCheckedOutReservationFails(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	srv := NewReservationService()

	res, err := srv.Book(context.Background(), tc, models.Reservation{
		GuestID:    3,
		RatePlanID: 1,
		CheckIn:    time.Date(2026, 10, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 10, 2, 11, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, tc.Models.Reservation().Session().
		Where("id = ?", res.ID).Update("status", ReservationStatusCheckedOut).Error)

	err = srv.Cancel(context.Background(), tc, res.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checked out")
}

func TestListReservationsByStatus(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	srv := NewReservationService()

	for i := 0; i < 3; i++ {
		_, err := srv.Book(context.Background(), tc, models.Reservation{
			GuestID:    uint(i + 1),
			RatePlanID: 1,
			CheckIn:    time.Date(2026, 11, 1, 15, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2026, 11, 3, 11, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	booked, err := srv.List(context.Background(), tc, ReservationStatusBooked)
	require.NoError(t, err)
	assert.Len(t, booked, 3)

	cancelled, err := srv.List(context.Background(), tc, ReservationStatusCancelled)
	require.NoError(t, err)
	assert.Empty(t, cancelled)
}
