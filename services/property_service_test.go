package services

import (
	"context"
	"testing"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStatusSuspendsProperty(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	srv := NewPropertyService()

	prop, err := srv.SetStatus(context.Background(), tc, PropertyStatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, PropertyStatusSuspended, prop.Status)

	got, err := srv.Get(context.Background(), tc)
	require.NoError(t, err)
	assert.Equal(t, PropertyStatusSuspended, got.Status)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	srv := NewPropertyService()

	_, err := srv.SetStatus(context.Background(), tc, "archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status must be")
}

func TestSetPreferredDatabaseStoresAndClearsHint(t *testing.T) {
	tc := newTenantContext(t, "SEASIDE")
	srv := NewPropertyService()

	prop, err := srv.SetPreferredDatabase(context.Background(), tc, "seaside_replica")
	require.NoError(t, err)
	assert.Equal(t, "seaside_replica", prop.PreferredDatabaseName())

	// Round-trips through the metadata column.
	got, err := srv.Get(context.Background(), tc)
	require.NoError(t, err)
	assert.Equal(t, "seaside_replica", got.Metadata[models.MetadataKeyPreferredDatabase])

	prop, err = srv.SetPreferredDatabase(context.Background(), tc, "")
	require.NoError(t, err)
	assert.Empty(t, prop.PreferredDatabaseName())

	got, err = srv.Get(context.Background(), tc)
	require.NoError(t, err)
	assert.Empty(t, got.PreferredDatabaseName())
}
