package tenant

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequiresCode(t *testing.T) {
	port := startTestServer(t)
	reg := newTestRegistry(t, port)

	for _, raw := range []string{"", "   ", "\t"} {
		_, err := reg.Resolve(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTenantCodeRequired)
	}
}

func TestResolveSelfConsistent(t *testing.T) {
	port := startTestServer(t)
	reg := newTestRegistry(t, port)

	_, err := reg.Provision(context.Background(), "seaside", "Seaside Resort")
	require.NoError(t, err)

	tc, err := reg.Resolve(context.Background(), " seaside ")
	require.NoError(t, err)
	assert.Equal(t, "SEASIDE", tc.Code)
	assert.Equal(t, "seaside", tc.DatabaseName)
	require.NotNil(t, tc.Property)
	assert.Equal(t, "Seaside Resort", tc.Property.Name)

	// Idempotence: same database name and the same underlying handle object
	again, err := reg.Resolve(context.Background(), "SEASIDE")
	require.NoError(t, err)
	assert.Equal(t, tc.DatabaseName, again.DatabaseName)
	assert.Same(t, tc.DB, again.DB)
}

func TestResolveDiscoveryFallback(t *testing.T) {
	port := startTestServer(t)
	reg := newTestRegistry(t, port)

	// The tenant lives in a database whose name has nothing to do with its
	// code, so neither the index nor the default-name probe can find it.
	seedProperty(t, reg, "legacy_cluster_07", "GRAND", nil)

	tc, err := reg.Resolve(context.Background(), "grand")
	require.NoError(t, err)
	assert.Equal(t, "legacy_cluster_07", tc.DatabaseName)
	assert.EqualValues(t, 1, reg.Stats().Scans)

	// Second and third resolutions take the fast path: no further scans.
	for i := 0; i < 2; i++ {
		tc2, err := reg.Resolve(context.Background(), "GRAND")
		require.NoError(t, err)
		assert.Equal(t, "legacy_cluster_07", tc2.DatabaseName)
		assert.Same(t, tc.DB, tc2.DB)
	}
	assert.EqualValues(t, 1, reg.Stats().Scans)
}

func TestResolveNotFound(t *testing.T) {
	port := startTestServer(t)
	reg := newTestRegistry(t, port)

	// Dozens of unrelated tenants must not produce a false match.
	for i := 0; i < 24; i++ {
		seedProperty(t, reg, fmt.Sprintf("hotel_%02d", i), fmt.Sprintf("HOTEL%02d", i), nil)
	}

	_, err := reg.Resolve(context.Background(), "NOSUCH")
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestOverridePrecedence(t *testing.T) {
	port := startTestServer(t)
	reg := newTestRegistry(t, port)

	// The property is found in "alpha" but prefers "alpha_west", which also
	// holds its record. Resolution must return the preferred database.
	seedProperty(t, reg, "alpha_west", "ALPHA", nil)
	seedProperty(t, reg, "alpha", "ALPHA", models.JSONMap{
		models.MetadataKeyPreferredDatabase: "alpha_west",
	})

	tc, err := reg.Resolve(context.Background(), "ALPHA")
	require.NoError(t, err)
	assert.Equal(t, "alpha_west", tc.DatabaseName)
}

func TestDanglingOverrideKeepsOriginal(t *testing.T) {
	port := startTestServer(t)
	reg := newTestRegistry(t, port)

	seedProperty(t, reg, "bravo", "BRAVO", models.JSONMap{
		models.MetadataKeyPreferredDatabase: "does_not_exist_anywhere",
	})

	// An override is a hint: pointing nowhere must not break tenant access.
	tc, err := reg.Resolve(context.Background(), "BRAVO")
	require.NoError(t, err)
	assert.Equal(t, "bravo", tc.DatabaseName)
}

func TestStaleIndexTriggersRediscovery(t *testing.T) {
	port := startTestServer(t)
	reg := newTestRegistry(t, port)

	seedProperty(t, reg, "charlie", "CHARLIE", nil)
	tc, err := reg.Resolve(context.Background(), "CHARLIE")
	require.NoError(t, err)
	assert.Equal(t, "charlie", tc.DatabaseName)

	// The tenant's database is dropped and the tenant reappears elsewhere.
	require.NoError(t, reg.primary.Exec("DROP DATABASE charlie").Error)
	seedProperty(t, reg, "charlie_migrated", "CHARLIE", nil)

	tc2, err := reg.Resolve(context.Background(), "CHARLIE")
	require.NoError(t, err)
	assert.Equal(t, "charlie_migrated", tc2.DatabaseName)

	name, ok := reg.index.Get("CHARLIE")
	require.True(t, ok)
	assert.Equal(t, "charlie_migrated", name)
}

func TestConcurrentFirstResolution(t *testing.T) {
	port := startTestServer(t)

	// Seed through one registry, resolve through a second that has never
	// seen the code, so every goroutine races on a cold cache.
	seeder := newTestRegistry(t, port)
	seedProperty(t, seeder, "delta", "DELTA", nil)

	reg := newTestRegistry(t, port)

	const n = 8
	var wg sync.WaitGroup
	contexts := make([]*Context, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			contexts[i], errs[i] = reg.Resolve(context.Background(), "DELTA")
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, contexts[i])
		assert.Equal(t, "delta", contexts[i].DatabaseName)
		// Every caller observes the same connection handle object.
		assert.Same(t, contexts[0].DB, contexts[i].DB)
		// And a fully populated model set.
		for _, e := range Entities() {
			h, err := contexts[i].Models.Handle(e)
			require.NoError(t, err)
			assert.Equal(t, e, h.Entity())
		}
	}

	// Registration work happened once per entity, not once per caller.
	assert.EqualValues(t, len(Entities()), reg.Stats().Registrations)
	assert.Equal(t, 1, reg.Stats().Connections)
}

func TestProvisionIsIdempotent(t *testing.T) {
	port := startTestServer(t)
	reg := newTestRegistry(t, port)

	first, err := reg.Provision(context.Background(), "ECHO", "Echo Lodge")
	require.NoError(t, err)

	second, err := reg.Provision(context.Background(), "ECHO", "Echo Lodge")
	require.NoError(t, err)
	assert.Equal(t, first.DatabaseName, second.DatabaseName)

	var count int64
	require.NoError(t, second.Models.Property().Session().Where("code = ?", "ECHO").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPreWarmFillsIndex(t *testing.T) {
	port := startTestServer(t)

	seeder := newTestRegistry(t, port)
	seedProperty(t, seeder, "foxtrot", "FOXTROT", nil)
	seedProperty(t, seeder, "golf_annex", "GOLF", nil)

	reg := newTestRegistry(t, port)
	warmed, err := reg.PreWarm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, warmed)

	// Pre-warmed codes resolve without any enumeration fallback, even the
	// one whose database name does not match its code.
	tc, err := reg.Resolve(context.Background(), "GOLF")
	require.NoError(t, err)
	assert.Equal(t, "golf_annex", tc.DatabaseName)
	assert.EqualValues(t, 0, reg.Stats().Scans)
}

func TestResolvePrimaryUnavailable(t *testing.T) {
	port := startTestServer(t)
	reg := newTestRegistry(t, port)
	seedProperty(t, reg, "india", "INDIA", nil)

	// Kill the server: a cold resolution must report infrastructure failure,
	// not a missing tenant.
	_, err := reg.Resolve(context.Background(), "INDIA")
	require.NoError(t, err)

	port2 := startTestServer(t)
	dead := newTestRegistry(t, port2)
	// The registry holds its primary handle; closing the listener makes every
	// probe fail at the transport layer.
	sqlDB, err := dead.primary.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = dead.Resolve(context.Background(), "ANYCODE")
	assert.ErrorIs(t, err, ErrPrimaryUnavailable)
}
