package tenant

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options configures a Registry.
type Options struct {
	// Primary is the server-level handle used for database enumeration and
	// discovery probes. Resolution fails with ErrPrimaryUnavailable when it
	// cannot be reached.
	Primary *gorm.DB

	// DSNFor builds the connection string for one logical database.
	DSNFor func(databaseName string) string

	// SystemDatabases are reserved names excluded from discovery.
	SystemDatabases []string

	// NameMaxLen caps derived logical database names. Zero means no cap.
	NameMaxLen int
}

// Registry owns the three tenant caches: the connection cache, the tenant
// code index, and the per-connection registered-model sets. One Registry is
// constructed at process start and injected into every consumer; nothing in
// this package keeps ambient global state, so tests can run several isolated
// registries in one process.
type Registry struct {
	primary    *gorm.DB
	dsnFor     func(string) string
	system     map[string]struct{}
	nameMaxLen int

	index *codeIndex
	cache *connCache

	scans         int64 // full enumeration fallbacks performed
	registrations int64 // model registrations performed
}

// Stats is a point-in-time snapshot of registry cache state.
type Stats struct {
	Connections   int
	IndexedCodes  int
	Scans         int64
	Registrations int64
}

// NewRegistry constructs a registry over the given primary store handle.
func NewRegistry(opts Options) *Registry {
	system := make(map[string]struct{}, len(opts.SystemDatabases))
	for _, name := range opts.SystemDatabases {
		system[name] = struct{}{}
	}
	return &Registry{
		primary:    opts.Primary,
		dsnFor:     opts.DSNFor,
		system:     system,
		nameMaxLen: opts.NameMaxLen,
		index:      newCodeIndex(),
		cache:      newConnCache(),
	}
}

// Resolve locates the isolated database for a tenant code and returns the
// tenant context bound to it.
//
// Fast path: a code index hit goes straight to the cached database in O(1).
// Slow path: the deterministic default database is tried first, then every
// other known database is probed in listing order. The winning name is
// written back to the index so the enumeration cost is paid at most once per
// tenant per process lifetime.
func (r *Registry) Resolve(ctx context.Context, rawCode string) (*Context, error) {
	code := NormalizeCode(rawCode)
	if code == "" {
		return nil, ErrTenantCodeRequired
	}

	if name, ok := r.index.Get(code); ok {
		tc, err := r.bind(ctx, code, name, true)
		if err == nil {
			return tc, nil
		}
		if !errors.Is(err, ErrTenantNotFound) {
			return nil, err
		}
		// Cached binding went stale: the database was dropped or the
		// property record moved. Invalidate and rediscover.
		logger.Warnf("Tenant %s: cached database %q no longer holds its property record, rediscovering", code, name)
		r.index.Invalidate(code)
	}

	name, err := r.discover(ctx, code)
	if err != nil {
		return nil, err
	}
	return r.bind(ctx, code, name, true)
}

// Invalidate drops the code index entry for a tenant, forcing rediscovery on
// the next resolution. Connection handles are left untouched.
func (r *Registry) Invalidate(rawCode string) {
	r.index.Invalidate(NormalizeCode(rawCode))
}

// Stats returns a snapshot of cache sizes and cumulative counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Connections:   r.cache.len(),
		IndexedCodes:  r.index.Len(),
		Scans:         atomic.LoadInt64(&r.scans),
		Registrations: atomic.LoadInt64(&r.registrations),
	}
}

// bind settles a tenant on one database: obtains the cached connection,
// ensures models are registered, reads back the property record, and applies
// at most one preferred-database redirect hop.
func (r *Registry) bind(ctx context.Context, code, name string, followOverride bool) (*Context, error) {
	entry := r.cache.entryFor(name)
	db, err := entry.handle(r.open)
	if err != nil {
		if isMissingSchemaErr(err) {
			return nil, fmt.Errorf("%w: database %s does not exist", ErrTenantNotFound, name)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrPrimaryUnavailable, name, err)
	}

	modelSet, err := r.ensureRegistered(entry, db)
	if err != nil {
		return nil, err
	}

	var prop models.Property
	err = db.WithContext(ctx).Where("code = ?", code).First(&prop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || isMissingSchemaErr(err) {
			return nil, fmt.Errorf("%w: code %s has no property record in %s", ErrTenantNotFound, code, name)
		}
		return nil, fmt.Errorf("%w: read property %s from %s: %v", ErrPrimaryUnavailable, code, name, err)
	}

	// A stored override is a hint, not a hard requirement: follow it for one
	// hop, and keep the database the tenant was found in when the hop fails.
	if followOverride {
		if preferred := prop.PreferredDatabaseName(); preferred != "" && preferred != name {
			redirected, redirErr := r.bind(ctx, code, preferred, false)
			if redirErr == nil {
				return redirected, nil
			}
			logger.Warnf("Tenant %s: preferred database %q is not usable (%v), keeping %q", code, preferred, redirErr, name)
		}
	}

	entry.setProperty(&prop)
	r.index.Put(code, name)

	return &Context{
		Code:         code,
		DatabaseName: name,
		DB:           db,
		Models:       modelSet,
		Property:     &prop,
	}, nil
}

// discover finds which database holds a tenant's property record. The
// deterministic default name covers the common self-consistent case; the
// enumeration fallback costs O(number of tenants) and runs only on a genuine
// miss.
func (r *Registry) discover(ctx context.Context, code string) (string, error) {
	def := deriveDatabaseName(code, r.nameMaxLen)
	found, err := r.probe(ctx, def, code)
	if err != nil {
		return "", err
	}
	if found {
		return def, nil
	}

	atomic.AddInt64(&r.scans, 1)
	names, err := r.listDatabases(ctx)
	if err != nil {
		return "", err
	}
	for _, name := range names {
		if name == def {
			continue
		}
		if _, reserved := r.system[name]; reserved {
			continue
		}
		found, err := r.probe(ctx, name, code)
		if err != nil {
			return "", err
		}
		if found {
			logger.Infof("Tenant %s: discovered in database %q by full scan", code, name)
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrTenantNotFound, code)
}

// probe checks whether one candidate database holds a property record for the
// code. Runs on the primary handle with a qualified table name so no tenant
// connection is created for a miss. A missing database or table is a normal
// miss; anything else aborts the whole resolution.
func (r *Registry) probe(ctx context.Context, databaseName, code string) (bool, error) {
	var count int64
	table := databaseName + "." + models.Property{}.TableName()
	err := r.primary.WithContext(ctx).Table(table).Where("code = ?", code).Count(&count).Error
	if err != nil {
		if isMissingSchemaErr(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: probe %s: %v", ErrPrimaryUnavailable, databaseName, err)
	}
	return count > 0, nil
}

// listDatabases enumerates every database known to the store.
func (r *Registry) listDatabases(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.primary.WithContext(ctx).Raw("SHOW DATABASES").Scan(&names).Error; err != nil {
		return nil, fmt.Errorf("%w: list databases: %v", ErrPrimaryUnavailable, err)
	}
	return names, nil
}

// open dials a dedicated handle for one logical database. Called at most once
// per database name for the life of the process via the connection cache.
func (r *Registry) open(name string) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.Open(r.dsnFor(name)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	logger.Debugf("Opened tenant connection to database %q", name)
	return db, nil
}
