package tenant

import (
	"context"
	"fmt"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"
	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/pkg/logger"
)

// Provision creates the isolated database for a new tenant, registers every
// catalog entity against it, and seeds the property record. Operator-facing,
// not request-facing. Idempotent: re-running against an existing tenant
// leaves it unchanged and returns its context.
func (r *Registry) Provision(ctx context.Context, rawCode, displayName string) (*Context, error) {
	code := NormalizeCode(rawCode)
	if code == "" {
		return nil, ErrTenantCodeRequired
	}

	dbName := deriveDatabaseName(code, r.nameMaxLen)
	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", quoteIdent(dbName))
	if err := r.primary.WithContext(ctx).Exec(stmt).Error; err != nil {
		return nil, fmt.Errorf("%w: create database %s: %v", ErrPrimaryUnavailable, dbName, err)
	}

	entry := r.cache.entryFor(dbName)
	db, err := entry.handle(r.open)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrPrimaryUnavailable, dbName, err)
	}

	modelSet, err := r.ensureRegistered(entry, db)
	if err != nil {
		return nil, err
	}

	prop := models.Property{
		Code:     code,
		Name:     displayName,
		Status:   "active",
		Metadata: models.JSONMap{},
	}
	if err := db.WithContext(ctx).Where("code = ?", code).FirstOrCreate(&prop).Error; err != nil {
		return nil, fmt.Errorf("%w: seed property %s in %s: %v", ErrPrimaryUnavailable, code, dbName, err)
	}

	entry.setProperty(&prop)
	r.index.Put(code, dbName)
	logger.Infof("Provisioned tenant %s in database %q", code, dbName)

	return &Context{
		Code:         code,
		DatabaseName: dbName,
		DB:           db,
		Models:       modelSet,
		Property:     &prop,
	}, nil
}

// PreWarm populates the tenant code index with every property code found in
// any non-reserved database, so first requests after startup take the fast
// path. One full enumeration pass; no tenant connections are opened. Returns
// the number of codes indexed.
func (r *Registry) PreWarm(ctx context.Context) (int, error) {
	names, err := r.listDatabases(ctx)
	if err != nil {
		return 0, err
	}

	warmed := 0
	for _, name := range names {
		if _, reserved := r.system[name]; reserved {
			continue
		}

		var codes []string
		table := name + "." + models.Property{}.TableName()
		err := r.primary.WithContext(ctx).Table(table).Pluck("code", &codes).Error
		if err != nil {
			if isMissingSchemaErr(err) {
				// Not a tenant database
				continue
			}
			return warmed, fmt.Errorf("%w: prewarm %s: %v", ErrPrimaryUnavailable, name, err)
		}

		for _, code := range codes {
			code = NormalizeCode(code)
			if code == "" {
				continue
			}
			// First database in listing order wins, matching discovery.
			if _, ok := r.index.Get(code); !ok {
				r.index.Put(code, name)
				warmed++
			}
		}
	}
	logger.Infof("Pre-warmed tenant code index with %d codes across %d databases", warmed, len(names))
	return warmed, nil
}
