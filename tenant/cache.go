package tenant

import (
	"sync"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	"gorm.io/gorm"
)

// connEntry holds the process-lifetime state for one logical database: the
// open handle, the set of entities already registered against it, and the
// last-resolved property record. Handles are never closed during normal
// operation.
type connEntry struct {
	name string

	// mu guards db, registered, and property. Creation and registration for
	// one database serialize here; other databases proceed independently.
	mu         sync.Mutex
	db         *gorm.DB
	registered map[Entity]bool
	property   *models.Property
}

// handle returns the entry's connection, opening it on first use. A failed
// open is not cached: the next caller retries, so a database provisioned
// after a dangling-override miss becomes reachable without restart.
func (e *connEntry) handle(open func(name string) (*gorm.DB, error)) (*gorm.DB, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.db != nil {
		return e.db, nil
	}
	db, err := open(e.name)
	if err != nil {
		return nil, err
	}
	e.db = db
	return db, nil
}

func (e *connEntry) setProperty(p *models.Property) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.property = p
}

// connCache holds one connEntry per logical database name. At most one entry
// ever exists per name; the entry shell is created under the cache lock while
// the expensive connection open happens under the entry's own lock.
type connCache struct {
	mu      sync.RWMutex
	entries map[string]*connEntry
}

func newConnCache() *connCache {
	return &connCache{entries: make(map[string]*connEntry)}
}

// entryFor returns the cache entry for a database name, creating the shell if
// absent. Safe for concurrent use; two callers racing on the same unseen name
// observe the same entry.
func (c *connCache) entryFor(name string) *connEntry {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if ok {
		return e
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[name]; ok {
		return e
	}
	e = &connEntry{
		name:       name,
		registered: make(map[Entity]bool),
	}
	c.entries[name] = e
	return e
}

func (c *connCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
