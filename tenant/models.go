package tenant

import (
	"fmt"
	"sync/atomic"

	"gorm.io/gorm"
)

// ModelHandle is the typed access point for one entity on one tenant
// database. Collaborators query through it instead of naming tables at call
// sites.
type ModelHandle struct {
	entity    Entity
	table     string
	prototype interface{}
	db        *gorm.DB
}

// Entity returns the entity this handle serves.
func (h *ModelHandle) Entity() Entity { return h.entity }

// Table returns the entity's table name.
func (h *ModelHandle) Table() string { return h.table }

// Session returns a query session scoped to the entity's table on the
// tenant's own database.
func (h *ModelHandle) Session() *gorm.DB {
	return h.db.Table(h.table)
}

// ModelSet is the full set of registered models for one tenant database,
// keyed by entity. It is a read view assembled by the registry; callers must
// not register additional entities themselves.
type ModelSet struct {
	handles map[Entity]*ModelHandle
}

// Handle returns the model handle for an entity. ErrUnknownEntity signals a
// catalog inconsistency and is not an expected runtime condition.
func (s *ModelSet) Handle(e Entity) (*ModelHandle, error) {
	h, ok := s.handles[e]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, e)
	}
	return h, nil
}

// Typed accessors for the closed entity set. These cannot fail: the registry
// only assembles a ModelSet after every catalog entity is registered.

func (s *ModelSet) Property() *ModelHandle    { return s.handles[EntityProperty] }
func (s *ModelSet) RoomType() *ModelHandle    { return s.handles[EntityRoomType] }
func (s *ModelSet) Room() *ModelHandle        { return s.handles[EntityRoom] }
func (s *ModelSet) RatePlan() *ModelHandle    { return s.handles[EntityRatePlan] }
func (s *ModelSet) Guest() *ModelHandle       { return s.handles[EntityGuest] }
func (s *ModelSet) Reservation() *ModelHandle { return s.handles[EntityReservation] }
func (s *ModelSet) GuestFolio() *ModelHandle  { return s.handles[EntityGuestFolio] }
func (s *ModelSet) FolioLine() *ModelHandle   { return s.handles[EntityFolioLine] }
func (s *ModelSet) Payment() *ModelHandle     { return s.handles[EntityPayment] }

// ensureRegistered registers every catalog entity not yet present on the
// entry exactly once and returns the full model set. Entities already
// registered are left untouched. Serialized per entry, so concurrent first
// resolutions of one tenant perform the migration work once.
func (r *Registry) ensureRegistered(e *connEntry, db *gorm.DB) (*ModelSet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	handles := make(map[Entity]*ModelHandle, len(entityOrder))
	for _, entity := range entityOrder {
		schema, err := schemaFor(entity)
		if err != nil {
			return nil, err
		}
		if !e.registered[entity] {
			if err := db.AutoMigrate(schema.prototype); err != nil {
				return nil, fmt.Errorf("register %s on %s: %w", entity, e.name, err)
			}
			e.registered[entity] = true
			atomic.AddInt64(&r.registrations, 1)
		}
		handles[entity] = &ModelHandle{
			entity:    entity,
			table:     schema.table,
			prototype: schema.prototype,
			db:        db,
		}
	}

	return &ModelSet{handles: handles}, nil
}
