package tenant

import (
	"fmt"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"
)

// Entity identifies one data shape known to the system. The set of entities
// is closed and compile-time checked: every tenant database gets exactly this
// set of models registered, and nothing else.
type Entity string

// The full entity set.
const (
	EntityProperty    Entity = "Property"
	EntityRoomType    Entity = "RoomType"
	EntityRoom        Entity = "Room"
	EntityRatePlan    Entity = "RatePlan"
	EntityGuest       Entity = "Guest"
	EntityReservation Entity = "Reservation"
	EntityGuestFolio  Entity = "GuestFolio"
	EntityFolioLine   Entity = "FolioLine"
	EntityPayment     Entity = "Payment"
)

// entitySchema binds an entity to its model prototype and table name.
type entitySchema struct {
	prototype interface{}
	table     string
}

// catalog is the static schema catalog. Registration order follows
// entityOrder so foreign-key parents migrate before children.
var catalog = map[Entity]entitySchema{
	EntityProperty:    {&models.Property{}, models.Property{}.TableName()},
	EntityRoomType:    {&models.RoomType{}, models.RoomType{}.TableName()},
	EntityRoom:        {&models.Room{}, models.Room{}.TableName()},
	EntityRatePlan:    {&models.RatePlan{}, models.RatePlan{}.TableName()},
	EntityGuest:       {&models.Guest{}, models.Guest{}.TableName()},
	EntityReservation: {&models.Reservation{}, models.Reservation{}.TableName()},
	EntityGuestFolio:  {&models.GuestFolio{}, models.GuestFolio{}.TableName()},
	EntityFolioLine:   {&models.FolioLine{}, models.FolioLine{}.TableName()},
	EntityPayment:     {&models.Payment{}, models.Payment{}.TableName()},
}

var entityOrder = []Entity{
	EntityProperty,
	EntityRoomType,
	EntityRoom,
	EntityRatePlan,
	EntityGuest,
	EntityReservation,
	EntityGuestFolio,
	EntityFolioLine,
	EntityPayment,
}

// Entities returns the closed set of known entities in registration order.
func Entities() []Entity {
	out := make([]Entity, len(entityOrder))
	copy(out, entityOrder)
	return out
}

// schemaFor looks up the schema for an entity. Failure here means the catalog
// itself is inconsistent, which is a programming error, not a runtime
// condition callers should expect.
func schemaFor(e Entity) (entitySchema, error) {
	s, ok := catalog[e]
	if !ok {
		return entitySchema{}, fmt.Errorf("%w: %s", ErrUnknownEntity, e)
	}
	return s, nil
}
