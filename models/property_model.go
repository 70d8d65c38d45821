package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MetadataKeyPreferredDatabase is the Property metadata key holding an
// optional logical database name override. When set and valid, tenant
// resolution redirects to that database. A dangling value is tolerated.
const MetadataKeyPreferredDatabase = "preferredDatabaseName"

// JSONMap stores a string-keyed metadata bag as a JSON column.
type JSONMap map[string]string

// Value serializes the map for storage.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the map from storage.
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", value)
	}
	if len(data) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// Property is the tenant's own record, stored inside its isolated database.
// The code is unique and uppercase; resolution matches against it after
// normalization. Created once by provisioning, mutated rarely, never deleted
// by the tenant subsystem.
type Property struct {
	ID       uint    `gorm:"primaryKey;column:id" json:"id"`
	Code     string  `gorm:"column:code;unique" json:"code" validate:"required"` // Unique uppercase property code
	Name     string  `gorm:"column:name" json:"name" validate:"required"`        // Display name
	Status   string  `gorm:"column:status" json:"status"`                        // active/suspended
	Metadata JSONMap `gorm:"column:metadata;type:text" json:"metadata"`          // Tenant-scoped settings bag
}

// TableName specifies the static table name for GORM.
// Required to override GORM's default pluralization behavior.
func (Property) TableName() string {
	return "property"
}

// PreferredDatabaseName returns the metadata override for the tenant's
// logical database, or empty when no override is set.
func (p *Property) PreferredDatabaseName() string {
	if p == nil || p.Metadata == nil {
		return ""
	}
	return p.Metadata[MetadataKeyPreferredDatabase]
}
